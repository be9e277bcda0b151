package http_test

import (
	"bytes"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	apphttp "github.com/jhoicas/sistema-estoque/internal/interfaces/http"
)

func renderPartial(t *testing.T, name string, data fiber.Map) []byte {
	t.Helper()
	engine := apphttp.NewViewEngine()
	require.NoError(t, engine.Load())
	var buf bytes.Buffer
	require.NoError(t, engine.Render(&buf, name, data))
	return buf.Bytes()
}

// El bloque de alertas escapa los nombres y da formato pt-BR a las cantidades.
func TestAlertsPartial_Golden(t *testing.T) {
	out := renderPartial(t, "partials/alerts", fiber.Map{
		"Alerts": []*dto.ProductResponse{
			{ID: 2, Name: "Arruela & Cia", Unit: "cx", MinimumStock: 1500, CurrentStock: 1200, LowStock: true},
			{ID: 1, Name: "Widget", Unit: "un", MinimumStock: 10, CurrentStock: 5, LowStock: true},
		},
	})

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "alerts", out)
}

func TestAlertsPartial_SinAlertasNoRenderizaNada(t *testing.T) {
	out := renderPartial(t, "partials/alerts", fiber.Map{"Alerts": []*dto.ProductResponse{}})
	assert.Empty(t, out)
}

func TestFlashPartial_ClasePorTipo(t *testing.T) {
	out := string(renderPartial(t, "partials/flash", fiber.Map{
		"Flashes": []dto.Flash{
			{Kind: dto.FlashSuccess, Message: "ok"},
			{Kind: dto.FlashError, Message: "<falha>"},
			{Kind: dto.FlashInfo, Message: "aviso"},
		},
	}))
	assert.Contains(t, out, "alert-success")
	assert.Contains(t, out, "alert-danger")
	assert.Contains(t, out, "alert-info")
	assert.Contains(t, out, "&lt;falha&gt;")
	assert.NotContains(t, out, "<falha>")
}
