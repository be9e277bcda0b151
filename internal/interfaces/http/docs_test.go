package http_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/sistema-estoque/docs"
)

// Cada ruta GET/POST registrada tiene su operación en la documentación Swagger.
func TestSwagger_DocumentaTodasLasRutas(t *testing.T) {
	env := buildTestApp(t)

	doc, err := swag.ReadDoc()
	require.NoError(t, err)
	var spec struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	seen := 0
	for _, r := range env.app.GetRoutes(true) {
		if r.Method != http.MethodGet && r.Method != http.MethodPost {
			continue
		}
		seen++
		path := strings.ReplaceAll(r.Path, ":format", "{format}")
		ops, ok := spec.Paths[path]
		if !assert.True(t, ok, "ruta sin documentar: %s", path) {
			continue
		}
		assert.Contains(t, ops, strings.ToLower(r.Method), "%s %s", r.Method, path)
	}
	assert.GreaterOrEqual(t, seen, 13)
}
