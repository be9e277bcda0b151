package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sistema-estoque/internal/infrastructure/metrics"
)

func TestMetrics_Contadores(t *testing.T) {
	m := metrics.New()
	m.MovementRecorded("entrada")
	m.MovementRecorded("entrada")
	m.MovementRecorded("saida")
	m.LoginAttempt(false)
	m.ObserveRequest("GET", "/produtos", 200, 15*time.Millisecond)

	expected := `
# HELP estoque_movimentacoes_total Movimentações de estoque registradas por tipo.
# TYPE estoque_movimentacoes_total counter
estoque_movimentacoes_total{tipo="entrada"} 2
estoque_movimentacoes_total{tipo="saida"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "estoque_movimentacoes_total"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	assert.Contains(t, body, `estoque_login_attempts_total{result="failure"} 1`)
	assert.Contains(t, body, `estoque_http_requests_total{method="GET",route="/produtos",status="200"} 1`)
}

func TestMetrics_NilNoHaceNada(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.MovementRecorded("entrada")
		m.LoginAttempt(true)
		m.ProductCreated()
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
	})
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, rec.Code)
}
