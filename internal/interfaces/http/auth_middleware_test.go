package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/sistema-estoque/internal/application/analytics"
	"github.com/jhoicas/sistema-estoque/internal/application/auth"
	"github.com/jhoicas/sistema-estoque/internal/application/inventory"
	"github.com/jhoicas/sistema-estoque/internal/application/reports"
	"github.com/jhoicas/sistema-estoque/internal/application/usecase"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/excel"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/memory"
	"github.com/jhoicas/sistema-estoque/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/sistema-estoque/internal/interfaces/http"
	"github.com/jhoicas/sistema-estoque/internal/testutil"
	"github.com/jhoicas/sistema-estoque/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testEmail    = "maria@example.com"
	testPassword = "segredo123"
)

// testEnv aplicación completa sobre el datastore en memoria.
type testEnv struct {
	app      *fiber.App
	store    *testutil.Store
	sessions *memory.SessionStore
	products *usecase.ProductUseCase
	user     *entity.User
}

// buildTestApp construye la aplicación con los mismos middlewares y rutas que en producción,
// un usuario sembrado (Maria) y el almacén de sesiones en memoria.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	store := testutil.NewStore()
	hash, err := password.Hash(testPassword)
	require.NoError(t, err)
	user := store.AddUser("Maria", testEmail, hash)

	sessions := memory.NewSessionStore()
	authUC := auth.NewAuthUseCase(store.UserRepository(), sessions, auth.SessionConfig{
		Secret: testSecret,
		TTL:    time.Hour,
		Issuer: "sistema-estoque-test",
	})
	ledger := inventory.NewRecordMovementUseCase(store.TxRunner(), store.MovementRepository(),
		inventory.Policy{AllowNegativeStock: true})
	productUC := usecase.NewProductUseCase(store.ProductRepository(), store.TxRunner(), ledger, usecase.ProductOptions{})

	app := apphttp.NewApp(apphttp.AppConfig{Name: "sistema-estoque-test", RequestTimeout: 5 * time.Second}, apphttp.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		Ledger:      ledger,
		DashboardUC: appanalytics.NewDashboardUseCase(store.AnalyticsRepository(), store.MovementRepository()),
		ReportsUC:   reports.NewStockReportUseCase(productUC, excel.NewStockReportRenderer()),
		Metrics:     metrics.New(),
		SessionTTL:  time.Hour,
	})
	return &testEnv{app: app, store: store, sessions: sessions, products: productUC, user: user}
}

// testClient navegador mínimo: guarda los cookies entre requests y no sigue redirecciones.
type testClient struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func (e *testEnv) client(t *testing.T) *testClient {
	return &testClient{t: t, app: e.app, cookies: map[string]string{}}
}

// loggedClient cliente con sesión iniciada como Maria (y el aviso de login ya consumido).
func (e *testEnv) loggedClient(t *testing.T) *testClient {
	t.Helper()
	c := e.client(t)
	resp := c.post("/login", url.Values{"email": {testEmail}, "senha": {testPassword}})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	require.NotEmpty(t, c.cookies[apphttp.SessionCookie])
	c.get("/dashboard")
	return c
}

func (c *testClient) get(target string) *http.Response {
	return c.do(http.MethodGet, target, nil)
}

func (c *testClient) post(target string, form url.Values) *http.Response {
	return c.do(http.MethodPost, target, form)
}

// do lanza la petición con los cookies actuales y aplica los Set-Cookie de la respuesta.
func (c *testClient) do(method, target string, form url.Values) *http.Response {
	c.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	resp, err := c.app.Test(req, -1)
	require.NoError(c.t, err)

	for _, ck := range resp.Cookies() {
		expired := !ck.Expires.IsZero() && ck.Expires.Before(time.Now())
		if ck.Value == "" || ck.MaxAge < 0 || expired {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck.Value
	}
	return resp
}

// follow sigue la redirección de resp con un GET.
func (c *testClient) follow(resp *http.Response) *http.Response {
	c.t.Helper()
	require.Equal(c.t, fiber.StatusFound, resp.StatusCode, "se esperaba una redirección")
	return c.get(resp.Header.Get(fiber.HeaderLocation))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAuth
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión, cualquier página protegida redirige a /login con aviso.
func TestRequireAuth_SinSesionRedirigeALogin(t *testing.T) {
	env := buildTestApp(t)

	for _, path := range []string{"/dashboard", "/produtos", "/estoque", "/documentos", "/logout", "/estoque/relatorio.pdf"} {
		t.Run(path, func(t *testing.T) {
			c := env.client(t)
			resp := c.get(path)
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

			page := c.follow(resp)
			assert.Equal(t, fiber.StatusOK, page.StatusCode)
			assert.Contains(t, readBody(t, page), "Por favor, faça login para acessar esta página.")
		})
	}
}

// Los POST protegidos tampoco llegan al caso de uso sin sesión.
func TestRequireAuth_PostSinSesionNoModificaDatos(t *testing.T) {
	env := buildTestApp(t)
	c := env.client(t)

	resp := c.post("/api/produtos", url.Values{
		"nome": {"Widget"}, "unidade": {"un"}, "estoque_minimo": {"10"}, "estoque_atual": {"20"},
	})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, 0, env.store.ProductCount())
}

// Un cookie con token mal formado se trata como anónimo.
func TestRequireAuth_TokenInvalido(t *testing.T) {
	env := buildTestApp(t)
	c := env.client(t)
	c.cookies[apphttp.SessionCookie] = "no-es-un-jwt"

	resp := c.get("/dashboard")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests login / logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesInvalidas(t *testing.T) {
	cases := []struct {
		name  string
		email string
		senha string
	}{
		{"senha incorrecta", testEmail, "errada"},
		{"email desconocido", "ninguem@example.com", testPassword},
		{"campos vacíos", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := buildTestApp(t)
			c := env.client(t)

			resp := c.post("/login", url.Values{"email": {tc.email}, "senha": {tc.senha}})
			assert.Equal(t, fiber.StatusOK, resp.StatusCode, "el formulario se vuelve a mostrar")
			assert.Contains(t, readBody(t, resp), "Email ou senha inválidos.")
			assert.Empty(t, c.cookies[apphttp.SessionCookie])
			assert.Equal(t, 0, env.sessions.Len(), "no debe crearse sesión")
		})
	}
}

func TestLogin_Exitoso(t *testing.T) {
	env := buildTestApp(t)
	c := env.client(t)

	resp := c.post("/login", url.Values{"email": {testEmail}, "senha": {testPassword}})
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get(fiber.HeaderLocation))
	assert.NotEmpty(t, c.cookies[apphttp.SessionCookie])
	assert.Equal(t, 1, env.sessions.Len())

	page := c.follow(resp)
	require.Equal(t, fiber.StatusOK, page.StatusCode)
	body := readBody(t, page)
	assert.Contains(t, body, "Bem-vindo, Maria!")
	assert.Contains(t, body, "Login realizado com sucesso!")

	// El aviso se muestra una sola vez
	again := c.get("/dashboard")
	assert.NotContains(t, readBody(t, again), "Login realizado com sucesso!")
}

func TestIndexYLogin_RedirigenSegunSesion(t *testing.T) {
	env := buildTestApp(t)

	anon := env.client(t)
	resp := anon.get("/")
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	logged := env.loggedClient(t)
	resp = logged.get("/")
	assert.Equal(t, "/dashboard", resp.Header.Get(fiber.HeaderLocation))
	resp = logged.get("/login")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get(fiber.HeaderLocation))
}

func TestLogout_EliminaLaSesion(t *testing.T) {
	env := buildTestApp(t)
	c := env.loggedClient(t)
	token := c.cookies[apphttp.SessionCookie]

	resp := c.get("/logout")
	require.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
	assert.Empty(t, c.cookies[apphttp.SessionCookie])
	assert.Equal(t, 0, env.sessions.Len())

	page := c.follow(resp)
	assert.Contains(t, readBody(t, page), "Logout realizado com sucesso!")

	// Reutilizar el token anterior ya no abre sesión
	replay := env.client(t)
	replay.cookies[apphttp.SessionCookie] = token
	resp = replay.get("/estoque")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}
