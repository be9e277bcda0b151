package http

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/pkg/format"
)

//go:embed views
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

const mainLayout = "layouts/main"

// NewViewEngine motor de plantillas HTML sobre las vistas embebidas.
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("vistas embebidas: " + err.Error())
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("qty", format.Quantity)
	engine.AddFunc("date", format.Date)
	engine.AddFunc("datetime", format.DateTime)
	engine.AddFunc("alertClass", alertClass)
	return engine
}

// staticFiles archivos estáticos embebidos (js/css).
func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("archivos estáticos embebidos: " + err.Error())
	}
	return http.FS(sub)
}

// render agrega usuario y avisos al binding y renderiza la vista con el layout principal.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["User"] = GetUser(c)
	flashes := popFlashes(c)
	if extra, ok := data["Flashes"].([]dto.Flash); ok {
		flashes = append(flashes, extra...)
	}
	data["Flashes"] = flashes
	return c.Render(name, data, mainLayout)
}

// alertClass clase Bootstrap para el tipo de aviso.
func alertClass(kind string) string {
	switch kind {
	case dto.FlashSuccess:
		return "success"
	case dto.FlashError:
		return "danger"
	default:
		return "info"
	}
}
