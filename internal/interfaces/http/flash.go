package http

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/sistema-estoque/internal/application/dto"
)

const (
	flashCookie   = "estoque_flash"
	localFlashOut = "flash_out"
)

// addFlash agrega un aviso que se mostrará en la próxima página renderizada.
func addFlash(c *fiber.Ctx, kind, message string) {
	pending, _ := c.Locals(localFlashOut).([]dto.Flash)
	pending = append(pending, dto.Flash{Kind: kind, Message: message})
	c.Locals(localFlashOut, pending)

	raw, err := json.Marshal(pending)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// popFlashes consume los avisos pendientes del cookie. Un cookie corrupto se descarta.
func popFlashes(c *fiber.Ctx) []dto.Flash {
	value := c.Cookies(flashCookie)
	if value == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var flashes []dto.Flash
	if err := json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}
