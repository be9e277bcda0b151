// Package format da formato pt-BR a cantidades y fechas mostradas al usuario.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Quantity cantidad entera con separador de miles pt-BR. Ej: 1234 → "1.234", -5 → "-5".
func Quantity(n int64) string {
	return printer.Sprintf("%d", n)
}

// Date fecha DD/MM/AAAA; "—" si t es nil o cero.
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006")
}

// DateTime fecha y hora DD/MM/AAAA HH:MM.
func DateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
