package http

import (
	"errors"

	"github.com/jhoicas/sistema-estoque/internal/domain"
)

// userMessage texto mostrable al usuario para un error de caso de uso. Nunca incluye detalles del driver.
func userMessage(err error) string {
	var (
		ve *domain.ValidationError
		nf *domain.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &nf):
		return nf.Error()
	case errors.Is(err, domain.ErrNotFound):
		return domain.ErrNotFound.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return domain.ErrDuplicate.Error()
	case errors.Is(err, domain.ErrInsufficientStock):
		return domain.ErrInsufficientStock.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return domain.ErrUnauthorized.Error()
	default:
		return domain.ErrPersistence.Error()
	}
}
