package http

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/sistema-estoque/internal/domain"
)

func TestUserMessage_PorTipoDeError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"producto inexistente", domain.NewNotFoundError("produto"), "produto não encontrado"},
		{"usuario inexistente", fmt.Errorf("registrar: %w", domain.NewNotFoundError("usuário")), "usuário não encontrado"},
		{"registro genérico", domain.ErrNotFound, "registro não encontrado"},
		{"validación", domain.NewValidationError("quantidade", "deve ser positiva"), "campo 'quantidade': deve ser positiva"},
		{"duplicado", domain.ErrDuplicate, "registro duplicado"},
		{"saldo insuficiente", domain.ErrInsufficientStock, "estoque insuficiente"},
		{"persistencia oculta el driver", domain.NewPersistenceError("list products", errors.New("dial tcp: connection refused")), "falha no banco de dados"},
		{"desconocido", context.DeadlineExceeded, "falha no banco de dados"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, userMessage(tc.err))
		})
	}
}
