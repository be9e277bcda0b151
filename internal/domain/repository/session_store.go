package repository

import (
	"context"

	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
)

// SessionStore almacena sesiones por token opaco. Get devuelve (nil, nil) si no existe o expiró.
type SessionStore interface {
	Create(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, id string) (*entity.Session, error)
	Delete(ctx context.Context, id string) error
}
