package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/sistema-estoque/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// mapError convierte errores del driver en errores de dominio. op nombra la operación.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return domain.NewNotFoundError(referencedEntity(pgErr.ConstraintName))
		case pgUniqueViolation:
			return domain.ErrDuplicate
		case pgCheckViolation:
			return domain.NewValidationError(checkField(pgErr.ConstraintName), "valor fora do intervalo permitido")
		}
	}
	return domain.NewPersistenceError(op, err)
}

// checkField deduce el campo del formulario a partir del nombre del constraint (ej: movimentacoes_quantidade_check).
func checkField(constraint string) string {
	for _, field := range []string{"quantidade", "tipo", "estoque_minimo"} {
		if strings.Contains(constraint, field) {
			return field
		}
	}
	return ""
}

// referencedEntity nombra la entidad referenciada por la FK (ej: movimentacoes_usuario_id_fkey → usuário).
func referencedEntity(constraint string) string {
	switch {
	case strings.Contains(constraint, "produto_id"):
		return "produto"
	case strings.Contains(constraint, "usuario_id"):
		return "usuário"
	default:
		return ""
	}
}

// escapeLike escapa los comodines de LIKE para que el término se busque literalmente.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
