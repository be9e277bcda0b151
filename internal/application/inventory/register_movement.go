package inventory

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
)

// Formatos aceptados en el campo data del formulario.
var movementDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// RecordMovementFromRequest adapta el formulario HTTP al caso de uso RecordMovement(ctx, MovementInput).
func (uc *RecordMovementUseCase) RecordMovementFromRequest(ctx context.Context, userID int64, in dto.RecordMovementRequest) (int64, error) {
	input, err := ParseMovementRequest(userID, in)
	if err != nil {
		return 0, err
	}
	return uc.RecordMovement(ctx, input)
}

// ParseMovementRequest convierte los campos de texto en un MovementInput; nombra el campo inválido.
func ParseMovementRequest(userID int64, in dto.RecordMovementRequest) (MovementInput, error) {
	productID, err := strconv.ParseInt(strings.TrimSpace(in.ProductID), 10, 64)
	if err != nil {
		return MovementInput{}, domain.NewValidationError("produto_id", "deve ser um identificador válido")
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(in.Quantity), 10, 64)
	if err != nil {
		return MovementInput{}, domain.NewValidationError("quantidade", "deve ser um número inteiro positivo")
	}
	input := MovementInput{
		ProductID: productID,
		UserID:    userID,
		Type:      entity.MovementType(strings.ToLower(strings.TrimSpace(in.Type))),
		Quantity:  quantity,
	}
	if raw := strings.TrimSpace(in.Date); raw != "" {
		date, ok := parseMovementDate(raw)
		if !ok {
			return MovementInput{}, domain.NewValidationError("data", "formato esperado AAAA-MM-DD")
		}
		input.Date = &date
	}
	return input, nil
}

func parseMovementDate(raw string) (time.Time, bool) {
	for _, layout := range movementDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
