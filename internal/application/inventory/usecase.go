package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
)

// Policy reglas configurables del ledger.
type Policy struct {
	// AllowNegativeStock permite saídas que dejan estoque_atual < 0 (comportamiento histórico del sistema).
	AllowNegativeStock bool
}

// RecordMovementUseCase registra movimientos de estoque de forma transaccional:
// inserta el movimiento y ajusta estoque_atual en el mismo Commit/Rollback.
type RecordMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	policy   Policy
	now      func() time.Time
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(txRunner TxRunner, movRepo repository.MovementRepository, policy Policy) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner: txRunner,
		movRepo:  movRepo,
		policy:   policy,
		now:      time.Now,
	}
}

// WithClock reemplaza el reloj usado para la fecha por defecto (tests).
func (uc *RecordMovementUseCase) WithClock(now func() time.Time) *RecordMovementUseCase {
	uc.now = now
	return uc
}

// MovementInput entrada tipada para registrar un movimiento.
type MovementInput struct {
	ProductID int64
	UserID    int64
	Type      entity.MovementType
	Quantity  int64
	Date      *time.Time // nil = ahora
}

// RecordMovement valida la entrada antes de cualquier escritura y luego, en una sola transacción,
// inserta el movimiento y ajusta el estoque del producto. Devuelve el ID del movimiento.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, input MovementInput) (int64, error) {
	if err := validateMovement(input); err != nil {
		return 0, err
	}
	date := uc.now()
	if input.Date != nil {
		date = *input.Date
	}
	mov := &entity.Movement{
		ProductID: input.ProductID,
		UserID:    input.UserID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		Date:      date,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		return uc.RecordInTx(ctx, movRepo, productRepo, mov)
	})
	if err != nil {
		return 0, err
	}
	return mov.ID, nil
}

// RecordInTx aplica el movimiento con los repositorios de la transacción del caller.
// Lo usa también el alta de productos cuando el estoque inicial pasa por el ledger.
// El ajuste se hace en el datastore (estoque_atual = estoque_atual ± q), sin read-modify-write.
func (uc *RecordMovementUseCase) RecordInTx(
	ctx context.Context,
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	mov *entity.Movement,
) error {
	if err := movRepo.Create(ctx, mov); err != nil {
		return err
	}
	newStock, err := productRepo.AdjustStock(ctx, mov.ProductID, mov.Type.Delta(mov.Quantity))
	if err != nil {
		return err
	}
	// Sólo una saída puede dejar el saldo negativo; una entrada siempre lo sube.
	if mov.Type == entity.MovementTypeOutbound && !uc.policy.AllowNegativeStock && newStock < 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// ListRecent devuelve los últimos movimientos del ledger.
func (uc *RecordMovementUseCase) ListRecent(ctx context.Context, limit int) ([]dto.MovementResponse, error) {
	list, err := uc.movRepo.ListRecent(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

// ListByProduct devuelve los últimos movimientos de un producto.
func (uc *RecordMovementUseCase) ListByProduct(ctx context.Context, productID int64, limit int) ([]dto.MovementResponse, error) {
	if productID <= 0 {
		return nil, domain.NewValidationError("produto_id", "deve ser um identificador válido")
	}
	list, err := uc.movRepo.ListByProduct(ctx, productID, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return toMovementResponses(list), nil
}

func validateMovement(input MovementInput) error {
	if input.ProductID <= 0 {
		return domain.NewValidationError("produto_id", "deve ser um identificador válido")
	}
	if !input.Type.Valid() {
		return domain.NewValidationError("tipo", "deve ser 'entrada' ou 'saida'")
	}
	if input.Quantity <= 0 {
		return domain.NewValidationError("quantidade", "deve ser um número inteiro positivo")
	}
	if input.UserID <= 0 {
		return domain.ErrUnauthorized
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// ToMovementResponse convierte el detalle del ledger al DTO de vistas.
func ToMovementResponse(m *entity.MovementDetail) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		UserName:    m.UserName,
		Type:        string(m.Type),
		TypeLabel:   m.Type.Label(),
		Quantity:    m.Quantity,
		Date:        m.Date,
	}
}

func toMovementResponses(list []*entity.MovementDetail) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMovementResponse(m))
	}
	return out
}
