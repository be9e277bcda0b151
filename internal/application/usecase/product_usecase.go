package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/application/inventory"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
)

// StockLedger registra un movimiento con los repositorios de una transacción en curso.
type StockLedger interface {
	RecordInTx(
		ctx context.Context,
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		mov *entity.Movement,
	) error
}

// ProductOptions políticas del alta de productos.
type ProductOptions struct {
	// OpeningViaLedger registra el estoque inicial como movimiento de entrada en lugar de escribirlo directo.
	OpeningViaLedger bool
}

// ProductUseCase casos de uso del catálogo. El estoque solo cambia vía movimientos (salvo el valor inicial).
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
	ledger   StockLedger
	opts     ProductOptions
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner, ledger StockLedger, opts ProductOptions) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, ledger: ledger, opts: opts, now: time.Now}
}

// Create valida el formulario y crea el producto. Devuelve el ID asignado.
func (uc *ProductUseCase) Create(ctx context.Context, userID int64, in dto.CreateProductRequest) (int64, error) {
	product, err := parseCreateProduct(in)
	if err != nil {
		return 0, err
	}
	opening := product.CurrentStock
	viaLedger := uc.opts.OpeningViaLedger && opening > 0
	if viaLedger {
		if userID <= 0 {
			return 0, domain.ErrUnauthorized
		}
		product.CurrentStock = 0
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if !viaLedger {
			return nil
		}
		return uc.ledger.RecordInTx(ctx, movRepo, productRepo, &entity.Movement{
			ProductID: product.ID,
			UserID:    userID,
			Type:      entity.MovementTypeInbound,
			Quantity:  opening,
			Date:      uc.now(),
		})
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos o los que contienen search en el nombre. Búsqueda en blanco = sin filtro.
func (uc *ProductUseCase) List(ctx context.Context, search string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// LowStockAlerts productos con estoque_atual <= estoque_minimo.
func (uc *ProductUseCase) LowStockAlerts(ctx context.Context) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

func parseCreateProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("nome", "é obrigatório")
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		return nil, domain.NewValidationError("unidade", "é obrigatório")
	}
	minimum, err := parseNonNegative("estoque_minimo", in.MinimumStock)
	if err != nil {
		return nil, err
	}
	current, err := parseNonNegative("estoque_atual", in.CurrentStock)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Unit:         unit,
		MinimumStock: minimum,
		CurrentStock: current,
	}
	if raw := strings.TrimSpace(in.ExpirationDate); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, domain.NewValidationError("validade", "formato esperado AAAA-MM-DD")
		}
		product.ExpirationDate = &date
	}
	return product, nil
}

func parseNonNegative(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, domain.NewValidationError(field, "é obrigatório")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(field, "deve ser um número inteiro")
	}
	if n < 0 {
		return 0, domain.NewValidationError(field, "não pode ser negativo")
	}
	return n, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		ExpirationDate: p.ExpirationDate,
		Unit:           p.Unit,
		MinimumStock:   p.MinimumStock,
		CurrentStock:   p.CurrentStock,
		LowStock:       p.IsLowStock(),
	}
}

func toProductResponses(list []*entity.Product) []*dto.ProductResponse {
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out
}
