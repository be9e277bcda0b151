// Package testutil repositorios en memoria para tests de casos de uso y handlers.
package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/sistema-estoque/internal/application/inventory"
	"github.com/jhoicas/sistema-estoque/internal/domain"
	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
)

// Store datastore en memoria. Las transacciones se serializan y se revierten
// restaurando una copia del estado.
type Store struct {
	mu        sync.Mutex
	txMu      sync.Mutex
	users     map[int64]entity.User
	products  map[int64]entity.Product
	movements []entity.Movement
	nextID    int64

	// FailAdjust, si no es nil, lo devuelve AdjustStock (simula caída en mitad de la transacción).
	FailAdjust error
	// FailReads, si no es nil, lo devuelven las consultas de listado y conteo.
	FailReads error
}

var (
	_ repository.ProductRepository   = (*ProductRepo)(nil)
	_ repository.MovementRepository  = (*MovementRepo)(nil)
	_ repository.UserRepository      = (*UserRepo)(nil)
	_ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)
	_ inventory.TxRunner             = (*TxRunner)(nil)
)

// NewStore crea un datastore vacío.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]entity.User),
		products: make(map[int64]entity.Product),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AddUser inserta un usuario directamente (seed).
func (s *Store) AddUser(name, email, hash string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := entity.User{ID: s.id(), Name: name, Email: email, PasswordHash: hash}
	s.users[u.ID] = u
	return &u
}

// AddProduct inserta un producto directamente (seed) y asigna p.ID.
func (s *Store) AddProduct(p entity.Product) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	s.products[p.ID] = p
	return &p
}

// Stock saldo actual del producto.
func (s *Store) Stock(productID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[productID].CurrentStock
}

// Movements copia del ledger completo en orden de inserción.
func (s *Store) Movements() []entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Movement, len(s.movements))
	copy(out, s.movements)
	return out
}

// ProductCount número de productos.
func (s *Store) ProductCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

// ProductRepository repositorio de productos sobre el store.
func (s *Store) ProductRepository() *ProductRepo { return &ProductRepo{s: s} }

// MovementRepository repositorio del ledger sobre el store.
func (s *Store) MovementRepository() *MovementRepo { return &MovementRepo{s: s} }

// UserRepository repositorio de usuarios sobre el store.
func (s *Store) UserRepository() *UserRepo { return &UserRepo{s: s} }

// AnalyticsRepository conteos sobre el store.
func (s *Store) AnalyticsRepository() *AnalyticsRepo { return &AnalyticsRepo{s: s} }

// TxRunner runner transaccional sobre el store.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

// ── TxRunner ─────────────────────────────────────────────────────────────────

// TxRunner ejecuta fn y, si falla, restaura el estado previo.
type TxRunner struct{ s *Store }

func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	if err := ctx.Err(); err != nil {
		return domain.NewPersistenceError("begin transaction", err)
	}

	r.s.mu.Lock()
	products := make(map[int64]entity.Product, len(r.s.products))
	for k, v := range r.s.products {
		products[k] = v
	}
	movements := make([]entity.Movement, len(r.s.movements))
	copy(movements, r.s.movements)
	r.s.mu.Unlock()

	if err := fn(r.s.MovementRepository(), r.s.ProductRepository()); err != nil {
		r.s.mu.Lock()
		r.s.products = products
		r.s.movements = movements
		r.s.mu.Unlock()
		return err
	}
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

// ProductRepo implementación en memoria de repository.ProductRepository.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.id()
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) List(_ context.Context, search string) ([]*entity.Product, error) {
	return r.filter(func(p entity.Product) bool {
		return search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(search))
	})
}

func (r *ProductRepo) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	return r.filter(func(p entity.Product) bool { return p.IsLowStock() })
}

func (r *ProductRepo) AdjustStock(_ context.Context, productID, delta int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailAdjust != nil {
		return 0, r.s.FailAdjust
	}
	p, ok := r.s.products[productID]
	if !ok {
		return 0, domain.NewNotFoundError("produto")
	}
	p.CurrentStock += delta
	r.s.products[productID] = p
	return p.CurrentStock, nil
}

func (r *ProductRepo) filter(keep func(entity.Product) bool) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailReads != nil {
		return nil, domain.NewPersistenceError("list products", r.s.FailReads)
	}
	var out []*entity.Product
	for _, p := range r.s.products {
		if keep(p) {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ── Movimientos ──────────────────────────────────────────────────────────────

// MovementRepo implementación en memoria de repository.MovementRepository.
type MovementRepo struct{ s *Store }

func (r *MovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[m.ProductID]; !ok {
		return domain.NewNotFoundError("produto")
	}
	if _, ok := r.s.users[m.UserID]; !ok {
		return domain.NewNotFoundError("usuário")
	}
	m.ID = r.s.id()
	r.s.movements = append(r.s.movements, *m)
	return nil
}

func (r *MovementRepo) ListByProduct(_ context.Context, productID int64, limit int) ([]*entity.MovementDetail, error) {
	return r.list(limit, func(m entity.Movement) bool { return m.ProductID == productID })
}

func (r *MovementRepo) ListRecent(_ context.Context, limit int) ([]*entity.MovementDetail, error) {
	return r.list(limit, func(entity.Movement) bool { return true })
}

func (r *MovementRepo) list(limit int, keep func(entity.Movement) bool) ([]*entity.MovementDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailReads != nil {
		return nil, domain.NewPersistenceError("list movements", r.s.FailReads)
	}
	var out []*entity.MovementDetail
	for _, m := range r.s.movements {
		if !keep(m) {
			continue
		}
		out = append(out, &entity.MovementDetail{
			Movement:    m,
			ProductName: r.s.products[m.ProductID].Name,
			UserName:    r.s.users[m.UserID].Name,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

// UserRepo implementación en memoria de repository.UserRepository.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	u.ID = r.s.id()
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

// ── Analítica ────────────────────────────────────────────────────────────────

// AnalyticsRepo implementación en memoria de repository.AnalyticsRepository.
type AnalyticsRepo struct{ s *Store }

func (r *AnalyticsRepo) CountProducts(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailReads != nil {
		return 0, domain.NewPersistenceError("count products", r.s.FailReads)
	}
	return int64(len(r.s.products)), nil
}

func (r *AnalyticsRepo) CountLowStock(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailReads != nil {
		return 0, domain.NewPersistenceError("count low stock", r.s.FailReads)
	}
	var n int64
	for _, p := range r.s.products {
		if p.IsLowStock() {
			n++
		}
	}
	return n, nil
}

func (r *AnalyticsRepo) CountMovementsSince(_ context.Context, since time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailReads != nil {
		return 0, domain.NewPersistenceError("count movements", r.s.FailReads)
	}
	var n int64
	for _, m := range r.s.movements {
		if !m.Date.Before(since) {
			n++
		}
	}
	return n, nil
}
