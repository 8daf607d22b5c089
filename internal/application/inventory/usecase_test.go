package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventory-micro/internal/application/dto"
	"github.com/tu-usuario/inventory-micro/internal/application/inventory"
	"github.com/tu-usuario/inventory-micro/internal/domain"
	"github.com/tu-usuario/inventory-micro/internal/domain/entity"
	"github.com/tu-usuario/inventory-micro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore guarda productos y logs en memoria. El mutex cumple el papel del
// lock de fila: cada transacción del fakeTxRunner corre serializada.
type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	logs     []*entity.StockLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: make(map[string]*entity.Product)}
}

func (s *fakeStore) addProduct(p *entity.Product) {
	cp := *p
	s.products[p.ID] = &cp
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) UpdateStock(_ context.Context, id string, stock int64) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeLogRepo struct{ store *fakeStore }

func (r *fakeLogRepo) Create(_ context.Context, l *entity.StockLog) error {
	cp := *l
	r.store.logs = append(r.store.logs, &cp)
	return nil
}

func (r *fakeLogRepo) ListByProduct(_ context.Context, productID string, limit, offset int) ([]*entity.StockLog, error) {
	var out []*entity.StockLog
	// Más reciente primero: recorremos al revés del orden de inserción
	for i := len(r.store.logs) - 1; i >= 0; i-- {
		if r.store.logs[i].ProductID == productID {
			cp := *r.store.logs[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner serializa cada "transacción" con el mutex del store, igual que
// el lock de fila serializa los updates concurrentes en Postgres.
type fakeTxRunner struct{ store *fakeStore }

func (tx *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.StockLogRepository) error) error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	return fn(&fakeProductRepo{store: tx.store}, &fakeLogRepo{store: tx.store})
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "00000000-0000-0000-0000-00000000000a"
	companyB = "00000000-0000-0000-0000-00000000000b"
)

func newUseCase(store *fakeStore) *inventory.StockUseCase {
	return inventory.NewStockUseCase(
		&fakeTxRunner{store: store},
		&fakeProductRepo{store: store},
		&fakeLogRepo{store: store},
	)
}

func seedProduct(store *fakeStore, companyID string, stock int64) *entity.Product {
	p := &entity.Product{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      "Teclado mecánico",
		Stock:     stock,
	}
	store.addProduct(p)
	return p
}

func increase(productID string, amount int64) dto.UpdateStockRequest {
	return dto.UpdateStockRequest{ProductID: productID, Amount: amount, Direction: entity.DirectionIncrease}
}

func decrease(productID string, amount int64) dto.UpdateStockRequest {
	return dto.UpdateStockRequest{ProductID: productID, Amount: amount, Direction: entity.DirectionDecrease}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStock — validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_DireccionInvalida_RetornaError(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 10)
	uc := newUseCase(store)

	_, err := uc.UpdateStock(context.Background(), companyA, dto.UpdateStockRequest{
		ProductID: p.ID, Amount: 5, Direction: "sideways",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.logs, "una entrada rechazada no debe dejar log")
}

func TestUpdateStock_AmountCeroONegativo_RetornaError(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 10)
	uc := newUseCase(store)

	_, err := uc.UpdateStock(context.Background(), companyA, increase(p.ID, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStock(context.Background(), companyA, increase(p.ID, -3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStock_SinProductID_RetornaError(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	_, err := uc.UpdateStock(context.Background(), companyA, increase("", 5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStock — existencia y tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_ProductoInexistente_RetornaNotFound(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	_, err := uc.UpdateStock(context.Background(), companyA, increase(uuid.New().String(), 5))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStock_ProductoDeOtraEmpresa_RetornaForbidden(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyB, 100)
	uc := newUseCase(store)

	_, err := uc.UpdateStock(context.Background(), companyA, decrease(p.ID, 10))
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// El rechazo de tenant no debe tocar ni el stock ni el historial
	assert.Equal(t, int64(100), store.products[p.ID].Stock)
	assert.Empty(t, store.logs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStock — invariante de no-negatividad
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_DecreaseBajoCero_Rechazado(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 30)
	uc := newUseCase(store)

	_, err := uc.UpdateStock(context.Background(), companyA, decrease(p.ID, 31))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El stock queda intacto y no hay entrada de log
	assert.Equal(t, int64(30), store.products[p.ID].Stock)
	assert.Empty(t, store.logs)
}

func TestUpdateStock_DecreaseHastaCero_Permitido(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 30)
	uc := newUseCase(store)

	updated, err := uc.UpdateStock(context.Background(), companyA, decrease(p.ID, 30))
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Stock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateStock — caso exitoso y historial
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_IncreaseExitoso_ActualizaYRegistra(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 10)
	uc := newUseCase(store)

	note := "reposición semanal"
	in := increase(p.ID, 15)
	in.Note = &note

	updated, err := uc.UpdateStock(context.Background(), companyA, in)
	require.NoError(t, err)
	assert.Equal(t, int64(25), updated.Stock)

	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, p.ID, entry.ProductID)
	assert.Equal(t, companyA, entry.CompanyID)
	assert.Equal(t, int64(15), entry.Delta, "increase registra delta positivo")
	require.NotNil(t, entry.Note)
	assert.Equal(t, note, *entry.Note)
}

func TestUpdateStock_DecreaseExitoso_RegistraDeltaNegativo(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 50)
	uc := newUseCase(store)

	updated, err := uc.UpdateStock(context.Background(), companyA, decrease(p.ID, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(30), updated.Stock)

	require.Len(t, store.logs, 1)
	assert.Equal(t, int64(-20), store.logs[0].Delta, "decrease registra delta negativo")
}

// Secuencia completa sobre un producto nuevo: +50, −70 rechazado, −50.
// Al final stock 0 y exactamente dos entradas de historial (+50 y −50).
func TestUpdateStock_SecuenciaCompleta(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 0)
	uc := newUseCase(store)
	ctx := context.Background()

	updated, err := uc.UpdateStock(ctx, companyA, increase(p.ID, 50))
	require.NoError(t, err)
	assert.Equal(t, int64(50), updated.Stock)

	_, err = uc.UpdateStock(ctx, companyA, decrease(p.ID, 70))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	updated, err = uc.UpdateStock(ctx, companyA, decrease(p.ID, 50))
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.Stock)

	// Dos entradas: el rechazo no dejó rastro
	require.Len(t, store.logs, 2)
	assert.Equal(t, int64(50), store.logs[0].Delta)
	assert.Equal(t, int64(-50), store.logs[1].Delta)
}

// La suma de deltas del historial siempre reproduce el stock actual.
func TestUpdateStock_SumaDeDeltasIgualStock(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 0)
	uc := newUseCase(store)
	ctx := context.Background()

	moves := []dto.UpdateStockRequest{
		increase(p.ID, 100),
		decrease(p.ID, 40),
		increase(p.ID, 7),
		decrease(p.ID, 67),
		decrease(p.ID, 1), // rechazado: dejaría -1
		increase(p.ID, 3),
	}
	for _, m := range moves {
		_, _ = uc.UpdateStock(ctx, companyA, m)
	}

	var sum int64
	for _, l := range store.logs {
		sum += l.Delta
	}
	assert.Equal(t, store.products[p.ID].Stock, sum,
		"la suma de deltas debe reproducir el stock actual")
}

// Updates concurrentes sobre el mismo producto: el lock serializa y ningún
// decrease puede dejar el stock negativo.
func TestUpdateStock_Concurrencia_NuncaNegativo(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 100)
	uc := newUseCase(store)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.UpdateStock(context.Background(), companyA, decrease(p.ID, 10))
		}()
	}
	wg.Wait()

	// 100/10 = 10 decreases aplican; los otros 20 se rechazan
	assert.Equal(t, int64(0), store.products[p.ID].Stock)
	assert.Len(t, store.logs, 10)
	assert.GreaterOrEqual(t, store.products[p.ID].Stock, int64(0))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests History
// ──────────────────────────────────────────────────────────────────────────────

func TestHistory_DevuelveMasRecientePrimero(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyA, 0)
	uc := newUseCase(store)
	ctx := context.Background()

	_, err := uc.UpdateStock(ctx, companyA, increase(p.ID, 5))
	require.NoError(t, err)
	_, err = uc.UpdateStock(ctx, companyA, increase(p.ID, 7))
	require.NoError(t, err)

	out, err := uc.History(ctx, companyA, p.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Entries, 2)
	assert.Equal(t, int64(7), out.Entries[0].Delta, "la entrada más reciente va primero")
	assert.Equal(t, int64(5), out.Entries[1].Delta)
}

func TestHistory_ProductoDeOtraEmpresa_RetornaForbidden(t *testing.T) {
	store := newFakeStore()
	p := seedProduct(store, companyB, 10)
	uc := newUseCase(store)

	_, err := uc.History(context.Background(), companyA, p.ID, 20, 0)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestHistory_ProductoInexistente_RetornaNotFound(t *testing.T) {
	store := newFakeStore()
	uc := newUseCase(store)

	_, err := uc.History(context.Background(), companyA, uuid.New().String(), 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
