package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/result"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Mock del repositorio (unit tests)
// ──────────────────────────────────────────────────────────────────────────────

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) List(_ context.Context, filter repository.ProductFilter, page, pageSize int) ([]*entity.Product, error) {
	args := m.Called(filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *mockProductRepo) Count(_ context.Context, filter repository.ProductFilter) (int, error) {
	args := m.Called(filter)
	return args.Int(0), args.Error(1)
}

func (m *mockProductRepo) GetByIDWithCategory(_ context.Context, id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockProductRepo) IsNameUnique(_ context.Context, name, excludeID string) (bool, error) {
	args := m.Called(name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductRepo) Create(_ context.Context, product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *mockProductRepo) Update(_ context.Context, product *entity.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// fakeUOW ejecuta el callback contra el mismo repositorio, sin transacción.
type fakeUOW struct {
	repo repository.ProductRepository
}

func (f *fakeUOW) Run(_ context.Context, fn func(repository.ProductRepository) error) error {
	return fn(f.repo)
}

func newUC(repo *mockProductRepo) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(repo, &fakeUOW{repo: repo}, testLogger())
}

func activeProduct(name string) *entity.Product {
	return &entity.Product{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  "descripción de " + name,
		Price:        decimal.NewFromFloat(9.99),
		Stock:        5,
		CategoryID:   uuid.New().String(),
		CategoryName: "Electrónica",
		IsActive:     true,
	}
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:        "Mouse",
		Description: "Mouse inalámbrico",
		Price:       decimal.NewFromFloat(9.99),
		Stock:       5,
		CategoryID:  uuid.New().String(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada inválida falla con la lista completa de violaciones sin tocar
// el repositorio.
func TestCreate_ValidacionFallaSinTocarRepositorio(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	in := validCreate()
	in.Name = ""
	in.Price = decimal.Zero

	res := uc.Create(context.Background(), in)

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.KindValidation, res.Kind())
	assert.Len(t, res.Errors(), 2, "todas las violaciones deben acumularse")
	repo.AssertNotCalled(t, "IsNameUnique", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

// Un nombre ya usado por un producto activo falla con conflicto que nombra
// el nombre ofensivo.
func TestCreate_NombreTomadoDevuelveConflicto(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	repo.On("IsNameUnique", "Mouse", "").Return(false, nil).Once()

	res := uc.Create(context.Background(), validCreate())

	assert.False(t, res.IsSuccess())
	assert.Equal(t, result.KindConflict, res.Kind())
	assert.Contains(t, res.FirstError(), "Mouse")
	repo.AssertNotCalled(t, "Create", mock.Anything)
	repo.AssertExpectations(t)
}

// El camino feliz persiste y devuelve la proyección releída con categoría.
func TestCreate_Exito(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	var persisted *entity.Product
	repo.On("IsNameUnique", "Mouse", "").Return(true, nil).Once()
	repo.On("Create", mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) { persisted = args.Get(0).(*entity.Product) }).
		Return(nil).Once()
	repo.On("GetByIDWithCategory", mock.AnythingOfType("string")).
		Return(activeProduct("Mouse"), nil).Once()

	res := uc.Create(context.Background(), validCreate())

	require.True(t, res.IsSuccess(), "errores: %v", res.Errors())
	assert.Equal(t, "Mouse", res.Value().Name)
	assert.Equal(t, "Electrónica", res.Value().CategoryName)

	require.NotNil(t, persisted)
	assert.True(t, persisted.IsActive, "un producto nuevo nace activo")
	assert.NotEmpty(t, persisted.ID)
	repo.AssertExpectations(t)
}

// Un fallo de persistencia se degrada a mensaje genérico: el texto crudo del
// driver nunca llega al cliente.
func TestCreate_ErrorDePersistenciaNoFiltraDetalle(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	repo.On("IsNameUnique", "Mouse", "").
		Return(false, errors.New("pq: connection refused detalle interno")).Once()

	res := uc.Create(context.Background(), validCreate())

	assert.Equal(t, result.KindUnexpected, res.Kind())
	assert.Equal(t, result.MsgUnexpected, res.FirstError())
	assert.NotContains(t, res.FirstError(), "connection refused")
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / List
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_NoEncontradoNombraElID(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	repo.On("GetByIDWithCategory", "nope").Return(nil, nil).Once()

	res := uc.GetByID(context.Background(), "nope")

	assert.Equal(t, result.KindNotFound, res.Kind())
	assert.Contains(t, res.FirstError(), "nope")
}

func TestList_DevuelvePaginaConTotales(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	filter := repository.ProductFilter{Search: "Mouse"}
	repo.On("List", filter, 2, 10).
		Return([]*entity.Product{activeProduct("Mouse")}, nil).Once()
	repo.On("Count", filter).Return(11, nil).Once()

	res := uc.List(context.Background(), filter, dto.PageRequest{PageNumber: 2, PageSize: 10})

	require.True(t, res.IsSuccess())
	out := res.Value()
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 11, out.TotalCount)
	assert.Equal(t, 2, out.TotalPages, "ceil(11/10) = 2")
	repo.AssertExpectations(t)
}

func TestList_FalloDelRepositorioEsGenerico(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	repo.On("List", mock.Anything, 1, 10).Return(nil, errors.New("boom")).Once()

	res := uc.List(context.Background(), repository.ProductFilter{}, dto.PageRequest{PageNumber: 1, PageSize: 10})

	assert.Equal(t, result.KindUnexpected, res.Kind())
	assert.Equal(t, result.MsgUnexpected, res.FirstError())
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func validUpdate(name string) dto.UpdateProductRequest {
	return dto.UpdateProductRequest{
		Name:        name,
		Description: "descripción actualizada",
		Price:       decimal.NewFromFloat(19.99),
	}
}

// Si el nombre no cambió la unicidad no se reverifica.
func TestUpdate_NombreSinCambioNoReverificaUnicidad(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	p := activeProduct("Mouse")
	repo.On("GetByIDWithCategory", p.ID).Return(p, nil).Once()
	repo.On("Update", mock.AnythingOfType("*entity.Product")).Return(nil).Once()

	st := uc.Update(context.Background(), p.ID, validUpdate("Mouse"))

	assert.True(t, st.IsSuccess())
	repo.AssertNotCalled(t, "IsNameUnique", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

// Un nombre nuevo en conflicto con otro activo falla excluyendo el propio id.
func TestUpdate_NombreNuevoEnConflicto(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	p := activeProduct("Mouse")
	repo.On("GetByIDWithCategory", p.ID).Return(p, nil).Once()
	repo.On("IsNameUnique", "Teclado", p.ID).Return(false, nil).Once()

	st := uc.Update(context.Background(), p.ID, validUpdate("Teclado"))

	assert.Equal(t, result.KindConflict, st.Kind())
	repo.AssertNotCalled(t, "Update", mock.Anything)
	repo.AssertExpectations(t)
}

func TestUpdate_NoEncontrado(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	repo.On("GetByIDWithCategory", "nope").Return(nil, nil).Once()

	st := uc.Update(context.Background(), "nope", validUpdate("Mouse"))

	assert.Equal(t, result.KindNotFound, st.Kind())
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

// Un delta que dejaría stock negativo falla sin mutar nada.
func TestAdjustStock_InsuficienteNoMuta(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	p := activeProduct("Mouse")
	p.Stock = 5
	repo.On("GetByIDWithCategory", p.ID).Return(p, nil).Once()

	res := uc.AdjustStock(context.Background(), p.ID, -10)

	assert.Equal(t, result.KindBusinessRule, res.Kind())
	assert.Contains(t, res.FirstError(), "stock insuficiente")
	assert.Equal(t, 5, p.Stock, "el stock no debe cambiar")
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

// delta >= -stock fija el stock exacto en stock+delta.
func TestAdjustStock_AplicaDeltaExacto(t *testing.T) {
	repo := new(mockProductRepo)
	uc := newUC(repo)

	p := activeProduct("Mouse")
	p.Stock = 5
	repo.On("GetByIDWithCategory", p.ID).Return(p, nil).Once()
	repo.On("Update", mock.AnythingOfType("*entity.Product")).Return(nil).Once()

	res := uc.AdjustStock(context.Background(), p.ID, -5)

	require.True(t, res.IsSuccess())
	assert.Equal(t, 0, res.Value().Stock)
	repo.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria (escenario de extremo a extremo)
// ──────────────────────────────────────────────────────────────────────────────

// memRepo es una implementación en memoria del puerto, con la misma
// semántica de filtrado, orden y unicidad que el adaptador PostgreSQL.
type memRepo struct {
	mu         sync.RWMutex
	products   map[string]*entity.Product
	categories map[string]string // id -> nombre
}

func newMemRepo() *memRepo {
	return &memRepo{
		products:   make(map[string]*entity.Product),
		categories: make(map[string]string),
	}
}

func (r *memRepo) addCategory(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := uuid.New().String()
	r.categories[id] = name
	return id
}

func (r *memRepo) matches(p *entity.Product, f repository.ProductFilter) bool {
	if !p.IsActive {
		return false
	}
	if f.Search != "" && !strings.Contains(p.Name, f.Search) && !strings.Contains(p.Description, f.Search) {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	return true
}

func (r *memRepo) List(_ context.Context, f repository.ProductFilter, page, pageSize int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var all []*entity.Product
	for _, p := range r.products {
		if r.matches(p, f) {
			all = append(all, r.resolve(p))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	start := (page - 1) * pageSize
	if start >= len(all) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *memRepo) Count(_ context.Context, f repository.ProductFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, p := range r.products {
		if r.matches(p, f) {
			n++
		}
	}
	return n, nil
}

func (r *memRepo) GetByIDWithCategory(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return r.resolve(p), nil
}

func (r *memRepo) IsNameUnique(_ context.Context, name, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.IsActive && p.Name == name && p.ID != excludeID {
			return false, nil
		}
	}
	return true, nil
}

func (r *memRepo) Create(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memRepo) Update(_ context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

// resolve copia el producto con el nombre de categoría denormalizado.
func (r *memRepo) resolve(p *entity.Product) *entity.Product {
	cp := *p
	cp.CategoryName = r.categories[p.CategoryID]
	return &cp
}

// Escenario completo: crear categoría y producto, agotar stock, borrar
// lógicamente y reutilizar el nombre liberado.
func TestEscenario_CicloDeVidaCompleto(t *testing.T) {
	repo := newMemRepo()
	uc := usecase.NewProductUseCase(repo, &fakeUOW{repo: repo}, testLogger())
	ctx := context.Background()

	electronicsID := repo.addCategory("Electrónica")

	// Crear {name: Mouse, price: 9.99, stock: 5}
	created := uc.Create(ctx, dto.CreateProductRequest{
		Name:        "Mouse",
		Description: "Mouse inalámbrico",
		Price:       decimal.NewFromFloat(9.99),
		Stock:       5,
		CategoryID:  electronicsID,
	})
	require.True(t, created.IsSuccess(), "errores: %v", created.Errors())
	mouse := created.Value()
	assert.Equal(t, 5, mouse.Stock)
	assert.True(t, mouse.IsActive)
	assert.Equal(t, "Electrónica", mouse.CategoryName)

	// Un segundo "Mouse" activo entra en conflicto.
	dup := uc.Create(ctx, dto.CreateProductRequest{
		Name:        "Mouse",
		Description: "otro mouse",
		Price:       decimal.NewFromFloat(5.00),
		Stock:       1,
		CategoryID:  electronicsID,
	})
	assert.Equal(t, result.KindConflict, dup.Kind())

	// Ajustar -10 falla y el stock queda en 5.
	over := uc.AdjustStock(ctx, mouse.ID, -10)
	assert.Equal(t, result.KindBusinessRule, over.Kind())
	afterFail := uc.GetByID(ctx, mouse.ID)
	require.True(t, afterFail.IsSuccess())
	assert.Equal(t, 5, afterFail.Value().Stock)

	// Ajustar -5 deja el stock exacto en 0.
	drained := uc.AdjustStock(ctx, mouse.ID, -5)
	require.True(t, drained.IsSuccess())
	assert.Equal(t, 0, drained.Value().Stock)

	// Borrado lógico: desaparece de los listados pero sigue resoluble por id.
	deleted := uc.Delete(ctx, mouse.ID)
	require.True(t, deleted.IsSuccess())

	listed := uc.List(ctx, repository.ProductFilter{}, dto.PageRequest{PageNumber: 1, PageSize: 10})
	require.True(t, listed.IsSuccess())
	assert.Empty(t, listed.Value().Items, "los inactivos no se listan")

	byID := uc.GetByID(ctx, mouse.ID)
	require.True(t, byID.IsSuccess(), "el inactivo sigue resoluble por id")
	assert.False(t, byID.Value().IsActive)
	assert.True(t, !byID.Value().UpdatedAt.Before(mouse.UpdatedAt), "UpdatedAt no retrocede")

	// El nombre liberado por el borrado lógico puede reutilizarse.
	again := uc.Create(ctx, dto.CreateProductRequest{
		Name:        "Mouse",
		Description: "mouse nuevo",
		Price:       decimal.NewFromFloat(12.50),
		Stock:       3,
		CategoryID:  electronicsID,
	})
	require.True(t, again.IsSuccess(), "errores: %v", again.Errors())
	assert.NotEqual(t, mouse.ID, again.Value().ID)
}

// El listado pagina y ordena por nombre ascendente con el mismo predicado
// entre página y conteo.
func TestEscenario_PaginacionYOrden(t *testing.T) {
	repo := newMemRepo()
	uc := usecase.NewProductUseCase(repo, &fakeUOW{repo: repo}, testLogger())
	ctx := context.Background()

	catID := repo.addCategory("Libros")
	names := []string{"Delta", "Alfa", "Echo", "Bravo", "Charlie"}
	for _, n := range names {
		res := uc.Create(ctx, dto.CreateProductRequest{
			Name:        n,
			Description: "libro " + n,
			Price:       decimal.NewFromFloat(10),
			Stock:       1,
			CategoryID:  catID,
		})
		require.True(t, res.IsSuccess())
	}

	page1 := uc.List(ctx, repository.ProductFilter{}, dto.PageRequest{PageNumber: 1, PageSize: 2})
	require.True(t, page1.IsSuccess())
	out := page1.Value()
	require.Len(t, out.Items, 2, "nunca más de pageSize elementos")
	assert.Equal(t, "Alfa", out.Items[0].Name)
	assert.Equal(t, "Bravo", out.Items[1].Name)
	assert.Equal(t, 5, out.TotalCount)
	assert.Equal(t, 3, out.TotalPages, "ceil(5/2) = 3")

	page3 := uc.List(ctx, repository.ProductFilter{}, dto.PageRequest{PageNumber: 3, PageSize: 2})
	require.True(t, page3.IsSuccess())
	require.Len(t, page3.Value().Items, 1)
	assert.Equal(t, "Echo", page3.Value().Items[0].Name)

	// La búsqueda es sensible a mayúsculas.
	upper := uc.List(ctx, repository.ProductFilter{Search: "alfa"}, dto.PageRequest{PageNumber: 1, PageSize: 10})
	require.True(t, upper.IsSuccess())
	assert.Empty(t, upper.Value().Items)

	exact := uc.List(ctx, repository.ProductFilter{Search: "Alfa"}, dto.PageRequest{PageNumber: 1, PageSize: 10})
	require.True(t, exact.IsSuccess())
	assert.Len(t, exact.Value().Items, 1)
}
