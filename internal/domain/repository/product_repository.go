package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// ProductFilter predicado compartido por List y Count: búsqueda por
// substring (sensible a mayúsculas) sobre nombre O descripción, y filtro
// exacto por categoría. Campos vacíos no filtran.
type ProductFilter struct {
	Search     string
	CategoryID string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// List y Count solo ven productos activos; GetByIDWithCategory resuelve
// la fila esté activa o no (el borrado es lógico).
type ProductRepository interface {
	// List devuelve la página pedida (1-indexada) ordenada por nombre
	// ascendente, con el nombre de la categoría resuelto.
	List(ctx context.Context, filter ProductFilter, page, pageSize int) ([]*entity.Product, error)
	// Count cuenta los activos que satisfacen el mismo predicado de List.
	Count(ctx context.Context, filter ProductFilter) (int, error)
	// GetByIDWithCategory devuelve nil, nil si el id no existe.
	GetByIDWithCategory(ctx context.Context, id string) (*entity.Product, error)
	// IsNameUnique es true si ningún otro producto activo usa ese nombre
	// exacto. excludeID permite que un update conserve su propio nombre.
	IsNameUnique(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, product *entity.Product) error
	// Update persiste todos los campos mutables, incluidos Stock, IsActive
	// y UpdatedAt (el soft delete y el ajuste de stock pasan por aquí).
	Update(ctx context.Context, product *entity.Product) error
}
