package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Solo lectura: las categorías se siembran al arranque.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	// GetByID devuelve nil, nil si el id no existe.
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// ListActiveProducts devuelve los productos activos de la categoría,
	// ordenados por nombre ascendente.
	ListActiveProducts(ctx context.Context, categoryID string) ([]*entity.Product, error)
}
