package mapping

import (
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// ToCategoryResponse proyecta la categoría con sus productos activos
// anidados (products puede ser vacío, nunca nil en el JSON).
func ToCategoryResponse(c *entity.Category, products []*entity.Product) dto.CategoryResponse {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Products:    items,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
