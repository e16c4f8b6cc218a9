// Package mapping contiene las transformaciones puras entre entidades y
// DTOs. Ninguna función toca la persistencia ni muta sus argumentos salvo
// donde el nombre lo dice (ApplyUpdate, ApplySoftDelete, ApplyStock).
package mapping

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// ToProductResponse proyecta la entidad con el nombre de categoría
// denormalizado.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		ImageURL:     p.ImageURL,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewProductFromCreate construye la entidad a persistir: identidad nueva,
// ambos timestamps en "ahora" (UTC) y activa.
func NewProductFromCreate(in dto.CreateProductRequest) *entity.Product {
	now := time.Now().UTC()
	return &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ApplyUpdate sobreescribe los campos mutables y refresca UpdatedAt.
// ID, CreatedAt, IsActive, Stock y CategoryID quedan intactos.
func ApplyUpdate(p *entity.Product, in dto.UpdateProductRequest) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.ImageURL = in.ImageURL
	p.UpdatedAt = time.Now().UTC()
}

// ApplySoftDelete desactiva el producto y refresca UpdatedAt; todo lo demás
// queda intacto (la fila se conserva).
func ApplySoftDelete(p *entity.Product) {
	p.IsActive = false
	p.UpdatedAt = time.Now().UTC()
}

// ApplyStock fija el nuevo stock y refresca UpdatedAt. El llamador ya
// verificó que el valor no es negativo.
func ApplyStock(p *entity.Product, stock int) {
	p.Stock = stock
	p.UpdatedAt = time.Now().UTC()
}

// ToProductListResponse arma la página con TotalPages = ceil(total/pageSize).
func ToProductListResponse(list []*entity.Product, pageNumber, pageSize, totalCount int) dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, ToProductResponse(p))
	}
	return dto.ProductListResponse{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(pageSize))),
	}
}
