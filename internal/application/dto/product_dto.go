package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=1000"`
	Price       decimal.Decimal `json:"price" validate:"gt=0,lte=999999.99"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"imageUrl" validate:"omitempty,max=500"`
	CategoryID  string          `json:"categoryId" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto. Stock y
// categoría no son actualizables (stock via PATCH /stock; categoría fija).
type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description" validate:"required,max=1000"`
	Price       decimal.Decimal `json:"price" validate:"gt=0,lte=999999.99"`
	ImageURL    string          `json:"imageUrl" validate:"omitempty,max=500"`
}

// AdjustStockRequest delta con signo para PATCH /products/{id}/stock.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse proyección de un producto con el nombre de su categoría
// denormalizado.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductListResponse página de productos con metadatos de paginación.
// TotalPages es ceiling(TotalCount / PageSize).
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	PageNumber int               `json:"pageNumber"`
	PageSize   int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
}
