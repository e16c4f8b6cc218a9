package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. El borrado es lógico:
// IsActive en false excluye el producto de listados y de la regla de
// unicidad de nombre, pero la fila se conserva para auditoría.
// CategoryName lo denormaliza el join del repositorio; no se persiste.
type Product struct {
	ID           string
	Name         string          // único entre productos activos
	Description  string
	Price        decimal.Decimal // > 0, máximo 999999.99
	Stock        int             // nunca negativo
	ImageURL     string          // opcional
	CategoryID   string
	CategoryName string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
