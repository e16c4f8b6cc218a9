package entity

import "time"

// Category representa una categoría de productos. La superficie expuesta es
// de solo lectura: se siembran al arranque y los productos las referencian
// por FK (borrar una categoría con productos lo rechaza el motor).
type Category struct {
	ID          string
	Name        string // máximo 100 caracteres
	Description string // opcional, máximo 500
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
