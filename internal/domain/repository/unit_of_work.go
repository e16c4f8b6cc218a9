package repository

import "context"

// UnitOfWork agrupa mutaciones del repositorio en una transacción atómica:
// begin, callback con un ProductRepository atado a la tx, commit si fn
// devuelve nil o rollback si no. El pipeline de creación corre dentro de Run
// para que la verificación de unicidad y el insert confirmen juntos.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(products ProductRepository) error) error
}
