package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id, p.name, p.description, p.price, p.stock, p.image_url,
		p.category_id, c.name, p.is_active, p.created_at, p.updated_at`

// filterPredicate comparte el predicado entre List y Count: substring
// sensible a mayúsculas sobre nombre O descripción (position, sin comodines
// que escapar) y filtro exacto por categoría. Argumentos $1 y $2.
const filterPredicate = `p.is_active
		AND ($1 = '' OR position($1 in p.name) > 0 OR position($1 in p.description) > 0)
		AND ($2 = '' OR p.category_id = $2)`

// List devuelve la página pedida de productos activos con su categoría
// resuelta en el mismo join (sin N+1), ordenada por nombre ascendente.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter, page, pageSize int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE ` + filterPredicate + `
		ORDER BY p.name ASC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, filter.Search, filter.CategoryID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Count cuenta los activos que satisfacen el mismo predicado de List.
func (r *ProductRepo) Count(ctx context.Context, filter repository.ProductFilter) (int, error) {
	query := `
		SELECT count(*)
		FROM products p
		WHERE ` + filterPredicate
	var n int
	if err := r.q.QueryRow(ctx, query, filter.Search, filter.CategoryID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// GetByIDWithCategory obtiene el producto por ID, activo o no.
func (r *ProductRepo) GetByIDWithCategory(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// IsNameUnique es true si ningún otro producto activo usa ese nombre exacto.
// excludeID vacío no excluye ninguna fila.
func (r *ProductRepo) IsNameUnique(ctx context.Context, name, excludeID string) (bool, error) {
	query := `
		SELECT NOT EXISTS (
			SELECT 1 FROM products WHERE is_active AND name = $1 AND id <> $2
		)`
	var unique bool
	if err := r.q.QueryRow(ctx, query, name, excludeID).Scan(&unique); err != nil {
		return false, fmt.Errorf("check name uniqueness: %w", err)
	}
	return unique, nil
}

// Create persiste un producto nuevo. El índice único parcial sobre nombres
// activos convierte la carrera de creación en ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, stock, image_url, category_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.ImageURL, product.CategoryID, product.IsActive, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update persiste los campos mutables más stock, is_active y updated_at
// en un solo Exec atómico (por aquí pasan también el borrado lógico y el
// ajuste de stock). La categoría y created_at no cambian nunca.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, image_url = $6, is_active = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Stock,
		product.ImageURL, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// scanProduct lee una fila con las columnas de productColumns.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL,
		&p.CategoryID, &p.CategoryName, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
