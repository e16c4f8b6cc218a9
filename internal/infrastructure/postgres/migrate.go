package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// schema crea las tablas si no existen. El índice único parcial sobre
// nombres activos es el respaldo real de la regla de unicidad: un nombre de
// producto inactivo queda libre. El FK con RESTRICT rechaza borrar una
// categoría que aún tiene productos.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	price       NUMERIC(8,2) NOT NULL CHECK (price > 0),
	stock       INTEGER NOT NULL CHECK (stock >= 0),
	image_url   TEXT NOT NULL DEFAULT '',
	category_id TEXT NOT NULL REFERENCES categories (id) ON DELETE RESTRICT,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS ux_products_active_name
	ON products (name) WHERE is_active;
`

// seedCategories nombres iniciales; la superficie de categorías es de solo
// lectura, así que sin esta siembra el catálogo no podría crear productos.
var seedCategories = []struct {
	Name        string
	Description string
}{
	{"Electrónica", "Dispositivos y accesorios electrónicos"},
	{"Hogar", "Artículos para el hogar"},
	{"Deportes", "Equipamiento deportivo"},
	{"Libros", "Libros y material de lectura"},
}

// Migrate crea el esquema y siembra las categorías solo si la tabla está
// vacía. Se ejecuta al arranque para que el servicio sea usable desde una
// base fría.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}

	var n int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM categories`).Scan(&n); err != nil {
		return fmt.Errorf("contar categorías: %w", err)
	}
	if n > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, c := range seedCategories {
		_, err := pool.Exec(ctx,
			`INSERT INTO categories (id, name, description, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $4)`,
			uuid.New().String(), c.Name, c.Description, now,
		)
		if err != nil {
			return fmt.Errorf("sembrar categoría %q: %w", c.Name, err)
		}
	}
	return nil
}
