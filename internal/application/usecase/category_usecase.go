package usecase

import (
	"context"
	"fmt"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/mapping"
	"github.com/tu-usuario/catalogo-api/internal/application/result"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// CategoryUseCase lectura de categorías con sus productos activos anidados.
// La superficie es de solo lectura: las categorías se siembran al arranque.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	log  *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, log: log}
}

// List devuelve todas las categorías, cada una con sus productos activos.
func (uc *CategoryUseCase) List(ctx context.Context) result.Result[[]dto.CategoryResponse] {
	categories, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "listar categorías").Msg("fallo de persistencia")
		return result.Unexpected[[]dto.CategoryResponse]()
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		products, err := uc.repo.ListActiveProducts(ctx, c.ID)
		if err != nil {
			uc.log.Error().Err(err).Str("op", "listar productos de categoría").Msg("fallo de persistencia")
			return result.Unexpected[[]dto.CategoryResponse]()
		}
		out = append(out, mapping.ToCategoryResponse(c, products))
	}
	return result.Ok(out)
}

// GetByID devuelve la categoría con sus productos activos.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) result.Result[dto.CategoryResponse] {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "obtener categoría").Msg("fallo de persistencia")
		return result.Unexpected[dto.CategoryResponse]()
	}
	if c == nil {
		return result.NotFound[dto.CategoryResponse](fmt.Sprintf("categoría %s no encontrada", id))
	}
	products, err := uc.repo.ListActiveProducts(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "listar productos de categoría").Msg("fallo de persistencia")
		return result.Unexpected[dto.CategoryResponse]()
	}
	return result.Ok(mapping.ToCategoryResponse(c, products))
}
