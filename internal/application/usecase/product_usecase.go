package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/mapping"
	"github.com/tu-usuario/catalogo-api/internal/application/result"
	"github.com/tu-usuario/catalogo-api/internal/application/validation"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// ProductUseCase orquesta el catálogo de productos: listado paginado,
// creación con unicidad de nombre entre activos, actualización, borrado
// lógico y ajuste de stock. Todo desenlace esperado viaja como Result;
// los fallos de infraestructura se loguean aquí con detalle completo y se
// degradan a un fallo genérico que no filtra el error crudo.
type ProductUseCase struct {
	repo repository.ProductRepository
	uow  repository.UnitOfWork
	log  *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, uow repository.UnitOfWork, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, uow: uow, log: log}
}

// List devuelve la página pedida de productos activos. Página y conteo son
// dos consultas con el mismo predicado; el conteo permite calcular el total
// de páginas sin materializar el set completo.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter, page dto.PageRequest) result.Result[dto.ProductListResponse] {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, filter, page.PageNumber, page.PageSize)
	if err != nil {
		uc.fail("listar productos", err)
		return result.Unexpected[dto.ProductListResponse]()
	}
	total, err := uc.repo.Count(ctx, filter)
	if err != nil {
		uc.fail("contar productos", err)
		return result.Unexpected[dto.ProductListResponse]()
	}
	return result.Ok(mapping.ToProductListResponse(list, page.PageNumber, page.PageSize, total))
}

// GetByID devuelve el producto (activo o no) con su categoría resuelta.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) result.Result[dto.ProductResponse] {
	p, err := uc.repo.GetByIDWithCategory(ctx, id)
	if err != nil {
		uc.fail("obtener producto", err)
		return result.Unexpected[dto.ProductResponse]()
	}
	if p == nil {
		return result.NotFound[dto.ProductResponse](notFoundMsg(id))
	}
	return result.Ok(mapping.ToProductResponse(p))
}

// Create valida, verifica unicidad de nombre entre activos y persiste.
// La verificación y el insert corren en una sola transacción; el índice
// único parcial sobre nombres activos respalda la carrera que la lectura
// previa no puede cerrar (ambos caminos terminan en el mismo conflicto).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) result.Result[dto.ProductResponse] {
	if violations := validation.ValidateCreate(in); len(violations) > 0 {
		return result.Validation[dto.ProductResponse](violations)
	}
	product := mapping.NewProductFromCreate(in)
	err := uc.uow.Run(ctx, func(products repository.ProductRepository) error {
		unique, err := products.IsNameUnique(ctx, in.Name, "")
		if err != nil {
			return err
		}
		if !unique {
			return domain.ErrDuplicate
		}
		return products.Create(ctx, product)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return result.Conflict[dto.ProductResponse](conflictMsg(in.Name))
		}
		uc.fail("crear producto", err)
		return result.Unexpected[dto.ProductResponse]()
	}
	created, err := uc.repo.GetByIDWithCategory(ctx, product.ID)
	if err != nil || created == nil {
		uc.fail("releer producto creado", err)
		return result.Unexpected[dto.ProductResponse]()
	}
	return result.Ok(mapping.ToProductResponse(created))
}

// Update valida y sobreescribe los campos mutables. La unicidad solo se
// reverifica si el nombre cambió, excluyendo el propio id.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) result.Status {
	if violations := validation.ValidateUpdate(in); len(violations) > 0 {
		return result.FailStatus(result.KindValidation, violations...)
	}
	p, err := uc.repo.GetByIDWithCategory(ctx, id)
	if err != nil {
		uc.fail("obtener producto", err)
		return result.FailStatus(result.KindUnexpected)
	}
	if p == nil {
		return result.FailStatus(result.KindNotFound, notFoundMsg(id))
	}
	if in.Name != p.Name {
		unique, err := uc.repo.IsNameUnique(ctx, in.Name, id)
		if err != nil {
			uc.fail("verificar unicidad", err)
			return result.FailStatus(result.KindUnexpected)
		}
		if !unique {
			return result.FailStatus(result.KindConflict, conflictMsg(in.Name))
		}
	}
	mapping.ApplyUpdate(p, in)
	if err := uc.repo.Update(ctx, p); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return result.FailStatus(result.KindConflict, conflictMsg(in.Name))
		}
		uc.fail("actualizar producto", err)
		return result.FailStatus(result.KindUnexpected)
	}
	return result.OkStatus()
}

// Delete es borrado lógico: desactiva el producto y refresca UpdatedAt; la
// fila se conserva y su nombre queda libre para productos nuevos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) result.Status {
	p, err := uc.repo.GetByIDWithCategory(ctx, id)
	if err != nil {
		uc.fail("obtener producto", err)
		return result.FailStatus(result.KindUnexpected)
	}
	if p == nil {
		return result.FailStatus(result.KindNotFound, notFoundMsg(id))
	}
	mapping.ApplySoftDelete(p)
	if err := uc.repo.Update(ctx, p); err != nil {
		uc.fail("eliminar producto", err)
		return result.FailStatus(result.KindUnexpected)
	}
	return result.OkStatus()
}

// AdjustStock aplica un delta con signo al stock. Si el resultado sería
// negativo falla por regla de negocio sin mutar nada.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, id string, delta int) result.Result[dto.ProductResponse] {
	p, err := uc.repo.GetByIDWithCategory(ctx, id)
	if err != nil {
		uc.fail("obtener producto", err)
		return result.Unexpected[dto.ProductResponse]()
	}
	if p == nil {
		return result.NotFound[dto.ProductResponse](notFoundMsg(id))
	}
	newStock := p.Stock + delta
	if newStock < 0 {
		return result.BusinessRule[dto.ProductResponse](
			fmt.Sprintf("stock insuficiente: stock actual %d, ajuste %d", p.Stock, delta))
	}
	mapping.ApplyStock(p, newStock)
	if err := uc.repo.Update(ctx, p); err != nil {
		uc.fail("ajustar stock", err)
		return result.Unexpected[dto.ProductResponse]()
	}
	return result.Ok(mapping.ToProductResponse(p))
}

// fail loguea el error de infraestructura con detalle completo; el texto
// crudo nunca llega al cliente.
func (uc *ProductUseCase) fail(op string, err error) {
	uc.log.Error().Err(err).Str("op", op).Msg("fallo de persistencia")
}

func notFoundMsg(id string) string {
	return fmt.Sprintf("producto %s no encontrado", id)
}

func conflictMsg(name string) string {
	return fmt.Sprintf("ya existe un producto activo con el nombre %q", name)
}
