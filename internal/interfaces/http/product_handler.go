package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos activos (paginado)
// @Tags         products
// @Produce      json
// @Param        pageNumber  query  int     false  "Página (1-indexada)"  default(1)
// @Param        pageSize    query  int     false  "Tamaño de página"     default(10)
// @Param        search      query  string  false  "Substring sobre nombre o descripción (sensible a mayúsculas)"
// @Param        categoryId  query  string  false  "Filtro exacto por categoría"
// @Success      200  {object}  dto.ProductListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		PageNumber: c.QueryInt("pageNumber", 1),
		PageSize:   c.QueryInt("pageSize", 10),
	}
	filter := repository.ProductFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("categoryId"),
	}
	res := h.uc.List(c.UserContext(), filter, page)
	if !res.IsSuccess() {
		return failJSON(c, res.Kind(), res.Errors())
	}
	out := res.Value()
	c.Set("X-Total-Count", strconv.Itoa(out.TotalCount))
	c.Set("X-Page-Number", strconv.Itoa(out.PageNumber))
	c.Set("X-Page-Size", strconv.Itoa(out.PageSize))
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	res := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if !res.IsSuccess() {
		return failJSON(c, res.Kind(), res.Errors())
	}
	return c.JSON(res.Value())
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	res := h.uc.Create(c.UserContext(), in)
	if !res.IsSuccess() {
		return failJSON(c, res.Kind(), res.Errors())
	}
	created := res.Value()
	c.Set("Location", "/api/products/"+created.ID)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	st := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if !st.IsSuccess() {
		return failJSON(c, st.Kind(), st.Errors())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar producto (borrado lógico)
// @Tags         products
// @Param        id   path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	st := h.uc.Delete(c.UserContext(), c.Params("id"))
	if !st.IsSuccess() {
		return failJSON(c, st.Kind(), st.Errors())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdjustStock godoc
// @Summary      Ajustar stock con delta con signo
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [patch]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	res := h.uc.AdjustStock(c.UserContext(), c.Params("id"), in.Delta)
	if !res.IsSuccess() {
		return failJSON(c, res.Kind(), res.Errors())
	}
	return c.JSON(res.Value())
}
