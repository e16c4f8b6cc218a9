package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías (solo lectura).
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías con sus productos activos
// @Tags         categories
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	res := h.uc.List(c.UserContext())
	if !res.IsSuccess() {
		return failJSON(c, res.Kind(), res.Errors())
	}
	return c.JSON(res.Value())
}

// GetByID godoc
// @Summary      Obtener categoría con sus productos activos
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	res := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if !res.IsSuccess() {
		return failJSON(c, res.Kind(), res.Errors())
	}
	return c.JSON(res.Value())
}
