package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/result"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// statusFor traduce la taxonomía de fallos del Result a estatus HTTP.
// Conflicto y regla de negocio van a 400 (la tabla de la API los agrupa con
// la validación); no encontrado a 404; lo inesperado a 500.
func statusFor(kind result.Kind) int {
	switch kind {
	case result.KindValidation, result.KindConflict, result.KindBusinessRule:
		return fiber.StatusBadRequest
	case result.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// failJSON responde un Result fallido con el envelope uniforme.
func failJSON(c *fiber.Ctx, kind result.Kind, messages []string) error {
	status := statusFor(kind)
	first := ""
	if len(messages) > 0 {
		first = messages[0]
	}
	body := dto.ErrorResponse{
		Error:      first,
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
	}
	if len(messages) > 1 {
		body.Errors = messages
	}
	return c.Status(status).JSON(body)
}

// badRequest responde 400 con un solo mensaje (cuerpo o parámetros ilegibles).
func badRequest(c *fiber.Ctx, message string) error {
	return failJSON(c, result.KindValidation, []string{message})
}

// ErrorHandler es el interceptor de proceso: todo error que escapa de los
// handlers (pánico recuperado, ruta desconocida, fallo del framework) se
// mapea al envelope {error, statusCode, timestamp}. Los 500 se loguean con
// detalle completo y salen con mensaje genérico.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			status = fiber.StatusBadRequest
		case errors.Is(err, domain.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, domain.ErrUnauthorized):
			status = fiber.StatusUnauthorized
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		message := err.Error()
		if status == fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			message = result.MsgUnexpected
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Error:      message,
			StatusCode: status,
			Timestamp:  time.Now().UTC(),
		})
	}
}
