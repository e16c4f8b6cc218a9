package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos esperados viajan
// como Result; estos centinelas son para lo que escapa hasta el interceptor HTTP.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
