// Package result implementa el patrón Result: el canal exclusivo por el que
// la capa de casos de uso comunica desenlaces. Un Result es éxito con valor
// O fallo con uno o más mensajes, nunca ambos. Los fallos esperados
// (validación, no encontrado, conflicto, regla de negocio) no se modelan
// como error de Go; solo lo inesperado se loguea y degrada a un fallo
// genérico sin filtrar detalle interno.
package result

// Kind clasifica un fallo para que el transporte elija el estatus HTTP.
type Kind int

const (
	KindNone Kind = iota // éxito
	KindValidation
	KindNotFound
	KindConflict
	KindBusinessRule
	KindUnexpected
)

// MsgUnexpected es el único texto que un fallo de infraestructura puede
// mostrar al cliente; el detalle real queda en el log.
const MsgUnexpected = "ocurrió un error inesperado, intente de nuevo"

// Result contiene un valor de tipo T o la información del fallo.
type Result[T any] struct {
	value  T
	ok     bool
	kind   Kind
	errors []string
}

// Ok construye un resultado exitoso.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail construye un fallo con el kind y al menos un mensaje.
func Fail[T any](kind Kind, messages ...string) Result[T] {
	if len(messages) == 0 {
		messages = []string{MsgUnexpected}
	}
	return Result[T]{kind: kind, errors: messages}
}

// NotFound, Conflict, BusinessRule, Validation y Unexpected son atajos
// para los kinds de la taxonomía.
func NotFound[T any](message string) Result[T] { return Fail[T](KindNotFound, message) }

func Conflict[T any](message string) Result[T] { return Fail[T](KindConflict, message) }

func BusinessRule[T any](message string) Result[T] { return Fail[T](KindBusinessRule, message) }

func Validation[T any](messages []string) Result[T] { return Fail[T](KindValidation, messages...) }

func Unexpected[T any]() Result[T] { return Fail[T](KindUnexpected, MsgUnexpected) }

// IsSuccess indica si el resultado lleva valor.
func (r Result[T]) IsSuccess() bool { return r.ok }

// Value devuelve el valor; solo tiene sentido si IsSuccess.
func (r Result[T]) Value() T { return r.value }

// Kind devuelve la categoría del fallo (KindNone en éxito).
func (r Result[T]) Kind() Kind { return r.kind }

// Errors devuelve los mensajes del fallo en orden; vacío en éxito.
func (r Result[T]) Errors() []string { return r.errors }

// FirstError devuelve el primer mensaje o cadena vacía en éxito.
func (r Result[T]) FirstError() string {
	if len(r.errors) == 0 {
		return ""
	}
	return r.errors[0]
}

// Status es la variante sin carga útil para operaciones de solo mutación
// (update, delete). Mismas garantías que Result.
type Status struct {
	ok     bool
	kind   Kind
	errors []string
}

// OkStatus construye un éxito sin valor.
func OkStatus() Status { return Status{ok: true} }

// FailStatus construye un fallo sin valor.
func FailStatus(kind Kind, messages ...string) Status {
	if len(messages) == 0 {
		messages = []string{MsgUnexpected}
	}
	return Status{kind: kind, errors: messages}
}

func (s Status) IsSuccess() bool  { return s.ok }
func (s Status) Kind() Kind       { return s.kind }
func (s Status) Errors() []string { return s.errors }

func (s Status) FirstError() string {
	if len(s.errors) == 0 {
		return ""
	}
	return s.errors[0]
}
