// Package validation valida las entradas de creación y actualización de
// productos. Devuelve mensajes legibles en el orden de declaración de los
// campos; todas las reglas aplicables se evalúan, nunca hay corto circuito
// en el primer error (una secuencia vacía significa entrada válida).
package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
)

var validate = newValidator()

// newValidator registra el conversor para que decimal.Decimal se valide
// como número (gt, lte) en lugar de como struct opaco.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// messages traduce campo+tag al mensaje de violación.
var messages = map[string]map[string]string{
	"Name": {
		"required": "el nombre es requerido",
		"max":      "el nombre no puede exceder 200 caracteres",
	},
	"Description": {
		"required": "la descripción es requerida",
		"max":      "la descripción no puede exceder 1000 caracteres",
	},
	"Price": {
		"gt":  "el precio debe ser mayor que cero",
		"lte": "el precio no puede exceder 999999.99",
	},
	"Stock": {
		"gte": "el stock no puede ser negativo",
	},
	"ImageURL": {
		"max": "la URL de la imagen no puede exceder 500 caracteres",
	},
	"CategoryID": {
		"required": "la categoría es requerida",
	},
}

// ValidateCreate valida la entrada de creación. Stock y categoría solo se
// validan aquí: no son actualizables. El uuid cero cuenta como categoría
// ausente igual que el string vacío.
func ValidateCreate(in dto.CreateProductRequest) []string {
	violations := collect(validate.Struct(in))
	if in.CategoryID == zeroUUID {
		violations = append(violations, messages["CategoryID"]["required"])
	}
	return violations
}

// ValidateUpdate valida la entrada de actualización (mismas reglas que la
// creación menos stock y categoría).
func ValidateUpdate(in dto.UpdateProductRequest) []string {
	return collect(validate.Struct(in))
}

const zeroUUID = "00000000-0000-0000-0000-000000000000"

// collect convierte los errores del motor en mensajes ordenados.
func collect(err error) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"entrada inválida"}
	}
	out := make([]string, 0, len(verrs))
	for _, e := range verrs {
		if byTag, ok := messages[e.Field()]; ok {
			if msg, ok := byTag[e.Tag()]; ok {
				out = append(out, msg)
				continue
			}
		}
		out = append(out, fmt.Sprintf("el campo %s es inválido", e.Field()))
	}
	return out
}
