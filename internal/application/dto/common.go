package dto

import "time"

// PageRequest paginación para listados (1-indexada, estilo pageNumber/pageSize).
type PageRequest struct {
	PageNumber int `query:"pageNumber" validate:"min=1"`
	PageSize   int `query:"pageSize" validate:"min=1,max=100"`
}

// DefaultPage aplica valores por defecto si PageNumber/PageSize son cero.
func (p *PageRequest) DefaultPage() {
	if p.PageNumber <= 0 {
		p.PageNumber = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 10
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// ErrorResponse cuerpo de error HTTP: envelope uniforme del interceptor y
// de los Results fallidos.
type ErrorResponse struct {
	Error      string    `json:"error"`
	Errors     []string  `json:"errors,omitempty"`
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
}
