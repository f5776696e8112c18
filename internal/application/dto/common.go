package dto

// PageResponse envoltura de paginación: contenido mapeado más metadatos de
// página. No consulta ni muta datos, es transformación pura.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewPageResponse calcula los metadatos a partir de la página obtenida.
// totalPages = ceil(totalElements/size), 0 cuando no hay elementos; last es
// verdadero cuando page >= totalPages-1 (incluida la página vacía de un
// resultado sin elementos).
func NewPageResponse[T any](content []T, page, size int, totalElements int64) PageResponse[T] {
	totalPages := 0
	if totalElements > 0 && size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}
}

// ErrorResponse cuerpo uniforme de error HTTP.
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}
