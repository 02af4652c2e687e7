package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje (operaciones sin cuerpo útil).
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse respuesta de creación: mensaje + id del documento insertado.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
