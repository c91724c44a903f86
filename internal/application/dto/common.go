package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse respuesta de creación con el ID generado por la base.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
