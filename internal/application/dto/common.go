package dto

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate aplica las anotaciones `validate` de un DTO de entrada. Debe
// llamarse antes de ejecutar cualquier lógica de dominio.
func Validate(in any) error {
	return validate.Struct(in)
}

// Response sobre de respuesta exitosa: {success, message, data}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK construye una respuesta exitosa.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// ErrorResponse sobre de error HTTP: {success, code, message}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Fail construye una respuesta de error.
func Fail(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Message: message}
}
