package dto

// ErrorResponse corpo de erro da API: {"success": false, "message": ...}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Err monta um ErrorResponse com success=false.
func Err(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// MessageResponse resposta de sucesso sem payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
