package dto

// RegisterRequest cadastro de usuário por matrícula e senha.
type RegisterRequest struct {
	Matricula string `json:"matricula"`
	Senha     string `json:"senha"`
}

// UserDTO resumo público do usuário (nunca expõe o hash da senha).
type UserDTO struct {
	ID        string `json:"id"`
	Matricula string `json:"matricula"`
}

// RegisterResponse resposta do cadastro.
type RegisterResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

// LoginRequest credenciais de login.
type LoginRequest struct {
	Matricula string `json:"matricula"`
	Senha     string `json:"senha"`
}

// LoginResponse token de sessão emitido no login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}
