package entity

import "time"

// Cargos conhecidos para User. O cadastro aceita outros valores; estes são os
// usados pelos relatórios.
const (
	RoleOperador  = "operador"
	RoleVendedor  = "vendedor"
	RoleMotorista = "motorista"
)

// User representa um usuário do sistema. A matrícula é a identidade de login
// (única e imutável); apenas senha, cargo e ativo mudam após o cadastro.
type User struct {
	ID           string
	Matricula    string
	PasswordHash string // hash bcrypt, nunca a senha em claro
	Role         string // cargo
	Active       bool
	CreatedAt    time.Time
}
