package repository

import "github.com/jpcardoso/almoxarifado-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByMatricula(matricula string) (*entity.User, error)
}
