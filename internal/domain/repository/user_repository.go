package repository

import "github.com/llanterasoft/llantera-pos/internal/domain/entity"

// UserRepository puerto de persistencia de cuentas de acceso.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
}
