package repository

import "github.com/llanterasoft/llantera-pos/internal/domain/entity"

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	Create(c *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListActive(search string) ([]*entity.Customer, error)
	Update(c *entity.Customer) error
	Deactivate(id string) error
}
