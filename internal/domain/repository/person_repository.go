package repository

import "github.com/llanterasoft/llantera-pos/internal/domain/entity"

// PersonRepository puerto de persistencia del personal (vendedores y mecánicos).
type PersonRepository interface {
	Create(p *entity.Person) error
	GetByID(id string) (*entity.Person, error)
	// ListActive lista personal activo; rol opcional ("" = todos).
	ListActive(rol string) ([]*entity.Person, error)
	Update(p *entity.Person) error
	Deactivate(id string) error
}
