package repository

import (
	"time"

	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
)

// ServiceRepository puerto de persistencia de servicios de mano de obra.
type ServiceRepository interface {
	Create(s *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	// ListByRange lista servicios con fecha en [desde, hasta); mecanicoID
	// opcional ("" = todos).
	ListByRange(desde, hasta time.Time, mecanicoID string) ([]*entity.Service, error)
}
