package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceCols = `id, mecanico_id, descripcion, valor, metodo_pago, fecha, created_at`

// ServiceRepo implementación de ServiceRepository.
type ServiceRepo struct {
	q sqlx.Ext
}

// NewServiceRepository construye el adaptador.
func NewServiceRepository(q sqlx.Ext) *ServiceRepo {
	return &ServiceRepo{q: q}
}

func (r *ServiceRepo) Create(s *entity.Service) error {
	const query = `
		INSERT INTO servicios (id, mecanico_id, descripcion, valor, metodo_pago, fecha, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query, s.ID, s.MecanicoID, s.Descripcion, s.Valor, s.MetodoPago, s.Fecha, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	var s entity.Service
	err := sqlx.Get(r.q, &s, `SELECT `+serviceCols+` FROM servicios WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	return &s, nil
}

func (r *ServiceRepo) ListByRange(desde, hasta time.Time, mecanicoID string) ([]*entity.Service, error) {
	query := `SELECT ` + serviceCols + ` FROM servicios WHERE fecha >= ? AND fecha < ?`
	args := []interface{}{desde, hasta}
	if mecanicoID != "" {
		query += ` AND mecanico_id = ?`
		args = append(args, mecanicoID)
	}
	query += ` ORDER BY fecha`
	var list []*entity.Service
	if err := sqlx.Select(r.q, &list, query, args...); err != nil {
		return nil, fmt.Errorf("listar servicios: %w", err)
	}
	return list, nil
}
