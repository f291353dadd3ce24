package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/domain/entity"
	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userCols = `id, username, password_hash, rol, activo, created_at`

// UserRepo implementación de UserRepository (cuentas de acceso).
type UserRepo struct {
	q sqlx.Ext
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q sqlx.Ext) *UserRepo {
	return &UserRepo{q: q}
}

func (r *UserRepo) Create(u *entity.User) error {
	const query = `
		INSERT INTO usuarios (id, username, password_hash, rol, activo, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.q.Exec(query, u.ID, u.Username, u.PasswordHash, u.Rol, u.Activo, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	var u entity.User
	err := sqlx.Get(r.q, &u, `SELECT `+userCols+` FROM usuarios WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	var u entity.User
	err := sqlx.Get(r.q, &u, `SELECT `+userCols+` FROM usuarios WHERE username = ?`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por username: %w", err)
	}
	return &u, nil
}
