package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llanterasoft/llantera-pos/internal/application/auth"
	"github.com/llanterasoft/llantera-pos/internal/application/dto"
	"github.com/llanterasoft/llantera-pos/internal/domain"
	"github.com/llanterasoft/llantera-pos/internal/infrastructure/sqlite"
)

func newAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, sqlite.Bootstrap(db))
	return auth.NewAuthUseCase(sqlite.NewUserRepository(db), auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "llantera-pos-test",
	})
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.RegisterUser(dto.RegisterUserRequest{
		Username: "maria", Password: "secreto1", Rol: "vendedor",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreto1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "vendedor", out.Rol)
}

// Usuario inexistente y contraseña incorrecta devuelven el mismo error:
// la respuesta de login no revela qué cuentas existen.
func TestLogin_FallaGenericaSinDelatarCuentas(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.RegisterUser(dto.RegisterUserRequest{
		Username: "maria", Password: "secreto1",
	})
	require.NoError(t, err)

	_, errDesconocido := uc.Login(dto.LoginRequest{Username: "nadie", Password: "secreto1"})
	require.ErrorIs(t, errDesconocido, domain.ErrUnauthorized)

	_, errPassword := uc.Login(dto.LoginRequest{Username: "maria", Password: "incorrecta"})
	require.ErrorIs(t, errPassword, domain.ErrUnauthorized)
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.RegisterUser(dto.RegisterUserRequest{Username: "maria", Password: "secreto1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterUserRequest{Username: "maria", Password: "secreto2"})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_PasswordCorto(t *testing.T) {
	uc := newAuthUC(t)
	_, err := uc.RegisterUser(dto.RegisterUserRequest{Username: "maria", Password: "abc"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
