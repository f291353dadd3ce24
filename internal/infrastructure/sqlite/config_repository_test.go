package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llanterasoft/llantera-pos/internal/domain/repository"
	"github.com/llanterasoft/llantera-pos/internal/infrastructure/sqlite"
)

func TestConfigRepo_GetSetUpsert(t *testing.T) {
	repo := sqlite.NewConfigRepository(newTestDB(t))

	// Clave ausente: "" sin error.
	valor, err := repo.Get(repository.ConfigTasaComision)
	require.NoError(t, err)
	assert.Equal(t, "", valor)

	require.NoError(t, repo.Set(repository.ConfigTasaComision, "0.25"))
	valor, err = repo.Get(repository.ConfigTasaComision)
	require.NoError(t, err)
	assert.Equal(t, "0.25", valor)

	// Set sobre clave existente reemplaza.
	require.NoError(t, repo.Set(repository.ConfigTasaComision, "0.35"))
	valor, err = repo.Get(repository.ConfigTasaComision)
	require.NoError(t, err)
	assert.Equal(t, "0.35", valor)
}
