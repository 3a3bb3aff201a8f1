package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesharis-cell/platform-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func TestGenerateParse_RoundTrip(t *testing.T) {
	ac := jwt.AuthContext{
		UserID:     "user-1",
		PlatformID: "plat-1",
		CompanyID:  "co-1",
		Role:       "CLIENT",
	}

	token, err := jwt.Generate(testSecret, ac, "eventia-api", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, ac, got, "el contexto de autorización debe sobrevivir el viaje completo")
}

func TestGenerate_SecretVacioFalla(t *testing.T) {
	_, err := jwt.Generate("", jwt.AuthContext{UserID: "user-1"}, "eventia-api", 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrectaFalla(t *testing.T) {
	token, err := jwt.Generate(testSecret, jwt.AuthContext{UserID: "user-1"}, "eventia-api", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro-secreto", token)
	assert.Error(t, err, "un token firmado con otro secreto no debe validar")
}

func TestParse_TokenExpiradoFalla(t *testing.T) {
	token, err := jwt.Generate(testSecret, jwt.AuthContext{UserID: "user-1"}, "eventia-api", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, token)
	assert.Error(t, err)
}

func TestParse_BasuraFalla(t *testing.T) {
	_, err := jwt.Parse(testSecret, "no.es.un.jwt")
	assert.Error(t, err)
}

// TestGenerate_CompanyIDVacioParaPersonalInterno documenta que el personal de
// plataforma viaja sin empresa en el token.
func TestGenerate_CompanyIDVacioParaPersonalInterno(t *testing.T) {
	token, err := jwt.Generate(testSecret, jwt.AuthContext{UserID: "user-1", PlatformID: "plat-1", Role: "ADMIN"}, "eventia-api", 60)
	require.NoError(t, err)

	got, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Empty(t, got.CompanyID)
	assert.Equal(t, "ADMIN", got.Role)
}
