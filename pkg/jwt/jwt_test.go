package jwt_test

import (
	"testing"

	"github.com/jhoicas/estoque-api/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate(testSecret, 42, "ana@example.com", true, "estoque-api", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.True(t, claims.Admin)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID, "cada token lleva jti")
}

func TestGenerate_JTIDistinto(t *testing.T) {
	a, err := jwt.Generate(testSecret, 1, "a@x.com", false, "i", 60)
	require.NoError(t, err)
	b, err := jwt.Generate(testSecret, 1, "a@x.com", false, "i", 60)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParse_Rechazos(t *testing.T) {
	expired, err := jwt.Generate(testSecret, 1, "a@x.com", false, "i", -1)
	require.NoError(t, err)
	valid, err := jwt.Generate(testSecret, 1, "a@x.com", false, "i", 60)
	require.NoError(t, err)

	_, err = jwt.Parse(testSecret, expired)
	assert.Error(t, err, "token expirado")

	_, err = jwt.Parse("otra-clave", valid)
	assert.Error(t, err, "firma incorrecta")

	_, err = jwt.Parse(testSecret, "no.es.jwt")
	assert.Error(t, err)

	_, err = jwt.Parse("", valid)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}

func TestGenerate_SinSecreto(t *testing.T) {
	_, err := jwt.Generate("", 1, "a@x.com", false, "i", 60)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
