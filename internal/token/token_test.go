package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
)

func TestIssueValidateRoundTrip(t *testing.T) {
	svc := NewService("secreto-de-prueba", 30)

	raw, err := svc.Issue(42, "tecnico@taller.com", authz.RolTecnico)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.Validate(raw)
	require.NoError(t, err)

	id, ok := claims.UsuarioID()
	require.True(t, ok)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "tecnico@taller.com", claims.Email)
	assert.Equal(t, authz.RolTecnico, claims.Rol)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateExpired(t *testing.T) {
	svc := NewService("secreto-de-prueba", 30)

	// Token signed with the right secret but already past its expiry.
	claims := &Claims{
		Email: "viejo@taller.com",
		Rol:   authz.RolAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	require.NoError(t, err)

	_, err = svc.Validate(raw)
	assert.ErrorIs(t, err, ErrExpirado)
}

func TestValidateWrongSecret(t *testing.T) {
	emisor := NewService("secreto-a", 30)
	receptor := NewService("secreto-b", 30)

	raw, err := emisor.Issue(1, "a@b.com", authz.RolLectura)
	require.NoError(t, err)

	_, err = receptor.Validate(raw)
	assert.ErrorIs(t, err, ErrMalFormado)
}

func TestValidateTampered(t *testing.T) {
	svc := NewService("secreto-de-prueba", 30)
	raw, err := svc.Issue(1, "a@b.com", authz.RolLectura)
	require.NoError(t, err)

	_, err = svc.Validate(raw[:len(raw)-2] + "xx")
	assert.ErrorIs(t, err, ErrMalFormado)
}

func TestValidateGarbage(t *testing.T) {
	svc := NewService("secreto-de-prueba", 30)
	_, err := svc.Validate("no-es-un-token")
	assert.ErrorIs(t, err, ErrMalFormado)
}

func TestValidateRejectsNoneAlgorithm(t *testing.T) {
	svc := NewService("secreto-de-prueba", 30)

	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(raw)
	assert.ErrorIs(t, err, ErrMalFormado)
}

func TestValidateMissingSubject(t *testing.T) {
	svc := NewService("secreto-de-prueba", 30)

	claims := &Claims{
		Email: "sin-sujeto@taller.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secreto-de-prueba"))
	require.NoError(t, err)

	_, err = svc.Validate(raw)
	assert.ErrorIs(t, err, ErrSinSujeto)
}
