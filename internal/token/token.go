// Package token issues and validates the signed bearer tokens used by the
// API. Tokens are stateless and unrevocable before expiry: logout is
// client-side discardal, by design. The signing secret is process-wide
// configuration, loaded once at startup.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
)

var (
	// ErrExpirado: signature is fine but the expiry instant has passed.
	ErrExpirado = errors.New("token expirado")
	// ErrMalFormado: bad structure, bad signature or unexpected algorithm.
	ErrMalFormado = errors.New("token invalido")
	// ErrSinSujeto: payload verified but carries no subject identifier.
	ErrSinSujeto = errors.New("token sin sujeto")
)

// Claims are the identity attributes embedded in every access token.
// The registered Subject claim carries the user id in decimal form.
type Claims struct {
	Email string    `json:"email"`
	Rol   authz.Rol `json:"rol"`
	jwt.RegisteredClaims
}

// UsuarioID decodes the subject claim. A zero return with false means the
// subject is absent or not numeric.
func (c *Claims) UsuarioID() (uint, bool) {
	if c.Subject == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// Service signs and verifies access tokens with a shared HMAC secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttlMinutes int) *Service {
	return &Service{secret: []byte(secret), ttl: time.Duration(ttlMinutes) * time.Minute}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue produces a signed token for the given identity, expiring at
// issuance time + the configured TTL.
func (s *Service) Issue(usuarioID uint, email string, rol authz.Rol) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: email,
		Rol:   rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(usuarioID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate verifies signature and expiry against the local clock and returns
// the embedded claims. Failures map to the package sentinels; the caller is
// still responsible for checking that the subject exists and is active.
func (s *Service) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpirado
		}
		return nil, ErrMalFormado
	}
	if !tok.Valid {
		return nil, ErrMalFormado
	}
	if _, ok := claims.UsuarioID(); !ok {
		return nil, ErrSinSujeto
	}
	return claims, nil
}
