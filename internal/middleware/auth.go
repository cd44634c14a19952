package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/apierror"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/token"
)

const IdentidadKey = "identidad"

// Authenticate validates the Bearer token on every protected route and
// resolves the subject against the usuarios table. A validly signed token
// whose subject no longer exists or was deactivated is rejected: deactivating
// a user invalidates their outstanding tokens immediately.
func Authenticate(tokens *token.Service, usuarios repository.UsuarioRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Autenticacion requerida")
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if errors.Is(err, token.ErrExpirado) {
				abortUnauthorized(c, "Token expirado")
				return
			}
			abortUnauthorized(c, "Token invalido")
			return
		}

		id, _ := claims.UsuarioID()
		user, err := usuarios.FindByID(c.Request.Context(), id)
		if err != nil || !user.Activo {
			abortUnauthorized(c, "Usuario no encontrado o inactivo")
			return
		}

		// Role is taken from the live row, not the token, so role changes
		// apply without waiting for token expiry.
		c.Set(IdentidadKey, &authz.Identidad{
			UsuarioID: user.ID,
			Email:     user.Email,
			Rol:       user.Rol,
		})
		c.Next()
	}
}

// Require gates a route on a role-level capability. Self-or-admin checks need
// the target id from the URL and live in the handlers, still going through
// authz.Autorizar.
func Require(cap authz.Capacidad) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authz.Autorizar(GetIdentidad(c), cap, 0); err != nil {
			if errors.Is(err, authz.ErrNoAutenticado) {
				abortUnauthorized(c, "Autenticacion requerida")
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden,
				apierror.New(apierror.CodeNoAutorizado, "Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetIdentidad retrieves the resolved identity from the Gin context; nil when
// the route is public or authentication did not run.
func GetIdentidad(c *gin.Context) *authz.Identidad {
	v, ok := c.Get(IdentidadKey)
	if !ok {
		return nil
	}
	id, _ := v.(*authz.Identidad)
	return id
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(apierror.CodeNoAutenticado, msg))
}
