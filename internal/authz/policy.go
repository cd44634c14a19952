// Package authz centralizes the role → capability decisions for every
// endpoint. Handlers never compare role strings directly; they declare the
// required capability and this package decides.
package authz

import "errors"

// Capacidad is a named authorization requirement attached to an endpoint.
type Capacidad int

const (
	// Autenticado: any valid, active identity.
	Autenticado Capacidad = iota
	// SoloAdmin: ADMIN role required.
	SoloAdmin
	// TecnicoOAdmin: TECNICO or ADMIN.
	TecnicoOAdmin
	// PropioOAdmin: the actor is the subject of the request, or ADMIN.
	PropioOAdmin
)

var (
	ErrNoAutenticado   = errors.New("autenticacion requerida")
	ErrRolInsuficiente = errors.New("permisos insuficientes")
	ErrNoPropio        = errors.New("solo puede acceder a sus propios datos")
)

// Identidad is a resolved, active user as seen by the policy. The middleware
// guarantees the subject exists and activo=true before an Identidad is built.
type Identidad struct {
	UsuarioID uint
	Email     string
	Rol       Rol
}

// Autorizar is a pure function of (identity, capability, target subject).
// objetivoID is only consulted for PropioOAdmin and is the user id the
// request operates on. Permission failures take precedence over not-found:
// callers must run Autorizar before any repository lookup of the target.
func Autorizar(id *Identidad, cap Capacidad, objetivoID uint) error {
	if id == nil || !id.Rol.EsValido() {
		return ErrNoAutenticado
	}
	switch cap {
	case Autenticado:
		return nil
	case SoloAdmin:
		if id.Rol != RolAdmin {
			return ErrRolInsuficiente
		}
		return nil
	case TecnicoOAdmin:
		if id.Rol != RolTecnico && id.Rol != RolAdmin {
			return ErrRolInsuficiente
		}
		return nil
	case PropioOAdmin:
		if id.Rol == RolAdmin || id.UsuarioID == objetivoID {
			return nil
		}
		return ErrNoPropio
	}
	return ErrRolInsuficiente
}
