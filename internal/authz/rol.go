package authz

// Rol is the closed set of user roles. Privilege is partial:
// ADMIN ⊇ TECNICO; LECTURA grants read access only.
type Rol string

const (
	RolAdmin   Rol = "ADMIN"
	RolTecnico Rol = "TECNICO"
	RolLectura Rol = "LECTURA"
)

// EsValido reports whether r is one of the declared roles.
func (r Rol) EsValido() bool {
	switch r {
	case RolAdmin, RolTecnico, RolLectura:
		return true
	}
	return false
}
