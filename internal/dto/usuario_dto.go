package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearUsuarioRequest struct {
	Email    string `json:"email"    validate:"required,email,max=150"`
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=ADMIN TECNICO LECTURA"`
	Password string `json:"password" validate:"required,min=8"`
}

// ActualizarUsuarioRequest applies only the fields present in the body;
// absent (nil) fields are left untouched.
type ActualizarUsuarioRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Rol      *string `json:"rol"      validate:"omitempty,oneof=ADMIN TECNICO LECTURA"`
	Activo   *bool   `json:"activo"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse deliberately has no field for the password hash, so it can
// never be serialized regardless of handler code.
type UsuarioResponse struct {
	ID                 uint      `json:"id"`
	Email              string    `json:"email"`
	Nombre             string    `json:"nombre"`
	Rol                string    `json:"rol"`
	Activo             bool      `json:"activo"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}
