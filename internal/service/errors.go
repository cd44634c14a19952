package service

import "errors"

var (
	// ErrCredencialesInvalidas is deliberately generic: it never reveals
	// whether the email exists, the user is inactive, or the password is wrong.
	ErrCredencialesInvalidas = errors.New("email o contraseña incorrectos")

	// ErrTipoEnUso: the tipo de intervencion is referenced by at least one
	// intervencion and cannot be hard-deleted.
	ErrTipoEnUso = errors.New("el tipo de intervencion tiene intervenciones asociadas")
)
