// Package repository holds the GORM-backed persistence layer. Storage-level
// failures are translated into the sentinel errors below so that services and
// handlers can branch with errors.Is instead of inspecting driver errors.
// Uniqueness and referential integrity are enforced by database constraints,
// not by check-then-insert in application code, so concurrent creates race
// safely and surface here as ErrDuplicado / ErrReferenciaNoExiste.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNoEncontrado: the target row does not exist.
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrDuplicado: a unique constraint (email, codigo_qr, nombre) is taken.
	ErrDuplicado = errors.New("clave duplicada")
	// ErrReferenciaNoExiste: a required foreign key target is missing.
	ErrReferenciaNoExiste = errors.New("referencia inexistente")
)

// traducir maps GORM's translated driver errors onto the package sentinels.
// Requires gorm.Config{TranslateError: true} on the connection.
func traducir(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNoEncontrado
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicado
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrReferenciaNoExiste
	default:
		return err
	}
}
