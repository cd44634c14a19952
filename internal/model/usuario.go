package model

import (
	"time"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
)

// Usuario stores system users with role-based access.
// Rol: ADMIN | TECNICO | LECTURA. Soft-deleted via Activo so that past
// intervenciones stay attributable; rows are never physically removed.
type Usuario struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Rol          authz.Rol `gorm:"type:varchar(20);not null;default:'LECTURA'"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
