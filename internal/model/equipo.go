package model

import "time"

// Equipo is a maintainable machine. CodigoQR is the payload encoded into the
// printed QR label and acts as a second natural key next to the numeric ID.
type Equipo struct {
	ID               uint   `gorm:"primaryKey"`
	CodigoQR         string `gorm:"uniqueIndex;not null"`
	Nombre           string `gorm:"not null"`
	Descripcion      *string
	Ubicacion        string `gorm:"not null"`
	Tipo             string `gorm:"not null"` // free-form category, e.g. "Compresor"
	Modelo           *string
	Serie            *string
	Fabricante       *string
	FechaInstalacion *time.Time
	Activo           bool `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (Equipo) TableName() string { return "equipos" }
