package model

import "time"

// Intervencion records one maintenance action against an equipo, authored by
// a usuario. Completada=true implies FechaFin is set; Completar is the only
// transition that flips it. Foreign keys are enforced by the database, so a
// concurrent delete of the target surfaces as a constraint violation rather
// than a silent dangling reference.
type Intervencion struct {
	ID             uint   `gorm:"primaryKey"`
	EquipoID       uint   `gorm:"not null;index"`
	UsuarioID      uint   `gorm:"not null;index"`
	TipoID         uint   `gorm:"not null;index"`
	Descripcion    string `gorm:"type:text;not null"`
	Observaciones  *string
	TiempoDuracion *int // minutes
	FechaInicio    time.Time
	FechaFin       *time.Time
	Completada     bool `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Equipo  *Equipo           `gorm:"foreignKey:EquipoID"`
	Usuario *Usuario          `gorm:"foreignKey:UsuarioID"`
	Tipo    *TipoIntervencion `gorm:"foreignKey:TipoID"`
}

func (Intervencion) TableName() string { return "intervenciones" }
