package model

import "time"

// TipoIntervencion is admin-managed reference data (e.g. "Mantenimiento
// Preventivo"). Unlike usuarios/equipos it is hard-deleted, but only while
// no intervencion references it.
type TipoIntervencion struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"uniqueIndex;not null"`
	Descripcion *string
	CreatedAt   time.Time
}

func (TipoIntervencion) TableName() string { return "tipos_intervencion" }
