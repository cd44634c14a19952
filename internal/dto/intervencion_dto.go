package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearIntervencionRequest struct {
	EquipoID       uint    `json:"equipo_id" validate:"required,min=1"`
	TipoID         uint    `json:"tipo_id"   validate:"required,min=1"`
	Descripcion    string  `json:"descripcion" validate:"required,min=1"`
	Observaciones  *string `json:"observaciones"`
	TiempoDuracion *int    `json:"tiempo_duracion" validate:"omitempty,min=0"` // minutes
}

type ActualizarIntervencionRequest struct {
	Descripcion    *string `json:"descripcion" validate:"omitempty,min=1"`
	Observaciones  *string `json:"observaciones"`
	TiempoDuracion *int    `json:"tiempo_duracion" validate:"omitempty,min=0"`
}

// CompletarIntervencionRequest optionally overwrites observaciones and
// duration on completion; omitted fields keep their previous values.
type CompletarIntervencionRequest struct {
	Observaciones  *string `json:"observaciones"`
	TiempoDuracion *int    `json:"tiempo_duracion" validate:"omitempty,min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type IntervencionResponse struct {
	ID                 uint       `json:"id"`
	EquipoID           uint       `json:"equipo_id"`
	UsuarioID          uint       `json:"usuario_id"`
	TipoID             uint       `json:"tipo_id"`
	Descripcion        string     `json:"descripcion"`
	Observaciones      *string    `json:"observaciones,omitempty"`
	TiempoDuracion     *int       `json:"tiempo_duracion,omitempty"`
	FechaInicio        time.Time  `json:"fecha_inicio"`
	FechaFin           *time.Time `json:"fecha_fin,omitempty"`
	Completada         bool       `json:"completada"`
	FechaCreacion      time.Time  `json:"fecha_creacion"`
	FechaActualizacion time.Time  `json:"fecha_actualizacion"`
}

// IntervencionDetalleResponse includes the explicitly eager-loaded relations.
type IntervencionDetalleResponse struct {
	IntervencionResponse
	Equipo  *EquipoResponse           `json:"equipo,omitempty"`
	Usuario *UsuarioResponse          `json:"usuario,omitempty"`
	Tipo    *TipoIntervencionResponse `json:"tipo,omitempty"`
}
