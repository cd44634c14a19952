package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearTipoIntervencionRequest struct {
	Nombre      string  `json:"nombre" validate:"required,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarTipoIntervencionRequest struct {
	Nombre      *string `json:"nombre" validate:"omitempty,min=2,max=100"`
	Descripcion *string `json:"descripcion"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TipoIntervencionResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion,omitempty"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}
