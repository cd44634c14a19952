package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearEquipoRequest struct {
	CodigoQR         string     `json:"codigo_qr"  validate:"required,min=1,max=100"`
	Nombre           string     `json:"nombre"     validate:"required,min=2,max=150"`
	Descripcion      *string    `json:"descripcion"`
	Ubicacion        string     `json:"ubicacion"  validate:"required,min=1,max=150"`
	Tipo             string     `json:"tipo"       validate:"required,min=1,max=100"`
	Modelo           *string    `json:"modelo"`
	Serie            *string    `json:"serie"`
	Fabricante       *string    `json:"fabricante"`
	FechaInstalacion *time.Time `json:"fecha_instalacion"`
}

type ActualizarEquipoRequest struct {
	Nombre           *string    `json:"nombre"     validate:"omitempty,min=2,max=150"`
	Descripcion      *string    `json:"descripcion"`
	Ubicacion        *string    `json:"ubicacion"  validate:"omitempty,min=1,max=150"`
	Tipo             *string    `json:"tipo"       validate:"omitempty,min=1,max=100"`
	Modelo           *string    `json:"modelo"`
	Serie            *string    `json:"serie"`
	Fabricante       *string    `json:"fabricante"`
	FechaInstalacion *time.Time `json:"fecha_instalacion"`
	Activo           *bool      `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EquipoResponse struct {
	ID                 uint       `json:"id"`
	CodigoQR           string     `json:"codigo_qr"`
	Nombre             string     `json:"nombre"`
	Descripcion        *string    `json:"descripcion,omitempty"`
	Ubicacion          string     `json:"ubicacion"`
	Tipo               string     `json:"tipo"`
	Modelo             *string    `json:"modelo,omitempty"`
	Serie              *string    `json:"serie,omitempty"`
	Fabricante         *string    `json:"fabricante,omitempty"`
	FechaInstalacion   *time.Time `json:"fecha_instalacion,omitempty"`
	Activo             bool       `json:"activo"`
	FechaCreacion      time.Time  `json:"fecha_creacion"`
	FechaActualizacion time.Time  `json:"fecha_actualizacion"`
}

// QRImagenResponse carries the QR code for an equipo as a base64 PNG.
// Scanning the image yields CodigoQR, which round-trips through
// GET /v1/equipos/qr/:codigo back to the same row.
type QRImagenResponse struct {
	EquipoID uint   `json:"equipo_id"`
	CodigoQR string `json:"codigo_qr"`
	QRImagen string `json:"qr_image"`
}
