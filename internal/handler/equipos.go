package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/service"
)

type EquiposHandler struct{ svc service.EquipoService }

func NewEquiposHandler(svc service.EquipoService) *EquiposHandler {
	return &EquiposHandler{svc: svc}
}

// Listar GET /v1/equipos?tipo=&ubicacion=&incluir_inactivos=&skip=&limit=
func (h *EquiposHandler) Listar(c *gin.Context) {
	offset, limit := paginacion(c, 10)
	f := repository.EquipoFiltro{
		SoloActivos: c.Query("incluir_inactivos") != "true",
		Offset:      offset,
		Limit:       limit,
	}
	if tipo := c.Query("tipo"); tipo != "" {
		f.Tipo = &tipo
	}
	if ubicacion := c.Query("ubicacion"); ubicacion != "" {
		f.Ubicacion = &ubicacion
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/equipos (TECNICO o ADMIN)
func (h *EquiposHandler) Crear(c *gin.Context) {
	var req dto.CrearEquipoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener GET /v1/equipos/:id
func (h *EquiposHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorCodigoQR GET /v1/equipos/qr/:codigo — the scan round-trip.
func (h *EquiposHandler) ObtenerPorCodigoQR(c *gin.Context) {
	resp, err := h.svc.ObtenerPorCodigoQR(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QRImagen GET /v1/equipos/qr/:codigo/imagen — base64 PNG of the QR code.
func (h *EquiposHandler) QRImagen(c *gin.Context) {
	resp, err := h.svc.QRImagen(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Etiqueta GET /v1/equipos/:id/etiqueta — printable PDF label.
func (h *EquiposHandler) Etiqueta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	pdf, err := h.svc.EtiquetaPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=etiqueta-equipo-%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Historial GET /v1/equipos/:id/historial — intervenciones, newest first.
func (h *EquiposHandler) Historial(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offset, limit := paginacion(c, 20)
	resp, err := h.svc.Historial(c.Request.Context(), id, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/equipos/:id (TECNICO o ADMIN)
func (h *EquiposHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEquipoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar DELETE /v1/equipos/:id (TECNICO o ADMIN, soft delete —
// intervencion history survives)
func (h *EquiposHandler) Desactivar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Equipo eliminado correctamente"})
}
