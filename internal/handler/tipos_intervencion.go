package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/service"
)

type TiposIntervencionHandler struct{ svc service.TipoIntervencionService }

func NewTiposIntervencionHandler(svc service.TipoIntervencionService) *TiposIntervencionHandler {
	return &TiposIntervencionHandler{svc: svc}
}

// Listar GET /v1/tipos-intervencion
func (h *TiposIntervencionHandler) Listar(c *gin.Context) {
	offset, limit := paginacion(c, 100)
	resp, err := h.svc.Listar(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/tipos-intervencion (solo ADMIN)
func (h *TiposIntervencionHandler) Crear(c *gin.Context) {
	var req dto.CrearTipoIntervencionRequest
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

// Obtener GET /v1/tipos-intervencion/:id
func (h *TiposIntervencionHandler) Obtener(c *gin.Context) {
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

// Actualizar PUT /v1/tipos-intervencion/:id (solo ADMIN)
func (h *TiposIntervencionHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarTipoIntervencionRequest
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

// Eliminar DELETE /v1/tipos-intervencion/:id (solo ADMIN). Rejected with 409
// while intervenciones reference the tipo.
func (h *TiposIntervencionHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tipo de intervencion eliminado correctamente"})
}
