package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/middleware"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/service"
)

type IntervencionesHandler struct{ svc service.IntervencionService }

func NewIntervencionesHandler(svc service.IntervencionService) *IntervencionesHandler {
	return &IntervencionesHandler{svc: svc}
}

// Listar GET /v1/intervenciones?equipo_id=&usuario_id=&solo_activas=&skip=&limit=
func (h *IntervencionesHandler) Listar(c *gin.Context) {
	offset, limit := paginacion(c, 20)
	f := repository.IntervencionFiltro{
		SoloActivas: c.Query("solo_activas") == "true",
		Offset:      offset,
		Limit:       limit,
	}
	if equipoID, ok := parseIDQuery(c, "equipo_id"); ok {
		f.EquipoID = &equipoID
	} else if c.IsAborted() {
		return
	}
	if usuarioID, ok := parseIDQuery(c, "usuario_id"); ok {
		f.UsuarioID = &usuarioID
	} else if c.IsAborted() {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/intervenciones (TECNICO o ADMIN). The author is always the
// authenticated user, regardless of anything in the body.
func (h *IntervencionesHandler) Crear(c *gin.Context) {
	var req dto.CrearIntervencionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	identidad := middleware.GetIdentidad(c)
	resp, err := h.svc.Crear(c.Request.Context(), req, identidad.UsuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Obtener GET /v1/intervenciones/:id — detail view with equipo, usuario and
// tipo embedded.
func (h *IntervencionesHandler) Obtener(c *gin.Context) {
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

// Actualizar PUT /v1/intervenciones/:id (TECNICO o ADMIN)
func (h *IntervencionesHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarIntervencionRequest
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

// Completar POST /v1/intervenciones/:id/completar (TECNICO o ADMIN).
// The body is optional: a bare completion keeps the stored observaciones and
// duracion.
func (h *IntervencionesHandler) Completar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CompletarIntervencionRequest
	if c.Request.ContentLength > 0 && !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Completar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/intervenciones/:id (solo ADMIN, hard delete)
func (h *IntervencionesHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Intervencion eliminada correctamente"})
}
