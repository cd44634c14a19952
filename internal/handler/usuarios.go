package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/apierror"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/middleware"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/service"
)

type UsuariosHandler struct {
	svc            service.UsuarioService
	intervenciones service.IntervencionService
}

func NewUsuariosHandler(svc service.UsuarioService, intervenciones service.IntervencionService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc, intervenciones: intervenciones}
}

// Crear POST /v1/usuarios (solo ADMIN)
func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
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

// Listar GET /v1/usuarios (solo ADMIN)
func (h *UsuariosHandler) Listar(c *gin.Context) {
	offset, limit := paginacion(c, 10)
	soloActivos := c.Query("incluir_inactivos") != "true"
	resp, err := h.svc.Listar(c.Request.Context(), soloActivos, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener GET /v1/usuarios/:id (propio o ADMIN)
func (h *UsuariosHandler) Obtener(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !autorizarPropio(c, id) {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /v1/usuarios/:id (propio o ADMIN; rol/activo solo ADMIN)
func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !autorizarPropio(c, id) {
		return
	}
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	// Privilege fields are admin-only even on a self update.
	identidad := middleware.GetIdentidad(c)
	if (req.Rol != nil || req.Activo != nil) && identidad.Rol != authz.RolAdmin {
		c.JSON(http.StatusForbidden,
			apierror.New(apierror.CodeNoAutorizado, "Solo un ADMIN puede cambiar rol o estado"))
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Desactivar DELETE /v1/usuarios/:id (solo ADMIN, soft delete)
func (h *UsuariosHandler) Desactivar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado correctamente"})
}

// Intervenciones GET /v1/usuarios/:id/intervenciones (propio o ADMIN)
func (h *UsuariosHandler) Intervenciones(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !autorizarPropio(c, id) {
		return
	}
	offset, limit := paginacion(c, 20)
	resp, err := h.intervenciones.ListarPorUsuario(c.Request.Context(), id, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
