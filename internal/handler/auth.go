package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/dto"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/middleware"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/service"
)

type AuthHandler struct {
	svc      service.AuthService
	usuarios service.UsuarioService
}

func NewAuthHandler(svc service.AuthService, usuarios service.UsuarioService) *AuthHandler {
	return &AuthHandler{svc: svc, usuarios: usuarios}
}

// Login godoc
// @Summary Login con email y contraseña
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me GET /v1/auth/me — the authenticated user's own record.
func (h *AuthHandler) Me(c *gin.Context) {
	identidad := middleware.GetIdentidad(c)
	resp, err := h.usuarios.Obtener(c.Request.Context(), identidad.UsuarioID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
