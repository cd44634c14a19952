package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/service"
)

type EstadisticasHandler struct{ svc service.EstadisticasService }

func NewEstadisticasHandler(svc service.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{svc: svc}
}

// Obtener GET /v1/estadisticas — aggregate counters for the dashboard.
func (h *EstadisticasHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
