package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/apierror"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/middleware"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/service"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
// Nothing touches the database before this point.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeValidacion, "JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// parseIDParam reads a positive integer path parameter. Returns 0 and writes
// a 400 response when the value is not a valid id.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeValidacion, "ID invalido"))
		return 0, false
	}
	return uint(id), true
}

// parseIDQuery reads an optional positive integer query parameter. A missing
// parameter returns (0, false) with the context untouched; a present but
// invalid value writes a 400 response and aborts.
func parseIDQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			apierror.New(apierror.CodeValidacion, "Parametro "+name+" invalido"))
		return 0, false
	}
	return uint(id), true
}

// paginacion reads skip/limit query parameters with the given default limit,
// clamping limit to [1, 100].
func paginacion(c *gin.Context, defaultLimit int) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	if offset < 0 {
		offset = 0
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return offset, limit
}

// autorizarPropio enforces PropioOAdmin for routes whose target user id comes
// from the URL. The check runs before any lookup of the target, so permission
// failure takes precedence over not-found and never leaks row existence.
func autorizarPropio(c *gin.Context, objetivoID uint) bool {
	if err := authz.Autorizar(middleware.GetIdentidad(c), authz.PropioOAdmin, objetivoID); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// respondError maps domain and repository errors onto the HTTP error
// taxonomy. Anything unrecognized is an internal failure: logged with full
// detail, returned opaque.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(apierror.CodeNoEncontrado, "Recurso no encontrado"))
	case errors.Is(err, repository.ErrDuplicado):
		c.JSON(http.StatusConflict, apierror.New(apierror.CodeConflicto, "Ya existe un registro con esa clave"))
	case errors.Is(err, repository.ErrReferenciaNoExiste):
		c.JSON(http.StatusBadRequest, apierror.New(apierror.CodeReferencia, "La referencia indicada no existe"))
	case errors.Is(err, service.ErrTipoEnUso):
		c.JSON(http.StatusConflict, apierror.New(apierror.CodeConflicto, err.Error()))
	case errors.Is(err, service.ErrCredencialesInvalidas):
		c.JSON(http.StatusUnauthorized, apierror.New(apierror.CodeNoAutenticado, err.Error()))
	case errors.Is(err, authz.ErrNoAutenticado):
		c.JSON(http.StatusUnauthorized, apierror.New(apierror.CodeNoAutenticado, "Autenticacion requerida"))
	case errors.Is(err, authz.ErrRolInsuficiente), errors.Is(err, authz.ErrNoPropio):
		c.JSON(http.StatusForbidden, apierror.New(apierror.CodeNoAutorizado, "Permisos insuficientes"))
	default:
		log.Error().
			Str("request_id", c.GetString(middleware.RequestIDKey)).
			Str("path", c.FullPath()).
			Err(err).
			Msg("internal error")
		c.JSON(http.StatusInternalServerError, apierror.New(apierror.CodeInterno, "Error interno del servidor"))
	}
}
