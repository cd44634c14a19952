package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/config"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/handler"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/middleware"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/service"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/token"
)

// New builds the fully wired Gin engine: repositories over the given database,
// services over the repositories, handlers over the services, and the route
// table with per-route capability gates.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories
	usuarioRepo := repository.NewUsuarioRepository(db)
	equipoRepo := repository.NewEquipoRepository(db)
	tipoRepo := repository.NewTipoIntervencionRepository(db)
	intervencionRepo := repository.NewIntervencionRepository(db)

	// Services
	tokens := token.NewService(cfg.SecretKey, cfg.AccessTokenTTLMinutes)
	authSvc := service.NewAuthService(usuarioRepo, tokens)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	equipoSvc := service.NewEquipoService(equipoRepo, intervencionRepo)
	tipoSvc := service.NewTipoIntervencionService(tipoRepo, intervencionRepo)
	intervencionSvc := service.NewIntervencionService(intervencionRepo, equipoRepo, tipoRepo, usuarioRepo)
	estadisticasSvc := service.NewEstadisticasService(equipoRepo, intervencionRepo)

	// Handlers
	authH := handler.NewAuthHandler(authSvc, usuarioSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc, intervencionSvc)
	equiposH := handler.NewEquiposHandler(equipoSvc)
	tiposH := handler.NewTiposIntervencionHandler(tipoSvc)
	intervencionesH := handler.NewIntervencionesHandler(intervencionSvc)
	estadisticasH := handler.NewEstadisticasHandler(estadisticasSvc)
	healthH := handler.NewHealthHandler(db)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(cfg.AllowedOrigin),
		middleware.ErrorHandler(),
	)

	// Public surface
	r.GET("/health", healthH.Check)
	if cfg.Env != "production" {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/v1")
	v1.POST("/auth/login", authH.Login)

	// Everything below requires a valid token bound to an active user.
	auth := v1.Group("")
	auth.Use(middleware.Authenticate(tokens, usuarioRepo))

	auth.GET("/auth/me", authH.Me)

	usuarios := auth.Group("/usuarios")
	{
		usuarios.POST("", middleware.Require(authz.SoloAdmin), usuariosH.Crear)
		usuarios.GET("", middleware.Require(authz.SoloAdmin), usuariosH.Listar)
		// Self-or-admin routes run their check in the handler, where the
		// target id is available.
		usuarios.GET("/:id", usuariosH.Obtener)
		usuarios.PUT("/:id", usuariosH.Actualizar)
		usuarios.DELETE("/:id", middleware.Require(authz.SoloAdmin), usuariosH.Desactivar)
		usuarios.GET("/:id/intervenciones", usuariosH.Intervenciones)
	}

	equipos := auth.Group("/equipos")
	{
		equipos.GET("", equiposH.Listar)
		equipos.POST("", middleware.Require(authz.TecnicoOAdmin), equiposH.Crear)
		// Static segments before :id so Gin does not treat "qr" as an id.
		equipos.GET("/qr/:codigo", equiposH.ObtenerPorCodigoQR)
		equipos.GET("/qr/:codigo/imagen", middleware.Require(authz.TecnicoOAdmin), equiposH.QRImagen)
		equipos.GET("/:id", equiposH.Obtener)
		equipos.GET("/:id/historial", equiposH.Historial)
		equipos.GET("/:id/etiqueta", middleware.Require(authz.TecnicoOAdmin), equiposH.Etiqueta)
		equipos.PUT("/:id", middleware.Require(authz.TecnicoOAdmin), equiposH.Actualizar)
		equipos.DELETE("/:id", middleware.Require(authz.TecnicoOAdmin), equiposH.Desactivar)
	}

	tipos := auth.Group("/tipos-intervencion")
	{
		tipos.GET("", tiposH.Listar)
		tipos.GET("/:id", tiposH.Obtener)
		tipos.POST("", middleware.Require(authz.SoloAdmin), tiposH.Crear)
		tipos.PUT("/:id", middleware.Require(authz.SoloAdmin), tiposH.Actualizar)
		tipos.DELETE("/:id", middleware.Require(authz.SoloAdmin), tiposH.Eliminar)
	}

	intervenciones := auth.Group("/intervenciones")
	{
		intervenciones.GET("", intervencionesH.Listar)
		intervenciones.POST("", middleware.Require(authz.TecnicoOAdmin), intervencionesH.Crear)
		intervenciones.GET("/:id", intervencionesH.Obtener)
		intervenciones.PUT("/:id", middleware.Require(authz.TecnicoOAdmin), intervencionesH.Actualizar)
		intervenciones.POST("/:id/completar", middleware.Require(authz.TecnicoOAdmin), intervencionesH.Completar)
		intervenciones.DELETE("/:id", middleware.Require(authz.SoloAdmin), intervencionesH.Eliminar)
	}

	auth.GET("/estadisticas", estadisticasH.Obtener)

	return r
}
