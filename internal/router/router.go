// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/config"
	"github.com/tienda/dispositivos-backend/internal/handlers"
	"github.com/tienda/dispositivos-backend/internal/middleware"
	"github.com/tienda/dispositivos-backend/internal/services"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	dispositivoService := services.NewDispositivoService(db)
	caracteristicaService := services.NewCaracteristicaService(db)
	personalizacionService := services.NewPersonalizacionService(db)
	opcionService := services.NewOpcionService(db)
	adicionalService := services.NewAdicionalService(db)
	ventaService := services.NewVentaService(db)
	userService := services.NewUserService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	dispositivoHandler := handlers.NewDispositivoHandler(dispositivoService, cfg.AppName)
	caracteristicaHandler := handlers.NewCaracteristicaHandler(caracteristicaService, cfg.AppName)
	personalizacionHandler := handlers.NewPersonalizacionHandler(personalizacionService, cfg.AppName)
	opcionHandler := handlers.NewOpcionHandler(opcionService, cfg.AppName)
	adicionalHandler := handlers.NewAdicionalHandler(adicionalService, cfg.AppName)
	ventaHandler := handlers.NewVentaHandler(ventaService, cfg.AppName)
	userHandler := handlers.NewUserHandler(userService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.AppName, cfg.CORS.AllowedOrigins))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/authenticate", middleware.AuthRateLimit(), authHandler.Authenticate)

		registerResource(api, "dispositivos", resourceHandlers{
			Create:        dispositivoHandler.Create,
			Update:        dispositivoHandler.Update,
			PartialUpdate: dispositivoHandler.PartialUpdate,
			GetAll:        dispositivoHandler.GetAll,
			GetOne:        dispositivoHandler.GetOne,
			Delete:        dispositivoHandler.Delete,
		})
		registerResource(api, "caracteristicas", resourceHandlers{
			Create:        caracteristicaHandler.Create,
			Update:        caracteristicaHandler.Update,
			PartialUpdate: caracteristicaHandler.PartialUpdate,
			GetAll:        caracteristicaHandler.GetAll,
			GetOne:        caracteristicaHandler.GetOne,
			Delete:        caracteristicaHandler.Delete,
		})
		registerResource(api, "personalizacions", resourceHandlers{
			Create:        personalizacionHandler.Create,
			Update:        personalizacionHandler.Update,
			PartialUpdate: personalizacionHandler.PartialUpdate,
			GetAll:        personalizacionHandler.GetAll,
			GetOne:        personalizacionHandler.GetOne,
			Delete:        personalizacionHandler.Delete,
		})
		registerResource(api, "opcions", resourceHandlers{
			Create:        opcionHandler.Create,
			Update:        opcionHandler.Update,
			PartialUpdate: opcionHandler.PartialUpdate,
			GetAll:        opcionHandler.GetAll,
			GetOne:        opcionHandler.GetOne,
			Delete:        opcionHandler.Delete,
		})
		registerResource(api, "adicionals", resourceHandlers{
			Create:        adicionalHandler.Create,
			Update:        adicionalHandler.Update,
			PartialUpdate: adicionalHandler.PartialUpdate,
			GetAll:        adicionalHandler.GetAll,
			GetOne:        adicionalHandler.GetOne,
			Delete:        adicionalHandler.Delete,
		})

		// Sales carry the authenticated user, so the whole group is protected.
		ventas := api.Group("/ventas")
		ventas.Use(middleware.AuthRequired())
		{
			ventas.POST("", ventaHandler.Create)
			ventas.GET("", ventaHandler.GetAll)
			ventas.GET("/:id", ventaHandler.GetOne)
			ventas.PUT("/:id", ventaHandler.Update)
			ventas.PATCH("/:id", ventaHandler.PartialUpdate)
			ventas.DELETE("/:id", ventaHandler.Delete)
		}

		// Account administration is restricted to ROLE_ADMIN.
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/users", userHandler.GetAll)
			admin.GET("/users/:login", userHandler.GetOne)
		}
	}

	return r
}

type resourceHandlers struct {
	Create        gin.HandlerFunc
	Update        gin.HandlerFunc
	PartialUpdate gin.HandlerFunc
	GetAll        gin.HandlerFunc
	GetOne        gin.HandlerFunc
	Delete        gin.HandlerFunc
}

// registerResource wires the standard CRUD surface for a catalog entity.
// Reads are public, writes require a bearer token.
func registerResource(api *gin.RouterGroup, path string, h resourceHandlers) {
	group := api.Group("/" + path)
	{
		group.GET("", middleware.OptionalAuth(), h.GetAll)
		group.GET("/:id", middleware.OptionalAuth(), h.GetOne)

		protected := group.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.POST("", h.Create)
			protected.PUT("/:id", h.Update)
			protected.PATCH("/:id", h.PartialUpdate)
			protected.DELETE("/:id", h.Delete)
		}
	}
}
