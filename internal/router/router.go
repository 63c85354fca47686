package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/config"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/handler"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/infra"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/middleware"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/model"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/repository"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/service"
	"github.com/TonatiuhAM/proyecto-pos-finanzas-sub000/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, ml *infra.MLClient, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	personaRepo := repository.NewPersonaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	historialRepo := repository.NewHistorialRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	ordenCompraRepo := repository.NewOrdenCompraRepository(db)
	ordenVentaRepo := repository.NewOrdenVentaRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	idemRepo := repository.NewIdempotenciaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, catalogoRepo, cfg)
	personaSvc := service.NewPersonaService(personaRepo, catalogoRepo)
	productoSvc := service.NewProductoService(productoRepo, historialRepo, catalogoRepo)
	inventarioSvc := service.NewInventarioService(inventarioRepo, catalogoRepo)
	comprasSvc := service.NewComprasService(
		ordenCompraRepo, personaRepo, productoRepo, historialRepo,
		catalogoRepo, idemRepo, inventarioSvc, cfg.ToleranciaPago(),
	)
	deudasSvc := service.NewDeudasService(ordenCompraRepo, personaRepo, catalogoRepo)
	workspaceSvc := service.NewWorkspaceService(workspaceRepo, productoRepo, historialRepo)
	ventaSvc := service.NewVentaService(
		ordenVentaRepo, workspaceRepo, personaRepo, catalogoRepo,
		idemRepo, inventarioSvc, workspaceSvc, dispatcher, cfg.ClienteDefecto,
	)
	analyticsSvc := service.NewAnalyticsService(ordenVentaRepo, ml, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	personasH := handler.NewPersonasHandler(personaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	comprasH := handler.NewComprasHandler(comprasSvc)
	deudasH := handler.NewDeudasHandler(deudasSvc)
	workspacesH := handler.NewWorkspacesHandler(workspaceSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	catalogosH := handler.NewCatalogosHandler(catalogoRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, ml))
	r.POST("/api/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		admin := middleware.RequireRole(model.RolAdministrador)
		operativo := middleware.RequireRole(model.RolAdministrador, model.RolEmpleado)

		usuarios := api.Group("/usuarios", admin)
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PATCH("/:id/estado", authH.CambiarEstado)
		}

		personas := api.Group("/personas", operativo)
		{
			personas.POST("", personasH.Crear)
			personas.GET("", personasH.Listar)
			personas.GET("/clientes", personasH.ListarClientes)
			personas.GET("/:id", personasH.Obtener)
			personas.PUT("/:id", personasH.Actualizar)
			personas.DELETE("/:id", personasH.Desactivar)
		}

		productos := api.Group("/productos", operativo)
		{
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.Obtener)
			productos.GET("/:id/historial-precios", productosH.HistorialPrecios)
			productos.GET("/:id/historial-costos", productosH.HistorialCostos)
			productos.POST("", admin, productosH.Crear)
			productos.PUT("/:id", admin, productosH.Actualizar)
			productos.DELETE("/:id", admin, productosH.Desactivar)
		}

		compras := api.Group("/compras", operativo)
		{
			compras.POST("", comprasH.CrearOrden)
			compras.GET("/:id", comprasH.ObtenerOrden)
		}
		api.POST("/pagos", operativo, comprasH.RegistrarPago)

		proveedores := api.Group("/proveedores", operativo)
		{
			proveedores.GET("", comprasH.ListarProveedores)
			proveedores.GET("/:id/compras", comprasH.ListarOrdenesProveedor)
			proveedores.GET("/:id/deuda", comprasH.Deuda)
			proveedores.GET("/:id/pagos", comprasH.ListarPagosProveedor)
			proveedores.GET("/:id/productos", comprasH.ProductosProveedor)
		}

		deudas := api.Group("/deudas", operativo)
		{
			deudas.GET("", deudasH.Reporte)
			deudas.GET("/estadisticas", deudasH.Estadisticas)
		}

		workspaces := api.Group("/workspaces", operativo)
		{
			workspaces.POST("", workspacesH.Crear)
			workspaces.GET("", workspacesH.Listar)
			workspaces.GET("/:id", workspacesH.Obtener)
			workspaces.PUT("/:id", workspacesH.Actualizar)
			workspaces.DELETE("/:id", workspacesH.Eliminar)
			workspaces.POST("/:id/productos", workspacesH.AgregarProducto)
			workspaces.DELETE("/:id/ordenes/:orden_id", workspacesH.EliminarOrden)
			workspaces.DELETE("/:id/ordenes", workspacesH.LimpiarOrdenes)
			workspaces.GET("/:id/ticket", workspacesH.Ticket)
			workspaces.POST("/:id/solicitar-cuenta", workspacesH.SolicitarCuenta)
			workspaces.POST("/:id/finalizar", ventasH.Finalizar)
		}

		ventas := api.Group("/ventas", operativo)
		{
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.Obtener)
		}

		inventarios := api.Group("/inventarios", operativo)
		{
			inventarios.GET("", inventarioH.Listar)
			inventarios.POST("/movimientos", inventarioH.RegistrarMovimiento)
			inventarios.GET("/movimientos", inventarioH.ListarMovimientos)
			inventarios.PUT("/:id/limites", admin, inventarioH.ActualizarLimites)
		}

		analytics := api.Group("/analytics", admin)
		{
			analytics.GET("/export", analyticsH.Exportar)
			analytics.POST("/export", analyticsH.ProgramarExport)
		}
		api.POST("/predicciones", operativo, analyticsH.Predecir)

		catalogos := api.Group("/catalogos", operativo)
		{
			catalogos.GET("/ubicaciones", catalogosH.Ubicaciones)
			catalogos.GET("/metodos-pago", catalogosH.MetodosPago)
			catalogos.GET("/categorias-producto", catalogosH.CategoriasProducto)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
