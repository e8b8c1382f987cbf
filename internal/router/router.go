package router

import (
	"time"

	"github.com/Javier-GarciaP/sunbody/internal/config"
	"github.com/Javier-GarciaP/sunbody/internal/handler"
	"github.com/Javier-GarciaP/sunbody/internal/middleware"
	"github.com/Javier-GarciaP/sunbody/internal/repository"
	"github.com/Javier-GarciaP/sunbody/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher service.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	colorRepo := repository.NewColorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	tasaRepo := repository.NewTasaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	paqueteRepo := repository.NewPaqueteRepository(db)
	movimientoRepo := repository.NewMovimientoStockRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogoSvc := service.NewCatalogoService(colorRepo, productoRepo, movimientoRepo)
	tasaSvc := service.NewTasaService(tasaRepo)
	clienteSvc := service.NewClienteService(clienteRepo, ventaRepo, pagoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, pagoRepo, productoRepo, clienteRepo, movimientoRepo, dispatcher)
	pagoSvc := service.NewPagoService(pagoRepo, ventaRepo, clienteRepo, dispatcher)
	pedidoSvc := service.NewPedidoService(pedidoRepo, paqueteRepo, productoRepo, clienteRepo, ventaRepo, pagoRepo, movimientoRepo, dispatcher)
	paqueteSvc := service.NewPaqueteService(paqueteRepo, productoRepo, ventaRepo, movimientoRepo)
	auditoriaSvc := service.NewAuditoriaService(clienteRepo, ventaRepo, pagoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	coloresH := handler.NewColoresHandler(catalogoSvc)
	productosH := handler.NewProductosHandler(catalogoSvc, rdb)
	clientesH := handler.NewClientesHandler(clienteSvc, pagoSvc)
	tasaH := handler.NewTasaHandler(tasaSvc, rdb)
	ventasH := handler.NewVentasHandler(ventaSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	paquetesH := handler.NewPaquetesHandler(paqueteSvc)
	auditoriaH := handler.NewAuditoriaHandler(auditoriaSvc)
	movimientosH := handler.NewMovimientosHandler(movimientoRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Protected API
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, cfg.AllowedEmailSet())
	api := r.Group("/api", jwtMW)
	{
		colores := api.Group("/colors")
		{
			colores.POST("", coloresH.Crear)
			colores.GET("", coloresH.Listar)
			colores.PUT("/:id", coloresH.Actualizar)
			colores.DELETE("/:id", coloresH.Eliminar)
		}

		productos := api.Group("/products")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.ObtenerPorID)
			productos.GET("/:id/price", productosH.ConsultarPrecio)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
			productos.POST("/:id/variants", productosH.CrearVariante)
			productos.DELETE("/:id/variants/:varianteId", productosH.EliminarVariante)
			productos.PATCH("/:id/stock", productosH.AjustarStock)
		}

		clientes := api.Group("/customers")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.GET("/:id/account", clientesH.Estado)
			clientes.GET("/:id/payments", clientesH.Pagos)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		api.GET("/exchange-rate", tasaH.Obtener)
		api.PUT("/exchange-rate", tasaH.Actualizar)

		ventas := api.Group("/sales")
		{
			ventas.POST("", ventasH.Crear)
			ventas.GET("", ventasH.Listar)
			ventas.GET("/:id", ventasH.ObtenerPorID)
			ventas.PUT("/:id", ventasH.Editar)
			ventas.DELETE("/:id", ventasH.Eliminar)
		}

		pagos := api.Group("/payments")
		{
			pagos.POST("", pagosH.Crear)
			pagos.GET("", pagosH.Listar)
			pagos.PUT("/:id", pagosH.Actualizar)
			pagos.DELETE("/:id", pagosH.Eliminar)
		}

		pedidos := api.Group("/orders")
		{
			pedidos.POST("", pedidosH.Crear)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.ObtenerPorID)
			pedidos.PUT("/:id", pedidosH.Actualizar)
			pedidos.DELETE("/:id", pedidosH.Eliminar)
			pedidos.PATCH("/items/:itemId", pedidosH.MarcarItemComprado)
			pedidos.DELETE("/items/:itemId", pedidosH.EliminarItem)
			pedidos.POST("/items/:itemId/unlink", pedidosH.DesvincularItem)
			pedidos.POST("/batch-package", pedidosH.BatchPaquete)
			pedidos.POST("/deliver", pedidosH.Entregar)
		}

		paquetes := api.Group("/packages")
		{
			paquetes.POST("", paquetesH.Crear)
			paquetes.GET("", paquetesH.Listar)
			paquetes.GET("/stock", paquetesH.ReporteStock)
			paquetes.GET("/:id", paquetesH.ObtenerPorID)
			paquetes.PUT("/:id", paquetesH.Actualizar)
			paquetes.DELETE("/:id", paquetesH.Eliminar)
		}

		api.GET("/audit/consistency", auditoriaH.Consistencia)
		api.GET("/stock/movements", movimientosH.Listar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
