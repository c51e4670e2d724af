package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"tr4cking/internal/config"
	"tr4cking/internal/domain"
	h "tr4cking/internal/http/handlers"
	"tr4cking/internal/http/middleware"
	"tr4cking/internal/queue"
	"tr4cking/internal/repositories"
	"tr4cking/internal/services"
)

// NewRouter arma el engine con todos los recursos del panel. Los
// grupos protegidos exigen token; las escrituras de catálogo son de
// admin, la operación diaria (pasajes, encomiendas) también de
// empleados.
func NewRouter(env config.Env, db *sql.DB, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: no se pudieron fijar trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "ruta no encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// repos
	empresaRepo := repositories.EmpresaRepository{DB: db}
	geoRepo := repositories.GeografiaRepository{DB: db}
	flotaRepo := repositories.FlotaRepository{DB: db}
	rutaRepo := repositories.RutaRepository{DB: db}
	viajeRepo := repositories.ViajeRepository{DB: db}
	clienteRepo := repositories.ClienteRepository{DB: db}
	empleadoRepo := repositories.EmpleadoRepository{DB: db}
	usuarioRepo := repositories.UsuarioRepository{DB: db}
	tokenRepo := repositories.TokenRepository{DB: db}
	pasajeRepo := repositories.PasajeRepository{DB: db}
	encomiendaRepo := repositories.EncomiendaRepository{DB: db}
	facturaRepo := repositories.FacturaRepository{DB: db}

	// servicios
	publisher := queue.Publisher{URL: env.AMQPURL}
	authSvc := services.AuthService{
		UsuarioRepo: usuarioRepo,
		TokenRepo:   tokenRepo,
		JWTSecret:   []byte(env.JWTSecret),
		AccessTTL:   time.Duration(env.AccessTTLMin) * time.Minute,
		RefreshTTL:  time.Duration(env.RefreshTTLDias) * 24 * time.Hour,
	}
	asientosSvc := services.AsientosService{ViajeRepo: viajeRepo, FlotaRepo: flotaRepo, Redis: rdb}
	docsSvc := services.DocsService{PasajeRepo: pasajeRepo, EncomiendaRepo: encomiendaRepo, FacturaRepo: facturaRepo}
	pasajesSvc := services.PasajesService{
		PasajeRepo:  pasajeRepo,
		ViajeRepo:   viajeRepo,
		ClienteRepo: clienteRepo,
		Asientos:    asientosSvc,
		Publisher:   publisher,
	}
	encomiendasSvc := services.EncomiendasService{
		EncomiendaRepo: encomiendaRepo,
		ViajeRepo:      viajeRepo,
		Publisher:      publisher,
	}
	rutasSvc := services.RutasService{RutaRepo: rutaRepo}
	busquedaSvc := services.BusquedaService{ViajeRepo: viajeRepo}

	// handlers
	system := h.SystemHandler{DB: db}
	auth := h.AuthHandler{Auth: authSvc}
	empresas := h.EmpresasHandler{Repo: empresaRepo}
	geografia := h.GeografiaHandler{Repo: geoRepo}
	flota := h.FlotaHandler{Repo: flotaRepo}
	rutas := h.RutasHandler{Repo: rutaRepo, Svc: rutasSvc}
	viajes := h.ViajesHandler{Repo: viajeRepo, Asientos: asientosSvc, Busqueda: busquedaSvc}
	clientes := h.ClientesHandler{Repo: clienteRepo}
	empleados := h.EmpleadosHandler{Repo: empleadoRepo}
	usuarios := h.UsuariosHandler{Repo: usuarioRepo, TokenRepo: tokenRepo}
	pasajes := h.PasajesHandler{Repo: pasajeRepo, Svc: pasajesSvc, Docs: docsSvc}
	encomiendas := h.EncomiendasHandler{Repo: encomiendaRepo, Svc: encomiendasSvc, Docs: docsSvc}
	facturas := h.FacturasHandler{Repo: facturaRepo, Docs: docsSvc}

	api := r.Group("/api")
	{
		api.GET("/health", system.Health)
		api.GET("/db-check", system.DBCheck)

		authGroup := api.Group("/auth")
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/refresh", auth.Refresh)
		authGroup.POST("/logout", auth.Logout)

		// buscador público, sin sesión
		api.GET("/public/viajes", viajes.BuscarPublico)

		admin := middleware.RequireRoles(domain.RolAdmin)
		operacion := middleware.RequireRoles(domain.RolAdmin, domain.RolEmpleado)

		priv := api.Group("")
		priv.Use(middleware.Auth(authSvc))
		{
			mountCatalogo(priv, admin, operacion, empresas, geografia, flota, rutas)
			mountViajes(priv, admin, operacion, viajes)

			ce := priv.Group("/clientes")
			ce.GET("", operacion, clientes.List)
			ce.GET("/:id", operacion, clientes.Get)
			ce.POST("", operacion, clientes.Create)
			ce.PUT("/:id", operacion, clientes.Update)
			ce.DELETE("/:id", admin, clientes.Delete)

			em := priv.Group("/empleados")
			em.GET("", admin, empleados.List)
			em.GET("/:id", admin, empleados.Get)
			em.POST("", admin, empleados.Create)
			em.PUT("/:id", admin, empleados.Update)
			em.DELETE("/:id", admin, empleados.Delete)

			us := priv.Group("/usuarios")
			us.GET("", admin, usuarios.List)
			us.GET("/:id", admin, usuarios.Get)
			us.POST("", admin, usuarios.Create)
			us.PUT("/:id", admin, usuarios.Update)
			us.DELETE("/:id", admin, usuarios.Delete)

			ps := priv.Group("/pasajes")
			ps.GET("", operacion, pasajes.List)
			ps.GET("/:id", operacion, pasajes.Get)
			ps.POST("", operacion, pasajes.Create)
			ps.PUT("/:id/anular", operacion, pasajes.Anular)
			ps.GET("/:id/ticket", operacion, pasajes.TicketPDF)

			en := priv.Group("/encomiendas")
			en.GET("", operacion, encomiendas.List)
			en.GET("/:id", operacion, encomiendas.Get)
			en.POST("", operacion, encomiendas.Create)
			en.PUT("/:id", operacion, encomiendas.Update)
			en.DELETE("/:id", admin, encomiendas.Delete)
			en.GET("/:id/comprobante", operacion, encomiendas.ComprobantePDF)

			fa := priv.Group("/facturas")
			fa.GET("", operacion, facturas.List)
			fa.GET("/:id", operacion, facturas.Get)
			fa.POST("", operacion, facturas.Create)
			fa.PUT("/:id/anular", admin, facturas.Anular)
			fa.GET("/:id/pdf", operacion, facturas.PDF)
		}
	}

	return r
}

func mountCatalogo(g *gin.RouterGroup, admin, operacion gin.HandlerFunc,
	empresas h.EmpresasHandler, geografia h.GeografiaHandler, flota h.FlotaHandler, rutas h.RutasHandler) {

	ep := g.Group("/empresas")
	ep.GET("", operacion, empresas.List)
	ep.GET("/:id", operacion, empresas.Get)
	ep.POST("", admin, empresas.Create)
	ep.PUT("/:id", admin, empresas.Update)
	ep.DELETE("/:id", admin, empresas.Delete)

	lo := g.Group("/localidades")
	lo.GET("", operacion, geografia.ListLocalidades)
	lo.GET("/:id", operacion, geografia.GetLocalidad)
	lo.POST("", admin, geografia.CreateLocalidad)
	lo.PUT("/:id", admin, geografia.UpdateLocalidad)
	lo.DELETE("/:id", admin, geografia.DeleteLocalidad)

	pa := g.Group("/paradas")
	pa.GET("", operacion, geografia.ListParadas)
	pa.GET("/:id", operacion, geografia.GetParada)
	pa.POST("", admin, geografia.CreateParada)
	pa.PUT("/:id", admin, geografia.UpdateParada)
	pa.DELETE("/:id", admin, geografia.DeleteParada)

	bu := g.Group("/buses")
	bu.GET("", operacion, flota.List)
	bu.GET("/:id", operacion, flota.Get)
	bu.POST("", admin, flota.Create)
	bu.PUT("/:id", admin, flota.Update)
	bu.DELETE("/:id", admin, flota.Delete)
	bu.GET("/:id/asientos", operacion, flota.ListAsientos)
	bu.GET("/:id/layout", operacion, flota.Layout)

	ru := g.Group("/rutas")
	ru.GET("", operacion, rutas.List)
	ru.GET("/:id", operacion, rutas.Get)
	ru.POST("", admin, rutas.Create)
	ru.PUT("/:id", admin, rutas.Update)
	ru.DELETE("/:id", admin, rutas.Delete)
	ru.GET("/:id/detalles", operacion, rutas.ListDetalles)
	ru.PUT("/:id/detalles", admin, rutas.ReemplazarDetalles)
}

func mountViajes(g *gin.RouterGroup, admin, operacion gin.HandlerFunc, viajes h.ViajesHandler) {
	ho := g.Group("/horarios")
	ho.GET("", operacion, viajes.ListHorarios)
	ho.GET("/:id", operacion, viajes.GetHorario)
	ho.POST("", admin, viajes.CreateHorario)
	ho.PUT("/:id", admin, viajes.UpdateHorario)
	ho.DELETE("/:id", admin, viajes.DeleteHorario)

	vi := g.Group("/viajes")
	vi.GET("", operacion, viajes.List)
	vi.GET("/:id", operacion, viajes.Get)
	vi.POST("", admin, viajes.Create)
	vi.PUT("/:id", admin, viajes.Update)
	vi.DELETE("/:id", admin, viajes.Delete)
	vi.GET("/:id/asientos", operacion, viajes.MapaAsientos)
	vi.POST("/:id/asientos/retener", operacion, viajes.RetenerAsiento)
	vi.POST("/:id/asientos/liberar", operacion, viajes.LiberarAsiento)
}
