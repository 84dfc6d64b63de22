package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-desk/internal/handler/api"
	"hotel-desk/internal/handler/middleware"
	"hotel-desk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	customerHandler *api.CustomerHandler,
	billingHandler *api.BillingHandler,
	waitlistHandler *api.WaitlistHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, roomHandler, bookingHandler, customerHandler, billingHandler, waitlistHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	customerHandler *api.CustomerHandler,
	billingHandler *api.BillingHandler,
	waitlistHandler *api.WaitlistHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.Create},
				{Method: http.MethodGet, Path: "/available", Handler: roomHandler.ListAvailable},
				{Method: http.MethodGet, Path: "/:number", Handler: roomHandler.Get},
				{Method: http.MethodDelete, Path: "/:number", Handler: roomHandler.Delete},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete},
			})
		}

		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: customerHandler.Create},
				{Method: http.MethodGet, Path: "/:name", Handler: customerHandler.Get},
				{Method: http.MethodDelete, Path: "/:name", Handler: customerHandler.Delete},
			})
		}

		billing := apiGroup.Group("/billing")
		{
			addRoutes(billing, []route{
				{Method: http.MethodPut, Path: "/rates/:roomType", Handler: billingHandler.SetRate},
				{Method: http.MethodGet, Path: "/rates", Handler: billingHandler.ListRates},
				{Method: http.MethodPost, Path: "/bills", Handler: billingHandler.CalculateBill},
				{Method: http.MethodGet, Path: "/invoices/:bookingId", Handler: billingHandler.GetInvoice},
			})
		}

		waitlist := apiGroup.Group("/waitlist")
		{
			addRoutes(waitlist, []route{
				{Method: http.MethodPost, Path: "", Handler: waitlistHandler.Enqueue},
				{Method: http.MethodPost, Path: "/process", Handler: waitlistHandler.Process},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
