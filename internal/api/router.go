package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hoteldesk/hotel-system/docs"
	"github.com/hoteldesk/hotel-system/internal/api/handler"
	"github.com/hoteldesk/hotel-system/internal/api/middleware"
	"github.com/hoteldesk/hotel-system/internal/core/domain"
	"github.com/hoteldesk/hotel-system/internal/core/service"
	mongodb "github.com/hoteldesk/hotel-system/internal/infrastructure/db/mongo"
	redisdb "github.com/hoteldesk/hotel-system/internal/infrastructure/db/redis"
	"github.com/hoteldesk/hotel-system/internal/infrastructure/http/handlers"
	"github.com/hoteldesk/hotel-system/pkg/logger"
)

// Config carries the settings the router needs beyond its datastores.
type Config struct {
	JWTSecret    string
	JWTAlgorithm string
	TokenTTL     time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg Config) (*echo.Echo, error) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hotel"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	roomTypeRepo := mongodb.NewRoomTypeRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	guestRepo := mongodb.NewGuestRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	serviceRepo := mongodb.NewServiceRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	taskRepo := mongodb.NewHousekeepingRepository(db)
	txnDedup := redisdb.NewTxnDedup(rdb, 0)

	// --- Services ---
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	authService := service.NewAuthService(userRepo, tokenService, log)
	userService := service.NewUserService(userRepo, log)
	roomTypeService := service.NewRoomTypeService(roomTypeRepo, log)
	roomService := service.NewRoomService(roomRepo, roomTypeRepo, log)
	guestService := service.NewGuestService(guestRepo, log)
	bookingService := service.NewBookingService(bookingRepo, guestRepo, roomRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, bookingRepo, txnDedup, log)
	catalogService := service.NewCatalogService(serviceRepo, log)
	orderService := service.NewOrderService(orderRepo, serviceRepo, bookingRepo, log)
	housekeepingService := service.NewHousekeepingService(taskRepo, roomRepo, userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	roomTypeHandler := handler.NewRoomTypeHandler(roomTypeService)
	roomHandler := handler.NewRoomHandler(roomService)
	guestHandler := handler.NewGuestHandler(guestService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	serviceHandler := handler.NewServiceHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	taskHandler := handler.NewHousekeepingHandler(housekeepingService)

	auth := middleware.Auth(authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	frontDesk := middleware.RBAC(domain.RoleAdmin, domain.RoleReceptionist)
	housekeepers := middleware.RBAC(domain.RoleAdmin, domain.RoleHousekeeping)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Hotel Management System API"})
	})
	e.POST("/token", authHandler.Token)
	e.POST("/users", userHandler.Create)

	e.GET("/room_types", roomTypeHandler.List)
	e.GET("/room_types/:id", roomTypeHandler.Get)
	e.GET("/rooms", roomHandler.List)
	e.GET("/rooms/:id", roomHandler.Get)
	e.GET("/services", serviceHandler.List)
	e.GET("/services/:id", serviceHandler.Get)

	// --- Observability (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated, any role ---
	e.GET("/users/me", userHandler.Me, auth)

	// --- Admin-only management ---
	users := e.Group("/users", auth, adminOnly)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	e.POST("/room_types", roomTypeHandler.Create, auth, adminOnly)
	e.PUT("/room_types/:id", roomTypeHandler.Update, auth, adminOnly)
	e.DELETE("/room_types/:id", roomTypeHandler.Delete, auth, adminOnly)

	e.POST("/rooms", roomHandler.Create, auth, adminOnly)
	e.PUT("/rooms/:id", roomHandler.Update, auth, adminOnly)
	e.DELETE("/rooms/:id", roomHandler.Delete, auth, adminOnly)

	e.POST("/services", serviceHandler.Create, auth, adminOnly)
	e.PUT("/services/:id", serviceHandler.Update, auth, adminOnly)
	e.DELETE("/services/:id", serviceHandler.Delete, auth, adminOnly)

	// --- Front desk: guests, bookings, payments, service orders ---
	guests := e.Group("/guests", auth)
	guests.POST("", guestHandler.Create, frontDesk)
	guests.GET("", guestHandler.List, frontDesk)
	guests.GET("/:id", guestHandler.Get, frontDesk)
	guests.PUT("/:id", guestHandler.Update, frontDesk)
	guests.DELETE("/:id", guestHandler.Delete, adminOnly)

	bookings := e.Group("/bookings", auth)
	bookings.POST("", bookingHandler.Create, frontDesk)
	bookings.GET("", bookingHandler.List, frontDesk)
	bookings.GET("/:id", bookingHandler.Get, frontDesk)
	bookings.PUT("/:id", bookingHandler.Update, frontDesk)
	bookings.DELETE("/:id", bookingHandler.Delete, adminOnly)

	payments := e.Group("/payments", auth)
	payments.POST("", paymentHandler.Create, frontDesk)
	payments.GET("", paymentHandler.List, frontDesk)
	payments.GET("/:id", paymentHandler.Get, frontDesk)
	payments.DELETE("/:id", paymentHandler.Delete, adminOnly)

	orders := e.Group("/service_orders", auth)
	orders.POST("", orderHandler.Create, frontDesk)
	orders.GET("", orderHandler.List, frontDesk)
	orders.GET("/:id", orderHandler.Get, frontDesk)
	orders.PUT("/:id", orderHandler.Update, frontDesk)
	orders.DELETE("/:id", orderHandler.Delete, adminOnly)

	// --- Housekeeping: the front desk opens tasks, housekeepers work them ---
	tasks := e.Group("/housekeeping_tasks", auth)
	tasks.POST("", taskHandler.Create, frontDesk)
	tasks.GET("", taskHandler.List, housekeepers)
	tasks.GET("/:id", taskHandler.Get, housekeepers)
	tasks.PUT("/:id", taskHandler.Update, housekeepers)
	tasks.DELETE("/:id", taskHandler.Delete, adminOnly)

	return e, nil
}
