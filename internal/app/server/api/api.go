// Order Processor API surface.
//
// GET  /                      # Status banner (public)
// GET  /health                # Liveness (public)
// GET  /health/ready          # Readiness, probes PG + Redis (public)
// POST /user/register         # Registration (public)
// POST /user/login            # Login (public)
// POST   /api/orders          # Create order (auth)
// GET    /api/orders          # List own orders (auth)
// GET    /api/orders/{id}     # Get order (auth)
// PATCH  /api/orders/{id}/status # Advance order status (auth)
// DELETE /api/orders/{id}     # Delete order (auth)

package api

import (
	healthAPI "orderprocessor/internal/app/server/api/http/health"
	"orderprocessor/internal/app/server/api/http/middleware"
	"orderprocessor/internal/app/server/api/http/middleware/auth"
	"orderprocessor/internal/app/server/api/http/middleware/logger"
	orderAPI "orderprocessor/internal/app/server/api/http/order"
	statusAPI "orderprocessor/internal/app/server/api/http/status"
	userAPI "orderprocessor/internal/app/server/api/http/user"
	"orderprocessor/internal/domain/order"
	"orderprocessor/internal/domain/session"
	"orderprocessor/internal/domain/user"
	"orderprocessor/internal/infrastructure/storage/postgres"
	redisstore "orderprocessor/internal/infrastructure/storage/redis"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Status *statusAPI.Handler
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Order  *orderAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, cache *redisstore.Storage, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Order Processor API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}
	// The banner and liveness bodies are documented byte for byte.
	// DefaultConfig registers the $schema link transformer through a
	// create hook, so the hooks have to go, clearing Transformers alone
	// is not enough.
	config.CreateHooks = nil

	API := humachi.New(mux, config)

	h := handlers(storage, cache, log)
	h.Status.SetupRoutes(API)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Order.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cache *redisstore.Storage, log *slog.Logger) *Handlers {
	sessionRepo := redisstore.NewSessionRepository(cache, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	statusHandler := statusAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(storage, cache, log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, user.NewPasswordValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	orderRepo := postgres.NewOrderRepository(storage.Pool(), log)
	orderCache := redisstore.NewOrderCache(cache, log)
	orderService := order.NewService(orderRepo, orderCache, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	orderHandler := orderAPI.NewHandler(orderService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Status: statusHandler,
		Health: healthHandler,
		User:   userHandler,
		Order:  orderHandler,
	}
}
