package handlers

import (
	"InventoryPro/internal/config"
	"InventoryPro/internal/middleware"
	"InventoryPro/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	// Браузерный клиент ходит с другого origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, cfg)

	// Auth routes
	r.Post("/api/signup", userHandler.Signup)
	r.Post("/api/login", userHandler.Login)
	r.Get("/api/me", userHandler.Me)

	// Health check
	r.Get("/api/health", userHandler.Health)

	return &Handler{Router: r}
}
