package http

import (
	"context"
	stderrors "errors"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/foodtruck-service/internal/config"
	"github.com/foodtruck-service/internal/delivery/http/handler"
	"github.com/foodtruck-service/internal/delivery/http/middleware"
	"github.com/foodtruck-service/internal/pkg/errors"
	"github.com/foodtruck-service/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	searchHandler *handler.SearchHandler
	truckHandler  *handler.TruckHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	searchHandler *handler.SearchHandler,
	truckHandler *handler.TruckHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Food Truck Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		searchHandler: searchHandler,
		truckHandler:  truckHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/search", s.searchHandler.Search)
	api.Get("/best-truck", s.truckHandler.BestTruck)
	api.Post("/add-truck", s.truckHandler.AddTruck)

	api.Get("/trucks", s.truckHandler.ListTrucks)
	api.Get("/trucks/:id", s.truckHandler.GetTruck)
}

// App - доступ к fiber приложению (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные в хендлерах, в том же формате
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error("HTTP Error",
				zap.String("path", c.Path()),
				zap.Int("status", code),
				zap.Error(err),
			)
		}

		return utils.SendError(c, errors.New(errorCode(code), err.Error(), code))
	}
}

func errorCode(status int) string {
	text := nethttp.StatusText(status)
	if text == "" {
		return "INTERNAL_SERVER_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
