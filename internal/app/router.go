package app

import (
	"net/http"

	"github.com/avc/booking-wizard/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, metricsHandler http.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps, metricsHandler, logger)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, metricsHandler http.Handler, logger *zap.Logger) {
	// Служебные эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	wh := deps.handlers.wizard

	r.Route("/api/wizard", func(r chi.Router) {
		// Создание сессии
		r.Post("/", wh.Start)

		// Действия в рамках сессии
		r.Group(func(r chi.Router) {
			r.Use(handlers.SessionMiddleware(deps.sessions, logger))

			r.Get("/", wh.GetView)
			r.Post("/calendar/prev", wh.PrevMonth)
			r.Post("/calendar/next", wh.NextMonth)
			r.Post("/date", wh.SelectDate)
			r.Post("/step", wh.GoToStep)
			r.Post("/next", wh.Next)
			r.Post("/back", wh.Back)
			r.Put("/service-type", wh.SetServiceType)
			r.Put("/level", wh.SetLevel)
			r.Put("/area", wh.SetArea)
			r.Post("/extras/{id}/toggle", wh.ToggleExtraService)
			r.Put("/dry-cleaning/{id}", wh.SetDryCleaningQuantity)
			r.Post("/submit", wh.Submit)
		})
	})
}
