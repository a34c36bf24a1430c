package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/haengsi/internal/api"
	apiMiddleware "github.com/phrazzld/haengsi/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	poemHandler, err := api.NewPoemHandler(app.poemService, app.generator.Model(), app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create poem handler: %w", err)
	}

	// Form page
	r.Get("/", poemHandler.ShowForm)
	r.Post("/", poemHandler.SubmitForm)

	r.Route("/api", func(r chi.Router) {
		r.Post("/poems", poemHandler.CreatePoem)
	})

	r.Get("/health", poemHandler.Health)

	return r, nil
}
