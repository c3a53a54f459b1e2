package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/studysnap/studysnap-api/internal/api"
	apiMiddleware "github.com/studysnap/studysnap-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	studyHandler := api.NewStudyHandler(app.studyService, app.config.Upload, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/process-image", studyHandler.ProcessImage)
		r.Post("/generate-explanations", studyHandler.GenerateExplanations)
		r.Post("/generate-quiz", studyHandler.GenerateQuiz)
		r.Post("/generate-notes", studyHandler.GenerateNotes)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
