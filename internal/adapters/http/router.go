// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/stuti-api/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. API routes additionally
// run behind authenticate, followed by a fresh request context per call.
func NewRouter(
	studyGroupHandler *handlers.StudyGroupHandler,
	healthHandler *handlers.HealthHandler,
	authenticate func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route(handlers.StudyGroupsPath, func(r chi.Router) {
		r.Use(authenticate, middleware.AppContext())

		r.Post("/", middleware.WithActor(studyGroupHandler.CreateStudyGroup))

		byID := "/{" + handlers.StudyGroupIDParam + "}"
		r.Get(byID, studyGroupHandler.GetStudyGroup)
		r.Post(byID, middleware.WithActor(studyGroupHandler.ApplyStudyGroup))
		r.Patch(byID, middleware.WithActor(studyGroupHandler.UpdateStudyGroup))
		r.Delete(byID, middleware.WithActor(studyGroupHandler.DeleteStudyGroup))
	})

	return r
}
