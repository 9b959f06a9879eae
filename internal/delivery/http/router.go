package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"communitycalendar/internal/delivery/http/controllers"
	"communitycalendar/internal/delivery/http/middleware"
	"communitycalendar/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	events *controllers.EventController,
	auth *controllers.AuthController,
	uploads *controllers.UploadController,
	verifier domain.TokenVerifier,
	uploadDir string,
	staticDir string,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(verifier)

	// Event API
	mux.HandleFunc("GET /events", events.ListEvents)
	mux.HandleFunc("POST /events", requireAuth(events.CreateEvent))
	mux.HandleFunc("GET /events/{id}", events.GetEvent)
	mux.HandleFunc("PUT /events/{id}", requireAuth(events.UpdateEvent))
	mux.HandleFunc("DELETE /events/{id}", requireAuth(events.DeleteEvent))

	// Upload carries no auth check while every other mutating route does;
	// kept that way on purpose, see DESIGN.md.
	mux.HandleFunc("POST /upload", uploads.Upload)

	// Auth
	mux.HandleFunc("POST /auth/login", auth.Login)

	// Uploaded images and the calendar client
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	return mux
}
