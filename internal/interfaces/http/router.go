package http

import (
	"net/http"

	"store-uptime/internal/application"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Server represents the HTTP server
type Server struct {
	router        *chi.Mux
	reportService *application.ReportService
}

// NewServer creates a new HTTP server
func NewServer(reportService *application.ReportService) *Server {
	s := &Server{
		router:        chi.NewRouter(),
		reportService: reportService,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Middleware
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RealIP)

	// Swagger documentation
	s.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// REST API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/reports", s.apiTriggerReport)
		r.Get("/reports/{id}/status", s.apiGetReportStatus)
		r.Get("/reports/{id}", s.apiGetReport)
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
