package http

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	"github.com/maxjeon97/biztime/internal/http/company"
	"github.com/maxjeon97/biztime/internal/http/invoice"
)

func New(
	db *sql.DB,
	companiesV1 *company.Handler,
	invoicesV1 *invoice.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	router.Use(httprate.LimitByIP(100, time.Minute))

	router.Get("/healthz", healthz(db))

	router.Route("/companies", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		companiesV1.Routes(r)
	})

	router.Route("/invoices", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		invoicesV1.Routes(r)
	})

	return router
}

// requestID tags each request with an id for log correlation, honoring one
// supplied by the client.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func healthz(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
