package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"simplesocial/internal/server/service"
)

type Router struct {
	services       *service.Services
	logger         *log.Logger
	maxUploadBytes int64
}

func NewRouter(services *service.Services, logger *log.Logger, maxUploadBytes int64, corsOrigins []string) http.Handler {
	r := &Router{services: services, logger: logger, maxUploadBytes: maxUploadBytes}
	mux := chi.NewRouter()

	mux.Use(chimw.Logger)
	mux.Use(chimw.Recoverer)
	mux.Use(chimw.RealIP)
	if len(corsOrigins) > 0 {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	mux.Get("/health", r.handleHealth)
	mux.Post("/auth/register", r.handleRegister)
	mux.Post("/auth/jwt/login", r.handleLogin)

	mux.Group(func(pr chi.Router) {
		pr.Use(r.authMiddleware)
		pr.Get("/users/me", r.handleMe)
		pr.Get("/feed", r.handleFeed)
		pr.Post("/upload", r.handleUpload)
		pr.Delete("/posts/{id}", r.handleDeletePost)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail emits the {"detail": ...} error shape clients match on.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
