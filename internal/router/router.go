package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"doggo/internal/adapters/storage"
	"doggo/internal/adapters/storage/memory"
	_ "doggo/internal/docs"
	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/profiles"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
	"doggo/internal/errs"
	"doggo/internal/middleware"
	"doggo/internal/platform/logger"
	"doggo/internal/platform/web"
)

// Pinger lo implementa el storage SQL; /health lo usa si está presente.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	// Opcional: si viene vacío, usa el store in-memory.
	Repos *storage.Repositories

	Health Pinger
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	repos := memory.NewRepositories()
	if opts.Repos != nil {
		repos = *opts.Repos
	}

	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID(log))
	r.Use(middleware.AccessLog)
	r.Use(middleware.Recover)

	r.Get("/health", healthHandler(opts.Health))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	hoodsSvc := neighborhoods.NewService(repos.Neighborhoods)
	ownersSvc := owners.NewService(repos.Owners)
	dogsSvc := dogs.NewService(repos.Dogs)
	walkersSvc := walkers.NewService(repos.Walkers)
	walksSvc := walks.NewService(repos.Walks)
	profilesSvc := profiles.NewService(profiles.Deps{
		Owners:        repos.Owners,
		Dogs:          repos.Dogs,
		Walkers:       repos.Walkers,
		Walks:         repos.Walks,
		Neighborhoods: repos.Neighborhoods,
	})

	// Rutas por módulo
	neighborhoods.RegisterRoutes(r, hoodsSvc)
	owners.RegisterRoutes(r, ownersSvc)
	dogs.RegisterRoutes(r, dogsSvc)
	walkers.RegisterRoutes(r, walkersSvc)
	walks.RegisterRoutes(r, walksSvc)
	profiles.RegisterRoutes(r, profilesSvc)

	return r
}

type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

// @Summary Liveness y estado del storage
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Failure 503 {object} healthResponse
// @Router /health [get]
func healthHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if p == nil {
			web.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "memory"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			logger.FromContext(r.Context(), nil).Warn("health check failed", map[string]any{"error": err})
			web.WriteJSON(w, errs.HTTPStatus(err), healthResponse{Status: "degraded", Storage: "unreachable"})
			return
		}
		web.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Storage: "sql"})
	}
}
