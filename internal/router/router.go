package router

import (
	"database/sql"
	"net/http"

	mem "pet-store-admin/internal/adapters/storage/memory"
	pg "pet-store-admin/internal/adapters/storage/postgres"
	"pet-store-admin/internal/domain/pets"
	"pet-store-admin/internal/middleware"
	"pet-store-admin/internal/platform/logger"

	// registra el documento OpenAPI
	_ "pet-store-admin/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Kinds del repo in-memory (nil = pets.DefaultKinds()). Con Postgres salen de pet_kinds.
	Kinds []pets.Kind

	Log     logger.Logger       // puede ser nil
	Metrics *middleware.Metrics // nil = se crea uno
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = middleware.NewMetrics()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.EchoRequestID)
	r.Use(middleware.AccessLog(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var petRepo pets.Repository
	if opts.DB != nil {
		petRepo = pg.NewPetsRepo(opts.DB)
		log.Info("using postgres storage", nil)
	} else {
		petRepo = mem.NewPetRepo(opts.Kinds)
		log.Info("using in-memory storage", nil)
	}

	pets.RegisterRoutes(r, pets.NewService(petRepo))

	return r
}
