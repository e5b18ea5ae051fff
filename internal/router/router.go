package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-care-manager/docs"
	"pet-care-manager/internal/adapters/storage/memory"
	"pet-care-manager/internal/advisory"
	"pet-care-manager/internal/domain/appointments"
	"pet-care-manager/internal/domain/feeding"
	"pet-care-manager/internal/domain/gallery"
	"pet-care-manager/internal/domain/pets"
	"pet-care-manager/internal/middleware"
	"pet-care-manager/internal/platform/logger"
	"pet-care-manager/internal/ports/ai"
	"pet-care-manager/internal/recordstore"
)

type Options struct {
	// Opcional: si es nil se usa un backend in-memory.
	Store *recordstore.Store

	// Puede ser nil o no estar configurado: /advice responde "API Key fehlt".
	Generator ai.Generator
	Model     string

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	store := opts.Store
	if store == nil {
		store = recordstore.New(memory.NewBackend())
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Colecciones (una clave por colección)
	petRepo := recordstore.NewCollection[pets.Pet](store, pets.StorageKey)
	apptRepo := recordstore.NewCollection[appointments.Appointment](store, appointments.StorageKey)
	feedingRepo := recordstore.NewCollection[feeding.Plan](store, feeding.StorageKey)
	galleryRepo := recordstore.NewCollection[gallery.Item](store, gallery.StorageKey)

	// Services por módulo
	petsSvc := pets.NewService(petRepo)
	apptSvc := appointments.NewService(apptRepo)
	feedingSvc := feeding.NewService(feedingRepo)
	gallerySvc := gallery.NewService(galleryRepo)
	gateway := advisory.New(opts.Generator, log, advisory.Options{Model: opts.Model})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc, log)
	appointments.RegisterRoutes(r, apptSvc, log)
	feeding.RegisterRoutes(r, feedingSvc, log)
	gallery.RegisterRoutes(r, gallerySvc, log)
	advisory.RegisterRoutes(r, gateway, petsSvc, log)

	return r
}
