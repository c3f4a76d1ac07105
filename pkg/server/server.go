package server

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kerbaras/mangareader/pkg/config"
	"github.com/kerbaras/mangareader/pkg/data"
)

// CatalogPath is where the catalog document is served.
const CatalogPath = "/data/manga-data.json"

// Server publishes a catalog document and the page images under a root
// directory, in the layout a reader's catalog.location can point at.
type Server struct {
	cfg        config.ServeConfig
	catalog    *data.Catalog
	router     chi.Router
	httpServer *http.Server
}

func New(cfg config.ServeConfig, catalog *data.Catalog) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: catalog,
	}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get(CatalogPath, s.handleCatalog)

	if s.cfg.Root != "" {
		r.Handle("/*", http.FileServer(http.Dir(s.cfg.Root)))
	}

	return r
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.catalog.Encode(&buf); err != nil {
		log.Printf("encoding catalog: %v", err)
		http.Error(w, "failed to encode catalog", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// ListenAndServe blocks until the server stops. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) ListenAndServe() error {
	log.Printf("mangareader server listening on %s", s.cfg.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
