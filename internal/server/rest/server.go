// Package rest serves the public viewer API: the access grant flow, signed
// blob links of the local store, metrics and liveness.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/imagekeeper/internal/logging"
	"github.com/dmitrijs2005/imagekeeper/internal/server/services"
)

// AccessService is the part of services.AccessService the handlers use.
type AccessService interface {
	Initiate(ctx context.Context, token, email, password string, client services.ClientInfo) (*services.InitiateResult, error)
	Verify(ctx context.Context, token, email, code string, client services.ClientInfo) (*services.Disclosure, error)
	Request(ctx context.Context, token, email, message string) (services.RequestOutcome, error)
	Image(ctx context.Context, token, ticket string) (*services.Content, error)
	Download(ctx context.Context, token string, id services.ViewerIdentity, client services.ClientInfo) (*services.Content, error)
}

// SignedFiles serves blobs behind signed links. Only the embedded store
// implements it; with S3 the links point at the bucket instead.
type SignedFiles interface {
	Verify(key, exp, sig string) error
	Get(ctx context.Context, key string) ([]byte, error)
	ContentType(key string) string
}

type Server struct {
	address string
	access  AccessService
	files   SignedFiles
	limiter *Limiter
	logger  logging.Logger
	router  chi.Router
}

// NewServer builds the router. files may be nil.
func NewServer(address string, access AccessService, files SignedFiles, limiter *Limiter, l logging.Logger) *Server {
	s := &Server{
		address: address,
		access:  access,
		files:   files,
		limiter: limiter,
		logger:  l.With("module", "rest_server"),
	}
	s.router = s.setupRouter()
	return s
}

func (s *Server) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(s.recoveryMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	if s.files != nil {
		r.Get("/files/*", s.handleFile)
	}

	r.Route("/api/v1/access/{token}", func(r chi.Router) {
		r.With(s.limiter.Middleware).Post("/initiate", s.handleInitiate)
		r.With(s.limiter.Middleware).Post("/request", s.handleRequest)
		r.Post("/verify", s.handleVerify)
		r.Get("/image", s.handleImage)
		r.Get("/download", s.handleDownload)
	})
	return r
}

func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
