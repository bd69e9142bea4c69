// Package stubapi is a development backend that speaks the same wire
// contract as the production Print Duka API: cookie sessions, CSRF
// double-submit, paginated list envelopes and detail-style errors. It
// exists so the admin client and its list sessions can be exercised
// end to end without the real backend.
package stubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	miniogo "github.com/minio/minio-go/v7"

	"printduka-admin/config"
	"printduka-admin/pkg/log"
)

// Server hosts the stub API.
// New() only wires dependencies and validates them; Run() starts serving.
type Server struct {
	gin    *gin.Engine
	l      log.Logger
	cfg    config.StubConfig
	cookie config.CookieConfig

	sessions *sessionIssuer
	store    *Store
	users    map[string]demoUser

	// images is optional; nil means uploads are accepted but not persisted.
	images      *miniogo.Client
	imageBucket string
}

// Config is the constructor input for Server.
type Config struct {
	Stub   config.StubConfig
	Cookie config.CookieConfig

	// MinIO is optional product-image storage.
	MinIO       *miniogo.Client
	MinIOBucket string
}

// New creates a stub API server with seeded fixture data.
// No goroutines are started here; call Run.
func New(l log.Logger, cfg Config) (*Server, error) {
	gin.SetMode(cfg.Stub.Mode)

	srv := &Server{
		gin:         gin.New(),
		l:           l,
		cfg:         cfg.Stub,
		cookie:      cfg.Cookie,
		sessions:    newSessionIssuer(cfg.Stub.SessionSecret),
		store:       NewStore(),
		users:       seedUsers(),
		images:      cfg.MinIO,
		imageBucket: cfg.MinIOBucket,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (s *Server) validate() error {
	if s.l == nil {
		return errors.New("logger is required")
	}
	if s.cfg.Port == 0 {
		return errors.New("port is required")
	}
	if s.cfg.SessionSecret == "" {
		return errors.New("session secret is required")
	}
	return nil
}

// Run starts the HTTP server and blocks until a shutdown signal arrives.
func (s *Server) Run() error {
	ctx := context.Background()

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.l.Errorf(ctx, "HTTP server error: %v", err)
		}
	}()
	s.l.Infof(ctx, "Stub API started on %s:%d", s.cfg.Host, s.cfg.Port)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	s.l.Info(ctx, <-ch)
	s.l.Info(ctx, "Stopping stub API...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.gin
}
