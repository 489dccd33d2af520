// Package server exposes a navigator over HTTP: the deep-link table, link
// resolution, path matching and layout decisions.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/waypoint/internal/app/navigator"
	"github.com/alexisbeaulieu97/waypoint/internal/logger"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
)

const shutdownTimeout = 5 * time.Second

// Server serves one navigator.
type Server struct {
	nav    *navigator.Navigator
	log    *logger.Logger
	router chi.Router
}

// New builds the router for nav.
func New(nav *navigator.Navigator, log *logger.Logger) *Server {
	s := &Server{nav: nav, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Get("/linking", s.handleLinking)
	r.Get("/routes", s.handleRoutes)
	r.Get("/links/{name}", s.handleLink)
	r.Get("/match", s.handleMatch)
	r.Get("/layout", s.handleLayout)
	r.Route("/render", func(r chi.Router) {
		for _, route := range nav.Registry.Routes() {
			r.Get(chiPattern(route.Pattern), s.handleRender(route))
		}
		r.NotFound(s.handleRenderNotFound)
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField(logger.FieldAddr, addr).Info("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		zl := s.log.Zerolog()
		zl.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

// chiPattern converts ":param" segments to chi's "{param}" form.
func chiPattern(p routes.Pattern) string {
	segments := p.Segments()
	if len(segments) == 0 {
		return "/"
	}
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return "/" + strings.Join(segments, "/")
}
