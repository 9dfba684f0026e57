package inspect

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/quill-ui/quill/pkg/template"
)

// Server exposes a registry's state over HTTP.
type Server struct {
	registry *template.Registry
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger (default slog.Default).
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		s.log = log
	}
}

// NewServer creates an inspect server over registry.
func NewServer(registry *template.Registry, opts ...Option) *Server {
	s := &Server{
		registry: registry,
		log:      slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Inspect binds to localhost; origin checks add nothing.
				return true
			},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler tree for the inspect API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/templates", s.handleList)
	r.Get("/templates/{id}", s.handleTemplate)
	r.Get("/watch", s.handleWatch)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// ListenAndServe runs the inspect server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info("inspect server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.List())
}

// templateDetail is the response body for a single template.
type templateDetail struct {
	ID    template.ID     `json:"id"`
	Name  string          `json:"name"`
	Roots []int           `json:"roots"`
	Nodes []template.Node `json:"nodes"`
}

func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid template id " + strconv.Quote(raw)})
		return
	}

	tpl, err := s.registry.Lookup(template.ID(id))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	detail := templateDetail{
		ID:    template.ID(id),
		Name:  tpl.Name(),
		Roots: tpl.Roots(),
		Nodes: make([]template.Node, tpl.NodeCount()),
	}
	for i := range detail.Nodes {
		detail.Nodes[i] = tpl.Node(i)
	}
	writeJSON(w, http.StatusOK, detail)
}

// handleWatch upgrades to a WebSocket and streams one JSON message per
// template registration until the client goes away.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("watch upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	events := make(chan template.Event, 16)
	cancel := s.registry.Watch(func(ev template.Event) {
		select {
		case events <- ev:
		default:
			// Slow consumer; drop rather than block Compile.
		}
	})
	defer cancel()

	// Reader goroutine notices the peer closing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-done:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("inspect: encode response", "error", err)
	}
}
