package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"tagfinder/internal/domain"
	"tagfinder/internal/logging"
)

//go:embed static/index.html
var staticFS embed.FS

// NoLocation is the error text for a tracker with no reports.
const NoLocation = "No location"

// Deps is what the handlers need. The session is updated after every fetch so
// rotated tokens carry into the next request.
type Deps struct {
	Fetcher domain.LocationFetcher
	Key     domain.KeyMaterial

	mu      sync.Mutex
	session domain.Session
}

// NewDeps returns Deps starting from session.
func NewDeps(fetcher domain.LocationFetcher, key domain.KeyMaterial, session domain.Session) *Deps {
	return &Deps{Fetcher: fetcher, Key: key, session: session}
}

// Session returns the session the next fetch will use.
func (d *Deps) Session() domain.Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session
}

type errorBody struct {
	Error string `json:"error"`
}

// NewRouter builds the dashboard routes.
func NewRouter(d *Deps) *mux.Router {
	r := mux.NewRouter()
	r.Use(accessLog, recoverPanics)
	r.HandleFunc("/", serveIndex).Methods(http.MethodGet)
	r.HandleFunc("/index.html", serveIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/location", d.handleLocation).Methods(http.MethodGet)
	return r
}

func serveIndex(w http.ResponseWriter, _ *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "dashboard unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (d *Deps) handleLocation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, d.locate(r.Context()))
}

// locate runs one fetch and picks the response body. A panic anywhere in the
// fetch path becomes an error body.
func (d *Deps) locate(ctx context.Context) (body any) {
	defer func() {
		if p := recover(); p != nil {
			logging.Errorf("location handler panic: %v", p)
			body = errorBody{Error: fmt.Sprintf("internal error: %v", p)}
		}
	}()

	d.mu.Lock()
	defer d.mu.Unlock()

	outcome, next, err := d.Fetcher.Fetch(ctx, d.session, d.Key)
	if !next.IsZero() {
		d.session = next
	}
	if err != nil {
		logging.Errorf("saving fetch state: %v", err)
	}

	switch outcome.Kind {
	case domain.OutcomeFound:
		return outcome.Report
	case domain.OutcomeNotFound:
		return errorBody{Error: NoLocation}
	default:
		if outcome.Detail == "" {
			return errorBody{Error: "fetch failed"}
		}
		return errorBody{Error: outcome.Detail}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warnf("writing response: %v", err)
	}
}

// Run serves the dashboard on addr until ctx is cancelled.
func Run(ctx context.Context, addr string, d *Deps) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return Serve(ctx, ln, d)
}

// Serve serves the dashboard on ln until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, ln net.Listener, d *Deps) error {
	srv := &http.Server{
		Handler:           NewRouter(d),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
