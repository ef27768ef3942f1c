package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"tagfinder/internal/domain"
	"tagfinder/internal/remote"
	"tagfinder/internal/services/auth"
	"tagfinder/internal/services/location"
	"tagfinder/internal/store"
	"tagfinder/internal/store/history"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Sessions *store.SessionFileStore
	Reports  *store.ReportFileStore
	History  *history.Store // nil when history is disabled
	Remote   domain.RemoteClient
	Fetcher  *location.Service
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(ctx context.Context, cfg Config) (*Wire, error) {
	// File-based stores
	sessionStore := store.NewSessionFileStore(cfg.Home, store.WithPassphrase(cfg.SessionPassphrase))
	reportStore := store.NewReportFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	// Gateway client (uses provided HTTP client)
	rc := remote.NewHTTP(cfg.GatewayURL, httpClient)

	opts := []location.Option{location.WithTimeout(cfg.FetchTimeout)}
	var hist *history.Store
	if cfg.History {
		if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
			return nil, fmt.Errorf("create home %s: %w", cfg.Home, err)
		}
		var err error
		hist, err = history.Open(ctx, filepath.Join(cfg.Home, history.Filename))
		if err != nil {
			return nil, err
		}
		opts = append(opts, location.WithHistory(hist))
	}

	return &Wire{
		Sessions: sessionStore,
		Reports:  reportStore,
		History:  hist,
		Remote:   rc,
		Fetcher:  location.New(rc, sessionStore, reportStore, opts...),
		HTTP:     httpClient,
	}, nil
}

// NewLogin starts a fresh login attempt that persists into w.Sessions.
func (w *Wire) NewLogin() *auth.Machine {
	return auth.New(w.Remote, w.Sessions)
}

// RequireSession loads the saved session. A missing one is a ConfigError
// telling the operator to log in first.
func (w *Wire) RequireSession() (domain.Session, error) {
	s, err := w.Sessions.LoadSession()
	if errors.Is(err, domain.ErrNoSession) {
		return domain.Session{}, &domain.ConfigError{
			Op:   "load session",
			Path: w.Sessions.Path(),
			Err:  errors.New("no saved session; run 'tagfinder login' first"),
		}
	}
	return s, err
}

// Close releases the history database, if open.
func (w *Wire) Close() error {
	if w.History == nil {
		return nil
	}
	return w.History.Close()
}
