package app

import (
	"net/http"
	"time"

	"tagfinder/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home              string        // state directory, e.g. $HOME/.tagfinder
	GatewayURL        string        // gateway base URL, e.g. http://127.0.0.1:6969
	HTTP              *http.Client  // optional; defaults to a client with HTTPTimeout
	HTTPTimeout       time.Duration // per-request client timeout
	FetchTimeout      time.Duration // bound on one location fetch
	SessionPassphrase string        // seals session.json when set
	History           bool          // record found reports in history.db
}

// FromSettings derives wiring options from loaded settings.
func FromSettings(c config.Config) Config {
	return Config{
		Home:              c.Home,
		GatewayURL:        c.Gateway,
		HTTPTimeout:       c.HTTPTimeout,
		FetchTimeout:      c.FetchTimeout,
		SessionPassphrase: c.SessionPassphrase,
		History:           c.History,
	}
}
