package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession is returned by a SessionStore when no session has been saved
	// yet. Callers branch on it into first-run login.
	ErrNoSession = errors.New("no saved session")

	// ErrNotFound is returned by a RemoteClient when the tracker has no reports.
	// It is a valid result, not a failure.
	ErrNotFound = errors.New("no location reports")
)

// ConfigError reports a missing or invalid local input: the key file, the
// session file, or a required setting.
type ConfigError struct {
	Op   string
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// AuthError reports rejected credentials, a rejected code, or a login step
// taken out of order.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return "authentication: " + e.Reason
	}
	return fmt.Sprintf("authentication: %s: %v", e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransientFetchError reports a network or protocol failure during a fetch.
type TransientFetchError struct {
	Detail string
	Err    error
}

func (e *TransientFetchError) Error() string { return "fetch failed: " + e.Detail }

func (e *TransientFetchError) Unwrap() error { return e.Err }

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsAuthError reports whether err is or wraps an *AuthError.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
