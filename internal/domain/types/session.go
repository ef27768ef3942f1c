package types

import (
	"bytes"
	"time"
)

// Session is the authenticated token bundle issued by the location gateway.
// Tokens is opaque to us; the gateway may rotate it on any call.
type Session struct {
	AccountName string    `json:"account_name"`
	Tokens      []byte    `json:"tokens"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsZero reports whether s carries no tokens.
func (s Session) IsZero() bool { return len(s.Tokens) == 0 }

// Equal reports whether two sessions carry the same account and tokens.
func (s Session) Equal(o Session) bool {
	return s.AccountName == o.AccountName &&
		bytes.Equal(s.Tokens, o.Tokens) &&
		s.UpdatedAt.Equal(o.UpdatedAt)
}

// WithTokens returns a copy of s carrying tokens, stamped at now.
func (s Session) WithTokens(tokens []byte, now time.Time) Session {
	s.Tokens = append([]byte(nil), tokens...)
	s.UpdatedAt = now.UTC()
	return s
}
