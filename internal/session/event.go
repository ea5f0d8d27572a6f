// Package session carries session-change notifications and token revocation
// for the API.
package session

import (
	"context"
	"time"
)

type EventType string

const (
	// EventSnapshot is the first message of every stream and describes the
	// session the stream was opened with.
	EventSnapshot  EventType = "session"
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

type Event struct {
	Type      EventType `json:"type"`
	AccountID string    `json:"account_id"`
	Email     string    `json:"email,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	At        time.Time `json:"at"`
}

// Publisher fans an event out to every subscriber of its account.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Revoker remembers tokens that were signed out before they expired.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
