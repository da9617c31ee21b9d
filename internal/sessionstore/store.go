// Package sessionstore keeps login-session blobs keyed by session id with a
// time to live. It is used only by authentication and knows nothing about the
// domain entities.
package sessionstore

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	DefaultTTL           = 24 * time.Hour
	DefaultPruneInterval = 24 * time.Hour
)

// Store is the contract the auth layer depends on. Get reports ok=false for
// missing and expired sessions alike.
type Store interface {
	Get(ctx context.Context, id string) (blob []byte, ok bool, err error)
	Set(ctx context.Context, id string, blob []byte, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}
