// Package service holds the application operations the HTTP layer calls. It
// composes the repository store with sessions, events, metrics and the
// assistant.
package service

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrUnauthorized is returned for bad credentials and missing login sessions.
var ErrUnauthorized = errors.New("unauthorized")
