package api

import (
	"errors"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// statusFor maps a domain error to its HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return 404
	case errors.Is(err, repository.ErrConflict), errors.Is(err, repository.ErrCapacityExceeded):
		return 409
	case errors.Is(err, repository.ErrValidation):
		return 400
	case errors.Is(err, service.ErrUnauthorized):
		return 401
	}
	return 500
}

func errorJSON(c echo.Context, err error) error {
	code := statusFor(err)
	if code == 500 {
		logger.Error().Err(err).Msgf("%s %s failed", c.Request().Method, c.Path())
		return c.JSON(code, map[string]string{"error": "internal server error"})
	}
	return c.JSON(code, map[string]string{"error": err.Error()})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(400, map[string]string{"error": msg})
}

// paramID reads a positive integer path parameter.
func paramID(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
