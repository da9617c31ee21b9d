package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

const (
	tokenKey = "token"
	userKey  = "currentUser"
)

// RequireAuth verifies the bearer token and then checks that its login session
// is still alive, leaving the user in the request context.
func RequireAuth(auth *service.AuthService) []echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey: auth.Secret(),
		ContextKey: tokenKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.JwtCustomClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(401, map[string]string{"error": "Unauthorized"})
		},
	})

	session := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := claimsFrom(c)
			user, err := auth.Authenticate(c.Request().Context(), claims)
			if err != nil {
				return errorJSON(c, err)
			}
			c.Set(userKey, user)
			return next(c)
		}
	}

	return []echo.MiddlewareFunc{verify, session}
}

// RequireAdmin lets through only users whose username is in admins. It must
// run after RequireAuth.
func RequireAdmin(admins []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(admins))
	for _, name := range admins {
		allowed[name] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[currentUser(c).Username]; !ok {
				return c.JSON(403, map[string]string{"error": "Forbidden"})
			}
			return next(c)
		}
	}
}

func claimsFrom(c echo.Context) *service.JwtCustomClaims {
	token, ok := c.Get(tokenKey).(*jwt.Token)
	if !ok {
		return nil
	}
	claims, _ := token.Claims.(*service.JwtCustomClaims)
	return claims
}

func currentUser(c echo.Context) entity.User {
	user, _ := c.Get(userKey).(entity.User)
	return user
}

// RateLimiter limits each remote address to ratePerSec requests per second
// with the given burst.
func RateLimiter(ratePerSec float64, burst int) echo.MiddlewareFunc {
	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(ratePerSec),
				Burst:     burst,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}
	return middleware.RateLimiterWithConfig(limiterConfig)
}
