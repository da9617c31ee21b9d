package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/sessionstore"
)

const MinPasswordLength = 6

// JwtCustomClaims ties a bearer token to a login session.
type JwtCustomClaims struct {
	UserID    int    `json:"userId"`
	SessionID string `json:"sessionId"`
	jwt.RegisteredClaims
}

type sessionData struct {
	UserID    int       `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthService struct {
	store    *repository.Store
	sessions sessionstore.Store
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

type AuthOption func(*AuthService)

// WithAuthClock overrides the time source for session and token timestamps.
func WithAuthClock(now func() time.Time) AuthOption {
	return func(s *AuthService) {
		s.now = now
	}
}

func NewAuthService(store *repository.Store, sessions sessionstore.Store, secret string, ttl time.Duration, opts ...AuthOption) *AuthService {
	if ttl <= 0 {
		ttl = sessionstore.DefaultTTL
	}
	s := &AuthService{
		store:    store,
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Secret is the HS256 signing key, shared with the token-checking middleware.
func (s *AuthService) Secret() []byte {
	return s.secret
}

type RegisterInput struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Language  string  `json:"language"`
	Theme     string  `json:"theme"`
}

func hashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters: %w", MinPasswordLength, repository.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Register creates a user with a hashed password. A taken username fails with ErrConflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (entity.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return entity.User{}, fmt.Errorf("username is required: %w", repository.ErrValidation)
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.store.CreateUser(entity.User{
		Username:  username,
		Password:  hash,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Language:  in.Language,
		Theme:     in.Theme,
	})
	if err != nil {
		logger.Error().Err(err).Msgf("Error registering user %q", username)
		return entity.User{}, err
	}
	return user, nil
}

// Login checks the credentials, opens a session and returns a signed token for it.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, entity.User, error) {
	user, err := s.store.GetUserByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", entity.User{}, fmt.Errorf("invalid username or password: %w", ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", entity.User{}, fmt.Errorf("invalid username or password: %w", ErrUnauthorized)
	}

	now := s.now()
	sessionID := uuid.NewString()
	blob, err := json.Marshal(sessionData{UserID: user.ID, CreatedAt: now})
	if err != nil {
		return "", entity.User{}, err
	}
	if err := s.sessions.Set(ctx, sessionID, blob, s.ttl); err != nil {
		logger.Error().Err(err).Msgf("Error storing session for user %d", user.ID)
		return "", entity.User{}, err
	}

	claims := &JwtCustomClaims{
		UserID:    user.ID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		_ = s.sessions.Destroy(ctx, sessionID)
		return "", entity.User{}, fmt.Errorf("sign token: %w", err)
	}
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		logger.Error().Err(err).Msgf("Error destroying session %s", sessionID)
		return err
	}
	return nil
}

// Authenticate resolves the user behind a verified token. The token is only
// good while its session is alive and still names the same user.
func (s *AuthService) Authenticate(ctx context.Context, claims *JwtCustomClaims) (entity.User, error) {
	if claims == nil || claims.SessionID == "" {
		return entity.User{}, ErrUnauthorized
	}
	blob, ok, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return entity.User{}, err
	}
	if !ok {
		return entity.User{}, fmt.Errorf("session expired: %w", ErrUnauthorized)
	}

	var data sessionData
	if err := json.Unmarshal(blob, &data); err != nil {
		logger.Warn().Err(err).Msgf("Discarding unreadable session %s", claims.SessionID)
		_ = s.sessions.Destroy(ctx, claims.SessionID)
		return entity.User{}, ErrUnauthorized
	}
	if data.UserID != claims.UserID {
		return entity.User{}, ErrUnauthorized
	}

	user, err := s.store.GetUser(data.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return entity.User{}, fmt.Errorf("user %d no longer exists: %w", data.UserID, ErrUnauthorized)
	}
	return user, err
}

// ProfileUpdate is the self-service profile patch. A new password is hashed before storing.
type ProfileUpdate struct {
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Language  *string `json:"language"`
	Theme     *string `json:"theme"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID int, in ProfileUpdate) (entity.User, error) {
	patch := entity.UserPatch{
		Username:  in.Username,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Language:  in.Language,
		Theme:     in.Theme,
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return entity.User{}, err
		}
		patch.Password = &hash
	}
	return s.store.UpdateUser(userID, patch)
}
