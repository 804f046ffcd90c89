package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type sessionClaims struct {
	SessionID string `json:"sid"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// SessionService mints signed session tokens and checks them against the
// sessions collection, so a revoked token stops working before it expires.
type SessionService struct {
	repo   SessionRepository
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

func NewSessionService(repo SessionRepository, secret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	return &SessionService{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue persists a new session for userID and returns its signed token.
func (s *SessionService) Issue(ctx context.Context, userID, role string) (string, error) {
	now := s.now().UTC()
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("issue session: %w", err)
	}

	claims := sessionClaims{
		SessionID: session.ID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Authorize resolves a token to the principal it was issued for.
func (s *SessionService) Authorize(ctx context.Context, token string) (models.Principal, error) {
	if token == "" {
		return models.Principal{}, models.ErrUnauthenticated
	}

	claims, err := s.parse(token)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", models.ErrUnauthenticated, err)
	}
	if !claims.VerifyExpiresAt(s.now(), true) {
		return models.Principal{}, fmt.Errorf("%w: token expired", models.ErrUnauthenticated)
	}

	session, err := s.repo.FindByID(ctx, claims.SessionID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Principal{}, fmt.Errorf("%w: session revoked", models.ErrUnauthenticated)
	}
	if err != nil {
		return models.Principal{}, err
	}
	if !s.now().Before(session.ExpiresAt) {
		return models.Principal{}, fmt.Errorf("%w: session expired", models.ErrUnauthenticated)
	}
	if session.UserID != claims.Subject || session.Role != claims.Role {
		return models.Principal{}, fmt.Errorf("%w: session mismatch", models.ErrUnauthenticated)
	}

	return models.Principal{UserID: session.UserID, Role: session.Role, SessionID: session.ID}, nil
}

// Revoke deletes the session behind token. Unknown, expired or garbled tokens
// are ignored; revocation never fails the caller.
func (s *SessionService) Revoke(ctx context.Context, token string) {
	if token == "" {
		return
	}
	// expired tokens are still revoked
	claims, err := s.parse(token)
	if err != nil {
		return
	}
	if err := s.repo.Delete(ctx, claims.SessionID); err != nil {
		s.log.Warn().Err(err).Str("sessionId", claims.SessionID).Msg("failed to delete session")
	}
}

// parse checks the signature only; expiry is checked against s.now by the caller.
func (s *SessionService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}); err != nil {
		return nil, err
	}
	return claims, nil
}
