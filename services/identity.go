package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type IdentityService struct {
	users    UserRepository
	sessions *SessionService
	log      zerolog.Logger
}

func NewIdentityService(users UserRepository, sessions *SessionService, log zerolog.Logger) *IdentityService {
	return &IdentityService{users: users, sessions: sessions, log: log}
}

func (s *IdentityService) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	username := strings.TrimSpace(reg.Username)
	if username == "" || reg.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", models.ErrValidation)
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, models.ErrDuplicateUser
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     strings.TrimSpace(reg.Email),
		Password:  string(hash),
		Role:      models.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}
	// the unique index still catches a concurrent registration
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("userId", user.ID.Hex()).Str("username", username).Msg("user registered")
	return user, nil
}

// Login checks the credentials and opens a customer session. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, creds models.Credentials) (string, *models.User, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(creds.Username))
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, user.ID.Hex(), models.RoleCustomer)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *IdentityService) FetchProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *IdentityService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
