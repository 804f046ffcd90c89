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

type AdminService struct {
	admins   AdminRepository
	sessions *SessionService
	log      zerolog.Logger
}

func NewAdminService(admins AdminRepository, sessions *SessionService, log zerolog.Logger) *AdminService {
	return &AdminService{admins: admins, sessions: sessions, log: log}
}

// Login authenticates against the admins collection and opens an admin session.
func (s *AdminService) Login(ctx context.Context, creds models.Credentials) (string, *models.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, strings.TrimSpace(creds.Username))
	if errors.Is(err, models.ErrNotFound) {
		return "", nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(creds.Password)); err != nil {
		return "", nil, models.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, admin.ID.Hex(), models.RoleAdmin)
	if err != nil {
		return "", nil, err
	}
	s.log.Info().Str("adminId", admin.ID.Hex()).Msg("admin logged in")
	return token, admin, nil
}

// EnsureAdmin creates the admin account when it does not exist yet. An existing
// account keeps its password.
func (s *AdminService) EnsureAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return fmt.Errorf("%w: admin username and password are required", models.ErrValidation)
	}

	_, err := s.admins.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &models.Admin{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now().UTC(),
	}
	err = s.admins.Create(ctx, admin)
	if errors.Is(err, models.ErrDuplicateUser) {
		// another instance seeded it first
		return nil
	}
	if err != nil {
		return err
	}

	s.log.Info().Str("username", username).Msg("admin account created")
	return nil
}
