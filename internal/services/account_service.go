package services

import (
	"context"
	"fmt"

	"streaming-catalog/internal/models"
	"streaming-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type AccountService interface {
	// Authenticate returns nil, nil for an unknown username and for a wrong
	// password alike.
	Authenticate(ctx context.Context, username, password string) (*models.Identity, error)
	// Register creates a user with its account and returns the user id.
	Register(ctx context.Context, reg Registration) (uint, error)
}

type Registration struct {
	PrimerNombre    string
	SegundoNombre   *string
	PrimerApellido  string
	SegundoApellido *string
	Email           string
	Username        string
	Password        string
}

type accountService struct {
	repo      repository.AccountRepository
	hasher    PasswordHasher
	logger    *logrus.Logger
	dummyHash string
}

func NewAccountService(repo repository.AccountRepository, hasher PasswordHasher, logger *logrus.Logger) (AccountService, error) {
	// Compared against when the username is unknown so both failures cost the same.
	dummy, err := hasher.Hash("dummy-password-for-unknown-accounts")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare password hasher: %w", err)
	}

	return &accountService{
		repo:      repo,
		hasher:    hasher,
		logger:    logger,
		dummyHash: dummy,
	}, nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*models.Identity, error) {
	cuenta, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "authenticateAccount").Error("Failed to look up account")
		return nil, err
	}

	hash := s.dummyHash
	if cuenta != nil {
		hash = cuenta.PasswordHash
	}

	match, err := s.hasher.Compare(hash, password)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "authenticateAccount").Error("Failed to verify password")
		return nil, err
	}
	if cuenta == nil || !match {
		return nil, nil
	}

	return &models.Identity{AccountID: cuenta.ID, UsuarioID: cuenta.UsuarioID}, nil
}

func (s *accountService) Register(ctx context.Context, reg Registration) (uint, error) {
	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "registerAccount").Error("Failed to hash password")
		return 0, fmt.Errorf("registerAccount: %w", err)
	}

	usuario := &models.Usuario{
		PrimerNombre:    reg.PrimerNombre,
		SegundoNombre:   reg.SegundoNombre,
		PrimerApellido:  reg.PrimerApellido,
		SegundoApellido: reg.SegundoApellido,
		Email:           reg.Email,
	}

	usuarioID, err := s.repo.Register(ctx, usuario, reg.Username, hash)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"operation": "registerAccount",
			"username":  reg.Username,
		}).Error("Failed to register account")
		return 0, err
	}

	s.logger.WithField("usuario_id", usuarioID).Info("Account registered")
	return usuarioID, nil
}
