package repository

import (
	"context"
	"errors"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/gorm"
)

type AccountRepository interface {
	// FindByUsername returns nil when no account has the username.
	FindByUsername(ctx context.Context, username string) (*models.Cuenta, error)
	// Register inserts the user and its account in one transaction and returns
	// the new user id. Nothing is persisted when either insert fails.
	Register(ctx context.Context, usuario *models.Usuario, username, passwordHash string) (uint, error)
}

type accountRepository struct {
	base
}

func NewAccountRepository(db *database.Database) AccountRepository {
	return &accountRepository{base: newBase(db)}
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (*models.Cuenta, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var cuenta models.Cuenta
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&cuenta).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap("authenticateAccount", err)
	}
	return &cuenta, nil
}

func (r *accountRepository) Register(ctx context.Context, usuario *models.Usuario, username, passwordHash string) (uint, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var usuarioID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(usuario).Error; err != nil {
			return err
		}

		cuenta := &models.Cuenta{
			UsuarioID:    usuario.ID,
			Username:     username,
			PasswordHash: passwordHash,
		}
		if err := tx.Create(cuenta).Error; err != nil {
			return err
		}

		usuarioID = usuario.ID
		return nil
	})
	if err != nil {
		usuario.ID = 0
		return 0, wrap("registerAccount", err)
	}
	return usuarioID, nil
}
