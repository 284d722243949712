package repository

import (
	"context"
	"errors"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	// FindByAccountID returns nil when the account does not exist.
	FindByAccountID(ctx context.Context, accountID uint) (*models.UserProfile, error)
	// UpdateProfile applies the non-nil fields of update. It returns false only
	// when the account does not exist; an update that changes nothing is still
	// reported as true.
	UpdateProfile(ctx context.Context, accountID uint, update models.ProfileUpdate) (bool, error)
}

type userRepository struct {
	base
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{base: newBase(db)}
}

func (r *userRepository) FindByAccountID(ctx context.Context, accountID uint) (*models.UserProfile, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var profiles []models.UserProfile
	err := r.db.WithContext(ctx).Table("usuario u").
		Select("u.id, u.primer_nombre, u.segundo_nombre, u.primer_apellido, u.segundo_apellido, u.email, c.username").
		Joins("JOIN cuenta c ON u.id = c.usuario_id").
		Where("c.id = ?", accountID).
		Limit(1).
		Scan(&profiles).Error
	if err != nil {
		return nil, wrap("getUserById", err)
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return &profiles[0], nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, accountID uint, update models.ProfileUpdate) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	found := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cuenta models.Cuenta
		if err := tx.Select("id, usuario_id").First(&cuenta, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		if fields := usuarioFields(update); len(fields) > 0 {
			if err := tx.Model(&models.Usuario{}).Where("id = ?", cuenta.UsuarioID).Updates(fields).Error; err != nil {
				return err
			}
		}
		if update.Username != nil {
			if err := tx.Model(&models.Cuenta{}).Where("id = ?", cuenta.ID).Update("username", *update.Username).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, wrap("updateUserProfile", err)
	}
	return found, nil
}

func usuarioFields(update models.ProfileUpdate) map[string]interface{} {
	fields := make(map[string]interface{})
	if update.PrimerNombre != nil {
		fields["primer_nombre"] = *update.PrimerNombre
	}
	if update.SegundoNombre != nil {
		fields["segundo_nombre"] = *update.SegundoNombre
	}
	if update.PrimerApellido != nil {
		fields["primer_apellido"] = *update.PrimerApellido
	}
	if update.SegundoApellido != nil {
		fields["segundo_apellido"] = *update.SegundoApellido
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	return fields
}
