package services

import (
	"context"

	"streaming-catalog/internal/models"
	"streaming-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type UserService interface {
	GetUser(ctx context.Context, accountID uint) (*models.UserProfile, error)
	// UpdateProfile returns false when the account does not exist.
	UpdateProfile(ctx context.Context, accountID uint, update models.ProfileUpdate) (bool, error)
	SaveBookmark(ctx context.Context, accountID, contentID uint) error
	ListSavedMovies(ctx context.Context, accountID uint) ([]models.Video, error)
}

type userService struct {
	users  repository.UserRepository
	saved  repository.SavedRepository
	logger *logrus.Logger
}

func NewUserService(users repository.UserRepository, saved repository.SavedRepository, logger *logrus.Logger) UserService {
	return &userService{
		users:  users,
		saved:  saved,
		logger: logger,
	}
}

func (s *userService) GetUser(ctx context.Context, accountID uint) (*models.UserProfile, error) {
	profile, err := s.users.FindByAccountID(ctx, accountID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"operation":  "getUserById",
			"account_id": accountID,
		}).Error("Failed to get user")
		return nil, err
	}
	return profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, accountID uint, update models.ProfileUpdate) (bool, error) {
	found, err := s.users.UpdateProfile(ctx, accountID, update)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"operation":  "updateUserProfile",
			"account_id": accountID,
		}).Error("Failed to update profile")
		return false, err
	}
	return found, nil
}

func (s *userService) SaveBookmark(ctx context.Context, accountID, contentID uint) error {
	if err := s.saved.Save(ctx, accountID, contentID); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"operation":  "saveBookmark",
			"account_id": accountID,
			"content_id": contentID,
		}).Error("Failed to save bookmark")
		return err
	}
	return nil
}

func (s *userService) ListSavedMovies(ctx context.Context, accountID uint) ([]models.Video, error) {
	movies, err := s.saved.FindMoviesByAccount(ctx, accountID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"operation":  "listSavedMovies",
			"account_id": accountID,
		}).Error("Failed to list saved movies")
		return nil, err
	}
	return movies, nil
}
