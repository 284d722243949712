package repository

import (
	"context"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/gorm"
)

type SavedRepository interface {
	// Save bookmarks a content id for the account. Duplicates are allowed.
	Save(ctx context.Context, accountID, contentID uint) error
	// FindMoviesByAccount returns the bookmarked movies of the account, each once.
	// Saved ids are matched against movies only.
	FindMoviesByAccount(ctx context.Context, accountID uint) ([]models.Video, error)
}

type savedRepository struct {
	base
}

func NewSavedRepository(db *database.Database) SavedRepository {
	return &savedRepository{base: newBase(db)}
}

func (r *savedRepository) Save(ctx context.Context, accountID, contentID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models.Guardada{IDCuenta: accountID, IDContenido: contentID}).Error
	})
	if err != nil {
		return wrap("saveBookmark", err)
	}
	return nil
}

func (r *savedRepository) FindMoviesByAccount(ctx context.Context, accountID uint) ([]models.Video, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var peliculas []models.Pelicula
	err := db.Where("id IN (?)", db.Table("guardadas").Select("id_contenido").Where("id_cuenta = ?", accountID)).
		Order("id").
		Find(&peliculas).Error
	if err != nil {
		return nil, wrap("listSavedMovies", err)
	}

	movies, err := withMovieCategories(db, peliculas)
	if err != nil {
		return nil, wrap("listSavedMovies", err)
	}

	videos := make([]models.Video, len(movies))
	for i, m := range movies {
		videos[i] = models.VideoFromMovie(m)
	}
	return videos, nil
}
