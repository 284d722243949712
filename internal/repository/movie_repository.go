package repository

import (
	"context"
	"errors"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]models.Movie, error)
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
}

type movieRepository struct {
	base
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{base: newBase(db)}
}

func (r *movieRepository) FindAll(ctx context.Context) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var peliculas []models.Pelicula
	if err := db.Order("id").Find(&peliculas).Error; err != nil {
		return nil, wrap("listAllMovies", err)
	}

	movies, err := withMovieCategories(db, peliculas)
	if err != nil {
		return nil, wrap("listAllMovies", err)
	}
	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var pelicula models.Pelicula
	err := db.First(&pelicula, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap("getMovieById", err)
	}

	movies, err := withMovieCategories(db, []models.Pelicula{pelicula})
	if err != nil {
		return nil, wrap("getMovieById", err)
	}
	return &movies[0], nil
}

func withMovieCategories(db *gorm.DB, peliculas []models.Pelicula) ([]models.Movie, error) {
	ids := make([]uint, len(peliculas))
	for i, p := range peliculas {
		ids[i] = p.ID
	}

	names, err := categoryNames(db, models.ContentTypeMovie, ids)
	if err != nil {
		return nil, err
	}

	movies := make([]models.Movie, len(peliculas))
	for i, p := range peliculas {
		movies[i] = models.Movie{Pelicula: p, NombreCategoria: names[p.ID]}
	}
	return movies, nil
}
