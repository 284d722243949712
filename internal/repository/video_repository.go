package repository

import (
	"context"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/gorm"
)

type VideoRepository interface {
	// FindAll returns every movie followed by every episode.
	FindAll(ctx context.Context) ([]models.Video, error)
	// FindByCategory returns the movies and episodes tagged with the category,
	// movies first.
	FindByCategory(ctx context.Context, categoryID uint) ([]models.Video, error)
	FindEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
}

type videoRepository struct {
	base
}

func NewVideoRepository(db *database.Database) VideoRepository {
	return &videoRepository{base: newBase(db)}
}

func (r *videoRepository) FindAll(ctx context.Context) ([]models.Video, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var peliculas []models.Pelicula
	if err := db.Order("id").Find(&peliculas).Error; err != nil {
		return nil, wrap("listAllVideos", err)
	}

	var episodes []models.Episode
	if err := episodeQuery(db).Order("e.id").Scan(&episodes).Error; err != nil {
		return nil, wrap("listAllVideos", err)
	}

	videos, err := mergeVideos(db, peliculas, episodes)
	if err != nil {
		return nil, wrap("listAllVideos", err)
	}
	return videos, nil
}

func (r *videoRepository) FindByCategory(ctx context.Context, categoryID uint) ([]models.Video, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var peliculas []models.Pelicula
	err := db.Where("id IN (?)", categorizedIDs(db, models.ContentTypeMovie, categoryID)).
		Order("id").
		Find(&peliculas).Error
	if err != nil {
		return nil, wrap("listVideosByCategory", err)
	}

	var episodes []models.Episode
	err = episodeQuery(db).
		Where("e.id IN (?)", categorizedIDs(db, models.ContentTypeEpisode, categoryID)).
		Order("e.id").
		Scan(&episodes).Error
	if err != nil {
		return nil, wrap("listVideosByCategory", err)
	}

	videos, err := mergeVideos(db, peliculas, episodes)
	if err != nil {
		return nil, wrap("listVideosByCategory", err)
	}
	return videos, nil
}

func (r *videoRepository) FindEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var episodes []models.Episode
	if err := episodeQuery(db).Where("e.id = ?", id).Limit(1).Scan(&episodes).Error; err != nil {
		return nil, wrap("getEpisodeById", err)
	}
	if len(episodes) == 0 {
		return nil, nil
	}

	if err := withEpisodeCategories(db, episodes); err != nil {
		return nil, wrap("getEpisodeById", err)
	}
	return &episodes[0], nil
}

// episodeQuery selects episodes joined with their season and series.
func episodeQuery(db *gorm.DB) *gorm.DB {
	return db.Table("episodios e").
		Select("e.*, t.serie_id, s.nombre AS nombre_serie").
		Joins("JOIN temporadas t ON e.temporada_id = t.id").
		Joins("JOIN series s ON t.serie_id = s.id")
}

func withEpisodeCategories(db *gorm.DB, episodes []models.Episode) error {
	ids := make([]uint, len(episodes))
	for i, e := range episodes {
		ids[i] = e.ID
	}

	names, err := categoryNames(db, models.ContentTypeEpisode, ids)
	if err != nil {
		return err
	}
	for i := range episodes {
		episodes[i].NombreCategoria = names[episodes[i].ID]
	}
	return nil
}

func mergeVideos(db *gorm.DB, peliculas []models.Pelicula, episodes []models.Episode) ([]models.Video, error) {
	movies, err := withMovieCategories(db, peliculas)
	if err != nil {
		return nil, err
	}
	if err := withEpisodeCategories(db, episodes); err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(movies)+len(episodes))
	for _, m := range movies {
		videos = append(videos, models.VideoFromMovie(m))
	}
	for _, e := range episodes {
		videos = append(videos, models.VideoFromEpisode(e))
	}
	return videos, nil
}
