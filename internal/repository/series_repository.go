package repository

import (
	"context"
	"errors"

	"streaming-catalog/internal/database"
	"streaming-catalog/internal/models"

	"gorm.io/gorm"
)

type SeriesRepository interface {
	// FindAllWithEpisodes groups every episode under its series title. Neither
	// the series nor the episodes are sorted by number.
	FindAllWithEpisodes(ctx context.Context) ([]models.SeriesEpisodes, error)
	// FindDetails returns nil when the series does not exist.
	FindDetails(ctx context.Context, id uint) (*models.SeriesDetails, error)
	FindSummaries(ctx context.Context) ([]models.SeriesSummary, error)
}

type seriesRepository struct {
	base
}

func NewSeriesRepository(db *database.Database) SeriesRepository {
	return &seriesRepository{base: newBase(db)}
}

func (r *seriesRepository) FindAllWithEpisodes(ctx context.Context) ([]models.SeriesEpisodes, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var series []models.Serie
	if err := db.Select("id, nombre, descripcion").Find(&series).Error; err != nil {
		return nil, wrap("listAllSeriesWithEpisodes", err)
	}

	groups := make([]models.SeriesEpisodes, 0, len(series))
	for _, serie := range series {
		episodes := []models.Episode{}
		err := episodeQuery(db).
			Where("t.serie_id = ?", serie.ID).
			Order("e.id").
			Scan(&episodes).Error
		if err != nil {
			return nil, wrap("listAllSeriesWithEpisodes", err)
		}
		if err := withEpisodeCategories(db, episodes); err != nil {
			return nil, wrap("listAllSeriesWithEpisodes", err)
		}

		groups = append(groups, models.SeriesEpisodes{
			Title: serie.Nombre,
			Data:  episodes,
		})
	}
	return groups, nil
}

func (r *seriesRepository) FindDetails(ctx context.Context, id uint) (*models.SeriesDetails, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	var serie models.Serie
	err := db.Select("id, nombre, descripcion").First(&serie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap("getSeriesDetails", err)
	}

	seasons := []models.Temporada{}
	err = db.Select("id, serie_id, numero, nombre").
		Where("serie_id = ?", id).
		Order("numero").
		Find(&seasons).Error
	if err != nil {
		return nil, wrap("getSeriesDetails", err)
	}

	episodes := []models.SeriesEpisode{}
	err = db.Table("episodios e").
		Select("e.id, e.nombre, e.url_video, e.url_imagen, e.sinopsis, e.fecha_subida, t.numero AS temporada_numero").
		Joins("JOIN temporadas t ON e.temporada_id = t.id").
		Where("t.serie_id = ?", id).
		Order("t.numero, e.numero_episodio").
		Scan(&episodes).Error
	if err != nil {
		return nil, wrap("getSeriesDetails", err)
	}

	return &models.SeriesDetails{
		ID:          serie.ID,
		Nombre:      serie.Nombre,
		Descripcion: serie.Descripcion,
		Temporadas:  seasons,
		Episodios:   episodes,
	}, nil
}

func (r *seriesRepository) FindSummaries(ctx context.Context) ([]models.SeriesSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	summaries := []models.SeriesSummary{}
	err := r.db.WithContext(ctx).Table("series s").
		Select("s.id, s.nombre, s.descripcion, " +
			"COUNT(DISTINCT t.id) AS num_temporadas, " +
			"COUNT(DISTINCT e.id) AS num_episodios").
		Joins("LEFT JOIN temporadas t ON s.id = t.serie_id").
		Joins("LEFT JOIN episodios e ON t.id = e.temporada_id").
		Group("s.id, s.nombre, s.descripcion").
		Order("s.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, wrap("listSeriesSummaries", err)
	}
	return summaries, nil
}
