package services

import (
	"context"
	"time"

	"streaming-catalog/internal/models"
	"streaming-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

type CatalogService interface {
	ListVideos(ctx context.Context) ([]models.Video, error)
	ListVideosByCategory(ctx context.Context, categoryID uint) ([]models.Video, error)
	ListCategories(ctx context.Context) ([]models.Categoria, error)

	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, id uint) (*models.Movie, error)

	ListSeriesWithEpisodes(ctx context.Context) ([]models.SeriesEpisodes, error)
	ListSeriesSummaries(ctx context.Context) ([]models.SeriesSummary, error)
	GetSeriesDetails(ctx context.Context, id uint) (*models.SeriesDetails, error)

	// MoviePlayback and EpisodePlayback return nil when the content does not exist.
	MoviePlayback(ctx context.Context, id uint) (*Playback, error)
	EpisodePlayback(ctx context.Context, id uint) (*Playback, error)
}

type Playback struct {
	URL       string
	ExpiresIn time.Duration
}

type catalogService struct {
	movies     repository.MovieRepository
	videos     repository.VideoRepository
	series     repository.SeriesRepository
	categories repository.CategoryRepository
	media      *MediaService
	logger     *logrus.Logger
}

func NewCatalogService(
	movies repository.MovieRepository,
	videos repository.VideoRepository,
	series repository.SeriesRepository,
	categories repository.CategoryRepository,
	logger *logrus.Logger,
) CatalogService {
	return &catalogService{
		movies:     movies,
		videos:     videos,
		series:     series,
		categories: categories,
		logger:     logger,
	}
}

func (s *catalogService) SetMediaService(media *MediaService) {
	s.media = media
}

func (s *catalogService) fail(op string, err error) {
	s.logger.WithError(err).WithField("operation", op).Error("Catalog query failed")
}

func (s *catalogService) ListVideos(ctx context.Context) ([]models.Video, error) {
	videos, err := s.videos.FindAll(ctx)
	if err != nil {
		s.fail("listAllVideos", err)
		return nil, err
	}
	return videos, nil
}

func (s *catalogService) ListVideosByCategory(ctx context.Context, categoryID uint) ([]models.Video, error) {
	videos, err := s.videos.FindByCategory(ctx, categoryID)
	if err != nil {
		s.fail("listVideosByCategory", err)
		return nil, err
	}
	return videos, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Categoria, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		s.fail("listAllCategories", err)
		return nil, err
	}
	return categories, nil
}

func (s *catalogService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.movies.FindAll(ctx)
	if err != nil {
		s.fail("listAllMovies", err)
		return nil, err
	}
	return movies, nil
}

func (s *catalogService) GetMovie(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		s.fail("getMovieById", err)
		return nil, err
	}
	return movie, nil
}

func (s *catalogService) ListSeriesWithEpisodes(ctx context.Context) ([]models.SeriesEpisodes, error) {
	groups, err := s.series.FindAllWithEpisodes(ctx)
	if err != nil {
		s.fail("listAllSeriesWithEpisodes", err)
		return nil, err
	}
	return groups, nil
}

func (s *catalogService) ListSeriesSummaries(ctx context.Context) ([]models.SeriesSummary, error) {
	summaries, err := s.series.FindSummaries(ctx)
	if err != nil {
		s.fail("listSeriesSummaries", err)
		return nil, err
	}
	return summaries, nil
}

func (s *catalogService) GetSeriesDetails(ctx context.Context, id uint) (*models.SeriesDetails, error) {
	details, err := s.series.FindDetails(ctx, id)
	if err != nil {
		s.fail("getSeriesDetails", err)
		return nil, err
	}
	return details, nil
}

func (s *catalogService) MoviePlayback(ctx context.Context, id uint) (*Playback, error) {
	movie, err := s.GetMovie(ctx, id)
	if err != nil || movie == nil {
		return nil, err
	}
	return s.playback(ctx, movie.URLVideo)
}

func (s *catalogService) EpisodePlayback(ctx context.Context, id uint) (*Playback, error) {
	episode, err := s.videos.FindEpisodeByID(ctx, id)
	if err != nil {
		s.fail("getEpisodeById", err)
		return nil, err
	}
	if episode == nil {
		return nil, nil
	}
	return s.playback(ctx, episode.URLVideo)
}

func (s *catalogService) playback(ctx context.Context, location string) (*Playback, error) {
	playbackURL, expiry, err := s.media.PlaybackURL(ctx, location)
	if err != nil {
		return nil, err
	}
	return &Playback{URL: playbackURL, ExpiresIn: expiry}, nil
}
