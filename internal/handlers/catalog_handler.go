package handlers

import (
	"streaming-catalog/internal/models"
	"streaming-catalog/internal/services"
	"streaming-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgMovieNotFound   = "Película no encontrada"
	msgSeriesNotFound  = "Serie no encontrada"
	msgEpisodeNotFound = "Episodio no encontrado"
)

type CatalogHandler struct {
	service services.CatalogService
	logger  *logrus.Logger
}

func NewCatalogHandler(service services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// GetVideos godoc
// @Summary List all videos
// @Description Every movie followed by every episode, each with its category names
// @Tags videos
// @Produce json
// @Success 200 {array} models.Video
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /videos [get]
func (h *CatalogHandler) GetVideos(c *fiber.Ctx) error {
	videos, err := h.service.ListVideos(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Error fetching videos")
		return utils.InternalErrorResponse(c)
	}
	return utils.JSONResponse(c, fiber.StatusOK, videos)
}

// GetVideosByCategory godoc
// @Summary List videos of a category
// @Tags videos
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {array} models.Video
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /videos/category/{categoryId} [get]
func (h *CatalogHandler) GetVideosByCategory(c *fiber.Ctx) error {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return utils.JSONResponse(c, fiber.StatusOK, []models.Video{})
	}

	videos, err := h.service.ListVideosByCategory(c.Context(), categoryID)
	if err != nil {
		h.logger.WithError(err).WithField("category_id", categoryID).Error("Error fetching videos by category")
		return utils.InternalErrorResponse(c)
	}
	return utils.JSONResponse(c, fiber.StatusOK, videos)
}

// GetCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Categoria
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /categories [get]
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Error fetching categories")
		return utils.InternalErrorResponse(c)
	}
	return utils.JSONResponse(c, fiber.StatusOK, categories)
}

// GetSeries godoc
// @Summary List series with their episodes
// @Tags series
// @Produce json
// @Success 200 {array} models.SeriesEpisodes
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /series [get]
func (h *CatalogHandler) GetSeries(c *fiber.Ctx) error {
	series, err := h.service.ListSeriesWithEpisodes(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Error fetching series")
		return utils.InternalErrorResponse(c)
	}
	return utils.JSONResponse(c, fiber.StatusOK, series)
}

// GetSeriesSummaries godoc
// @Summary List series with season and episode counts
// @Tags series
// @Produce json
// @Success 200 {array} models.SeriesSummary
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /series/summary [get]
func (h *CatalogHandler) GetSeriesSummaries(c *fiber.Ctx) error {
	summaries, err := h.service.ListSeriesSummaries(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Error fetching series summaries")
		return utils.InternalErrorResponse(c)
	}
	return utils.JSONResponse(c, fiber.StatusOK, summaries)
}

// GetSeriesDetails godoc
// @Summary Get series details
// @Description Seasons ordered by number and a flat list of episodes ordered by season and episode number
// @Tags series
// @Produce json
// @Param id path int true "Series ID"
// @Success 200 {object} models.SeriesDetails
// @Failure 404 {object} utils.StandardResponse "Series not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /series/{id} [get]
func (h *CatalogHandler) GetSeriesDetails(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgSeriesNotFound)
	}

	details, err := h.service.GetSeriesDetails(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error fetching series details")
		return utils.InternalErrorResponse(c)
	}
	if details == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgSeriesNotFound)
	}
	return utils.JSONResponse(c, fiber.StatusOK, details)
}

// GetMovies godoc
// @Summary List movies
// @Tags movies
// @Produce json
// @Success 200 {array} models.Movie
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *CatalogHandler) GetMovies(c *fiber.Ctx) error {
	movies, err := h.service.ListMovies(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Error fetching movies")
		return utils.InternalErrorResponse(c)
	}
	return utils.JSONResponse(c, fiber.StatusOK, movies)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{id} [get]
func (h *CatalogHandler) GetMovieByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgMovieNotFound)
	}

	movie, err := h.service.GetMovie(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error fetching movie details")
		return utils.InternalErrorResponse(c)
	}
	if movie == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgMovieNotFound)
	}
	return utils.JSONResponse(c, fiber.StatusOK, movie)
}

// GetMovieStream godoc
// @Summary Get a playback URL for a movie
// @Tags playback
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} map[string]interface{} "success, url, expires_in"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{id}/stream [get]
func (h *CatalogHandler) GetMovieStream(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgMovieNotFound)
	}

	playback, err := h.service.MoviePlayback(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error resolving movie playback")
		return utils.InternalErrorResponse(c)
	}
	if playback == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgMovieNotFound)
	}
	return playbackResponse(c, playback)
}

// GetEpisodeStream godoc
// @Summary Get a playback URL for an episode
// @Tags playback
// @Produce json
// @Param id path int true "Episode ID"
// @Success 200 {object} map[string]interface{} "success, url, expires_in"
// @Failure 404 {object} utils.StandardResponse "Episode not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /episodes/{id}/stream [get]
func (h *CatalogHandler) GetEpisodeStream(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgEpisodeNotFound)
	}

	playback, err := h.service.EpisodePlayback(c.Context(), id)
	if err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Error resolving episode playback")
		return utils.InternalErrorResponse(c)
	}
	if playback == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgEpisodeNotFound)
	}
	return playbackResponse(c, playback)
}

func playbackResponse(c *fiber.Ctx, playback *services.Playback) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{
		"url":        playback.URL,
		"expires_in": int64(playback.ExpiresIn.Seconds()),
	})
}
