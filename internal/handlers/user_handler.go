package handlers

import (
	"streaming-catalog/internal/models"
	"streaming-catalog/internal/services"
	"streaming-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgUserNotFound    = "User not found"
	msgUsuarioNotFound = "Usuario no encontrado"
	msgProfileUpdated  = "Perfil actualizado correctamente"
	msgInvalidBody     = "Invalid request body"
	msgMissingBookmark = "Faltan userId o movieId"
	msgBookmarkSaved   = "Guardada guardado exitosamente"
)

type UserHandler struct {
	service services.UserService
	logger  *logrus.Logger
}

func NewUserHandler(service services.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// GetUser godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	accountID, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgUserNotFound)
	}

	profile, err := h.service.GetUser(c.Context(), accountID)
	if err != nil {
		h.logger.WithError(err).WithField("account_id", accountID).Error("Error fetching user")
		return utils.InternalErrorResponse(c)
	}
	if profile == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgUserNotFound)
	}
	return utils.JSONResponse(c, fiber.StatusOK, profile)
}

// UpdateUser godoc
// @Summary Update a user profile
// @Description Fields left out of the body keep their value
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param profile body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.StandardResponse "Profile updated"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /user/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	accountID, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgUsuarioNotFound)
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgInvalidBody)
	}

	found, err := h.service.UpdateProfile(c.Context(), accountID, models.ProfileUpdate{
		PrimerNombre:    req.PrimerNombre,
		SegundoNombre:   req.SegundoNombre,
		PrimerApellido:  req.PrimerApellido,
		SegundoApellido: req.SegundoApellido,
		Email:           req.Email,
		Username:        req.Username,
	})
	if err != nil {
		h.logger.WithError(err).WithField("account_id", accountID).Error("Error updating user")
		return utils.InternalErrorResponse(c)
	}
	if !found {
		return utils.ErrorResponse(c, fiber.StatusNotFound, msgUsuarioNotFound)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, msgProfileUpdated, nil)
}

// SaveGuardada godoc
// @Summary Bookmark a movie
// @Tags guardadas
// @Accept json
// @Produce json
// @Param bookmark body SaveRequest true "Account and movie"
// @Success 201 {object} utils.StandardResponse "Bookmark saved"
// @Failure 400 {object} utils.StandardResponse "Missing userId or movieId"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /guardadas [post]
func (h *UserHandler) SaveGuardada(c *fiber.Ctx) error {
	var req SaveRequest
	if !bindAndValidate(c, &req) {
		h.logger.Warn(msgMissingBookmark)
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgMissingBookmark)
	}

	if err := h.service.SaveBookmark(c.Context(), uint(req.UserID), uint(req.MovieID)); err != nil {
		h.logger.WithError(err).Error("Error saving bookmark")
		return utils.InternalErrorResponse(c)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, msgBookmarkSaved, nil)
}

// GetGuardadas godoc
// @Summary List bookmarked movies
// @Tags guardadas
// @Produce json
// @Param userId path int true "Account ID"
// @Success 200 {object} map[string]interface{} "success, movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /guardadas/{userId} [get]
func (h *UserHandler) GetGuardadas(c *fiber.Ctx) error {
	accountID, ok := parseID(c, "userId")
	if !ok {
		return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"movies": []models.Video{}})
	}

	movies, err := h.service.ListSavedMovies(c.Context(), accountID)
	if err != nil {
		h.logger.WithError(err).WithField("account_id", accountID).Error("Error fetching saved movies")
		return utils.InternalErrorResponse(c)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "", fiber.Map{"movies": movies})
}
