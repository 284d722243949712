package handlers

import (
	"streaming-catalog/internal/services"
	"streaming-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	msgMissingCredentials = "Missing username or password"
	msgInvalidCredentials = "Credenciales inválidas"
	msgLoginSuccess       = "Inicio de sesión exitoso. ¡Bienvenido de nuevo!"
	msgMissingFields      = "Missing required fields"
	msgRegisterSuccess    = "Registro exitoso"
)

type AuthHandler struct {
	service services.AccountService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AccountService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Login godoc
// @Summary Log in
// @Description Check a username and password and return the account id
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "success, message, accountId"
// @Failure 400 {object} utils.StandardResponse "Missing username or password"
// @Failure 401 {object} utils.StandardResponse "Invalid credentials"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if !bindAndValidate(c, &req) {
		h.logger.Warn(msgMissingCredentials)
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgMissingCredentials)
	}

	identity, err := h.service.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.WithError(err).Error("Login failed")
		return utils.InternalErrorResponse(c)
	}
	if identity == nil {
		h.logger.WithField("username", req.Username).Info(msgInvalidCredentials)
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, msgInvalidCredentials)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, msgLoginSuccess, fiber.Map{
		"accountId": identity.AccountID,
	})
}

// Register godoc
// @Summary Register a user
// @Description Create a user and its account atomically
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Profile and credentials"
// @Success 201 {object} map[string]interface{} "success, message, usuario_id"
// @Failure 400 {object} utils.StandardResponse "Missing required fields"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if !bindAndValidate(c, &req) {
		h.logger.Warn(msgMissingFields)
		return utils.ErrorResponse(c, fiber.StatusBadRequest, msgMissingFields)
	}

	usuarioID, err := h.service.Register(c.Context(), services.Registration{
		PrimerNombre:    req.PrimerNombre,
		SegundoNombre:   req.SegundoNombre,
		PrimerApellido:  req.PrimerApellido,
		SegundoApellido: req.SegundoApellido,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
	})
	if err != nil {
		h.logger.WithError(err).Error("Registration failed")
		return utils.InternalErrorResponse(c)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, msgRegisterSuccess, fiber.Map{
		"usuario_id": usuarioID,
	})
}
