package handlers

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// FlexibleID accepts ids sent either as JSON numbers or numeric strings.
type FlexibleID uint

func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*id = FlexibleID(v)
	return nil
}

type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"ana"`
	Password string `json:"password" validate:"required" example:"s3creta"`
}

type RegisterRequest struct {
	PrimerNombre    string  `json:"primer_nombre" validate:"required" example:"Ana"`
	SegundoNombre   *string `json:"segundo_nombre" example:"María"`
	PrimerApellido  string  `json:"primer_apellido" validate:"required" example:"Pérez"`
	SegundoApellido *string `json:"segundo_apellido" example:"López"`
	Email           string  `json:"email" validate:"required" example:"ana@example.com"`
	Username        string  `json:"username" validate:"required" example:"ana"`
	Password        string  `json:"password" validate:"required" example:"s3creta"`
}

// UpdateProfileRequest fields left out of the body keep their stored value.
type UpdateProfileRequest struct {
	PrimerNombre    *string `json:"primer_nombre"`
	SegundoNombre   *string `json:"segundo_nombre"`
	PrimerApellido  *string `json:"primer_apellido"`
	SegundoApellido *string `json:"segundo_apellido"`
	Email           *string `json:"email"`
	Username        *string `json:"username"`
}

type SaveRequest struct {
	UserID  FlexibleID `json:"userId" validate:"required" swaggertype:"integer" example:"1"`
	MovieID FlexibleID `json:"movieId" validate:"required" swaggertype:"integer" example:"3"`
}

// bindAndValidate parses the JSON body into payload and checks required
// fields. A body that cannot be parsed counts as missing fields.
func bindAndValidate(c *fiber.Ctx, payload interface{}) bool {
	if err := c.BodyParser(payload); err != nil {
		return false
	}
	return validate.Struct(payload) == nil
}

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
