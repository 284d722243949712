package utils

import "github.com/gofiber/fiber/v2"

const InternalErrorMessage = "Internal server error"

// StandardResponse is the body of every status-only reply. Data keys are
// merged alongside success and message.
type StandardResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message,omitempty" example:"Internal server error"`
}

// SuccessResponse sends {success:true, message, ...data}.
func SuccessResponse(c *fiber.Ctx, code int, message string, data fiber.Map) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	return c.Status(code).JSON(body)
}

// ErrorResponse sends {success:false, message}.
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(StandardResponse{
		Success: false,
		Message: message,
	})
}

// InternalErrorResponse sends a 500 without any detail about the cause.
func InternalErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, InternalErrorMessage)
}

// JSONResponse sends a bare payload such as a list.
func JSONResponse(c *fiber.Ctx, code int, payload interface{}) error {
	return c.Status(code).JSON(payload)
}
