package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-gap/internal/models"
	"alfredoptarigan/resume-gap/internal/services"
)

// ValidationError describes a request body that decoded but does not have
// the expected shape.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "invalid request body"
}

// StatusCode returns the HTTP status used for err.
func StatusCode(err error) int {
	var (
		validationErr *ValidationError
		fiberErr      *fiber.Error
	)

	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &validationErr):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// NewErrorHandler returns the app-wide error handler. Every error becomes
// {"error": ..., "code": ...}; server-side failures are logged.
func NewErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *fiber.Ctx, err error) error {
		code := StatusCode(err)

		resp := models.ErrorResponse{
			Error: err.Error(),
			Code:  code,
		}

		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			resp.Details = validationErr.Details
		}

		if code >= fiber.StatusInternalServerError {
			var genErr *services.GenerationError
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Bool("generation_error", errors.As(err, &genErr)),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(resp)
	}
}
