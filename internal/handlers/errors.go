package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/M-N-Hossain/bookverse-backend/internal/apperrors"
)

// NewErrorHandler returns the app-level fiber error handler. Every failure a
// handler returns funnels through here and comes out as a single
// {"error": message} body with the status its kind maps to. In production
// mode, internal error details are replaced by a generic message.
func NewErrorHandler(production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		status := apperrors.StatusCode(err)
		if status == fiber.StatusInternalServerError {
			log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
		}
		return c.Status(status).JSON(fiber.Map{"error": apperrors.ClientMessage(err, production)})
	}
}

// validationError turns validator failures into a single validation error
// naming the first offending field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return apperrors.New(apperrors.KindValidation,
			fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
	}
	return apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
}

// parseBody decodes the request body, mapping decode failures to the
// validation kind.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, "invalid request body", err)
	}
	return nil
}
