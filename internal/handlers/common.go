package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"postboard/dto"
	"postboard/log"
	"postboard/model"
	"postboard/services"
)

// storeTimeout bounds every store round trip.
const storeTimeout = 5 * time.Second

func requestCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context(), storeTimeout)
}

// respondError maps service errors to HTTP statuses. Store failures are
// logged with their detail and reported to the caller as a generic 500.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationResponse{Errors: verr.Errors})
	case errors.Is(err, model.ErrPostNotFound),
		errors.Is(err, model.ErrCommentNotFound),
		errors.Is(err, model.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrNotAuthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrAlreadyLiked), errors.Is(err, model.ErrNotLiked):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, model.ErrEmailTaken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationResponse{Errors: []dto.FieldError{
			{Field: "email", Message: err.Error()},
		}})
	default:
		log.Error.Printf("%s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(dto.ErrorResponse{Message: "internal server error"})
	}
}
