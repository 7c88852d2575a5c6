package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ahmednasr/embedding-server/internal/models"
	"github.com/ahmednasr/embedding-server/internal/service"
)

// ErrorHandler converts every error returned by a handler (or raised by the
// recover middleware) into {"error": "..."} with the matching status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, msg := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		log.Errorf("[HTTP] %s %s failed: %v", c.Method(), c.Path(), err)
	} else {
		log.Debugf("[HTTP] %s %s rejected (%d): %s", c.Method(), c.Path(), status, msg)
	}
	return c.Status(status).JSON(models.ErrorResponse{Error: msg})
}

func statusFor(err error) (int, string) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case service.KindInvalidRequest, service.KindBatchTooLarge:
			return fiber.StatusBadRequest, svcErr.Message
		default:
			return fiber.StatusInternalServerError, svcErr.Message
		}
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}

	return fiber.StatusInternalServerError, err.Error()
}
