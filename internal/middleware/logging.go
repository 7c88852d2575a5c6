// Package middleware holds the fiber middleware shared by every route.
package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Logging writes one access-log line per request.
func Logging() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} - http - INFO - ${method} ${path} ${status} ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		Output:     os.Stdout,
	})
}

// Recover turns a panicking handler into an error for the app ErrorHandler,
// so a single bad request never takes the process down.
func Recover(withStack bool) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: withStack,
	})
}
