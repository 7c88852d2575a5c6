package handler

import (
	"math"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"

	"github.com/ahmednasr/embedding-server/internal/middleware"
	"github.com/ahmednasr/embedding-server/internal/service"
)

// AppOptions tunes the fiber application.
type AppOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// BodyLimit caps the request body in bytes; <= 0 means no practical cap.
	BodyLimit int
	// Debug adds stack traces to recovered panics and mounts /debug/pprof.
	Debug bool
	// AccessLog enables the per-request log line.
	AccessLog bool
}

// NewApp builds the fiber app with middleware, error mapping and routes.
func NewApp(embedSvc service.EmbedService, opts AppOptions) *fiber.App {
	// Long texts are truncated by the model, never rejected for size.
	bodyLimit := opts.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = math.MaxInt32
	}

	app := fiber.New(fiber.Config{
		AppName:               "embedding-server",
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		BodyLimit:             bodyLimit,
		ErrorHandler:          ErrorHandler,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Use(middleware.Recover(opts.Debug))
	if opts.AccessLog {
		app.Use(middleware.Logging())
	}
	if opts.Debug {
		app.Use(pprof.New())
	}

	RegisterRoutes(app, embedSvc)
	return app
}

// RegisterRoutes mounts every endpoint at the root of the router.
func RegisterRoutes(r fiber.Router, embedSvc service.EmbedService) {
	NewHealthHandler().Register(r)
	NewEmbedHandler(embedSvc).Register(r)
}
