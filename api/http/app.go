package http

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/artem13815/hr/screening/api/http/presenter"
	"github.com/artem13815/hr/screening/pkg/logger"
)

type Options struct {
	// BodyLimit in bytes; multipart overhead on top of the file counts too.
	BodyLimit   int
	CORSOrigins string
	Logger      *slog.Logger
}

// NewApp creates the Fiber app with the common middleware stack.
func NewApp(opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.CORSOrigins == "" {
		opts.CORSOrigins = "*"
	}
	app := fiber.New(fiber.Config{
		AppName:               "resume-screening",
		BodyLimit:             opts.BodyLimit,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})
	app.Use(accessLog(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: opts.CORSOrigins}))
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return presenter.Error(c, fe.Code, fe.Message)
	}
	return presenter.Error(c, fiber.StatusInternalServerError, "Server error: "+err.Error())
}

// accessLog assigns a request id, stores it in the user context and logs
// every request once the response status is known.
func accessLog(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))

		start := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Info("http request",
			"request_id", id,
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start),
		)
		return nil
	}
}
