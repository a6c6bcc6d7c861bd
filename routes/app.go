package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meinhoongagan/handyhub/config"
	"github.com/meinhoongagan/handyhub/lifecycle"
	"github.com/meinhoongagan/handyhub/middleware"
	"github.com/meinhoongagan/handyhub/payments"
	"github.com/meinhoongagan/handyhub/repository"
	"github.com/meinhoongagan/handyhub/utils"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Config   *config.Config
	Store    repository.Store
	Engine   *lifecycle.Engine
	Bridge   *payments.Bridge
	Uploader utils.Uploader
}

func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "handyhub",
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     d.Config.Server.CORSOrigins,
		AllowCredentials: d.Config.Server.CORSOrigins != "*",
	}))
	app.Use(middleware.Metrics())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	protected := middleware.Protected(d.Config.Auth, d.Store)

	SetupAuthRoutes(api, protected, d)
	SetupServiceRoutes(api, protected, d)
	SetupConsumerRoutes(api, protected, d)

	return app
}
