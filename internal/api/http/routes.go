package httpapi

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ngmaloney/weather-terminal/internal/dashboard"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

var validate = validator.New()

// dashboardQuery holds query parameters for the dashboard endpoint.
type dashboardQuery struct {
	City string `validate:"required"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, client weatherapi.WeatherClient) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		q := dashboardQuery{City: strings.TrimSpace(c.Query("city"))}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snapshot := client.FetchCurrent(c.UserContext(), q.City)
		if snapshot == nil {
			return fiber.NewError(fiber.StatusBadGateway, "no weather data for requested city")
		}

		return c.JSON(dashboard.Build(snapshot))
	})
}

// ErrorHandler renders every error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

// NewApp builds the Fiber app with health and dashboard routes. Middleware is
// installed ahead of the routes so it applies to all of them.
func NewApp(client weatherapi.WeatherClient, middleware ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard-api",
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})

	for _, h := range middleware {
		app.Use(h)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard-api",
		})
	})

	RegisterRoutes(app, client)
	return app
}
