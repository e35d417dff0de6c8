package stub

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/piwi3910/FurniLayout/internal/config"
	"github.com/piwi3910/FurniLayout/internal/middleware"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/predictor"
)

// ModelName is reported in every successful response.
const ModelName = "Simple Algorithm"

// NewApp builds the stub service with its middleware and routes.
func NewApp(cfg *config.Config) *fiber.App {
	settings := model.DefaultSettings()
	settings.ScaleFactor = cfg.ScaleFactor

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "FurniLayout Placement Stub",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())

	Register(app, NewPlacer(settings))
	return app
}

// Register mounts the health and layout routes.
func Register(app *fiber.App, placer *Placer) {
	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})
	app.Get("/api/status", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "model": ModelName})
	})
	app.Post(predictor.PredictPath, Predict(placer))
}

// Predict handles a layout request.
func Predict(placer *Placer) fiber.Handler {
	return func(c fiber.Ctx) error {
		body := c.Body()
		if len(body) == 0 {
			return c.Status(400).JSON(predictor.Response{
				Status:  predictor.StatusError,
				Message: "body required",
			})
		}

		var req predictor.Request
		if err := json.Unmarshal(body, &req); err != nil {
			log.Printf("[STUB] Decode error: %v", err)
			return c.Status(400).JSON(predictor.Response{
				Status:  predictor.StatusError,
				Message: "invalid JSON payload",
			})
		}
		if len(req.Items) == 0 {
			return c.Status(400).JSON(predictor.Response{
				Status:  predictor.StatusError,
				Message: "no items to place",
			})
		}
		if req.RoomType == "" {
			req.RoomType = model.RoomLiving
		}

		data := placer.Place(req)
		log.Printf("[STUB] placed %d of %d items on %q", len(data), len(req.Items), req.FloorGeometry.Name)

		return c.JSON(predictor.Response{
			Status:      predictor.StatusSuccess,
			Data:        data,
			TotalPlaced: len(data),
			RoomType:    req.RoomType,
			ModelUsed:   ModelName,
		})
	}
}
