package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/NoeTobes/FullStackWebApp/internal/storage"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	kv          storage.KV
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, kv storage.KV) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, kv: kv}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking the storage backend.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := h.kv.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "DEPENDENCY_UNAVAILABLE",
				"message": "storage backend unavailable",
				"details": fiber.Map{"storage": err.Error()},
			},
		})
	}

	return c.JSON(fiber.Map{
		"status":       "ready",
		"dependencies": fiber.Map{"storage": "ok"},
	})
}
