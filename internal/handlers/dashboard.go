package handlers

import (
	"log"

	"github.com/Arivumathi323/login/internal/dashboard"
	"github.com/Arivumathi323/login/internal/middleware"
	"github.com/Arivumathi323/login/internal/models"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the dashboard view and activity creation.
type DashboardHandler struct {
	aggregator *dashboard.Aggregator
}

func NewDashboardHandler(aggregator *dashboard.Aggregator) *DashboardHandler {
	return &DashboardHandler{aggregator: aggregator}
}

// GetDashboard returns the full view for the current user. Partial data
// beats no dashboard: failed reads inside the aggregator degrade to
// defaults rather than turning into an error response.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	view := h.aggregator.Load(c.UserContext(), userID)
	return c.JSON(view)
}

// CreateActivity appends an event to the current user's log and returns
// the refreshed feed and counters.
func (h *DashboardHandler) CreateActivity(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ActivityType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Activity type is required",
		})
	}
	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	refresh, err := h.aggregator.Record(c.UserContext(), userID, req.ActivityType, req.Title, req.Description)
	if err != nil {
		log.Printf("handlers: activity insert failed for %s: %v", userID, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to record activity",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(refresh)
}
