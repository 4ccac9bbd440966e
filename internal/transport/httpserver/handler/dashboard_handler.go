package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DashboardHandler handles dashboard-related HTTP requests.
type DashboardHandler struct {
	defaultChannelID string
	logger           *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler. defaultChannelID
// pre-fills the dashboard's channel input.
func NewDashboardHandler(defaultChannelID string, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		defaultChannelID: defaultChannelID,
		logger:           logger,
	}
}

// Render handles GET /dashboard
// Renders the dashboard HTML page using Fiber's template engine. The page
// loads report data from the JSON API client-side.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	return c.Render("pages/dashboard", fiber.Map{
		"Title":     "Yota Analytics",
		"ChannelID": h.defaultChannelID,
	}, "layouts/base")
}
