package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"yota-analytics/internal/app/service"
	"yota-analytics/internal/domain"
	"yota-analytics/internal/export"
	"yota-analytics/internal/transport/httpserver/dto"
)

// AdminHandler handles admin HTTP requests.
type AdminHandler struct {
	analytics *service.AnalyticsService
	cache     domain.Cache
	outputDir string
	logger    *zap.Logger
}

// NewAdminHandler creates a new AdminHandler. outputDir is where exported
// files are written.
func NewAdminHandler(svc *service.AnalyticsService, cache domain.Cache, outputDir string, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		analytics: svc,
		cache:     cache,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Export handles POST /api/v1/admin/export/:id
// Builds a fresh report and writes the JSON and CSV files.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	channelID := c.Params("id")
	if channelID == "" {
		return missingChannelID(c)
	}

	h.logger.Info("manual export triggered", zap.String("channel_id", channelID))

	report, err := h.analytics.BuildReport(c.Context(), channelID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "EXPORT_FAILED",
		})
	}

	paths, err := export.WriteAll(report, h.outputDir)
	if err != nil {
		h.logger.Error("export write failed",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "could not write export files",
			Code:  "EXPORT_FAILED",
		})
	}

	return c.JSON(dto.ExportResponse{
		ChannelID: channelID,
		Paths:     paths,
	})
}

// ClearCache handles POST /api/v1/admin/cache/clear
func (h *AdminHandler) ClearCache(c *fiber.Ctx) error {
	h.logger.Info("manual cache clear triggered")

	if err := h.cache.Clear(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "cache clear failed",
			Code:  "CACHE_ERROR",
		})
	}

	return c.JSON(fiber.Map{"status": "cleared"})
}
