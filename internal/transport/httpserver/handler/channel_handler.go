// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"yota-analytics/internal/app/service"
	"yota-analytics/internal/domain"
	"yota-analytics/internal/transport/httpserver/dto"
	"yota-analytics/internal/validator"
)

// ChannelHandler handles channel analytics HTTP requests.
type ChannelHandler struct {
	analytics *service.AnalyticsService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewChannelHandler creates a new ChannelHandler.
func NewChannelHandler(svc *service.AnalyticsService, v *validator.Validator, logger *zap.Logger) *ChannelHandler {
	return &ChannelHandler{
		analytics: svc,
		validator: v,
		logger:    logger,
	}
}

// Report handles GET /api/v1/channels/:id/report
func (h *ChannelHandler) Report(c *fiber.Ctx) error {
	channelID := c.Params("id")
	if channelID == "" {
		return missingChannelID(c)
	}

	report, err := h.analytics.BuildReport(c.Context(), channelID)
	if err != nil {
		return h.reportError(c, channelID, err)
	}

	return c.JSON(report)
}

// Audit handles GET /api/v1/channels/:id/audit
func (h *ChannelHandler) Audit(c *fiber.Ctx) error {
	channelID := c.Params("id")
	if channelID == "" {
		return missingChannelID(c)
	}

	report, err := h.analytics.BuildReport(c.Context(), channelID)
	if err != nil {
		return h.reportError(c, channelID, err)
	}

	return c.JSON(dto.AuditResponse{
		ChannelID:   channelID,
		Channel:     report.Channel.Name,
		Audit:       report.Audit,
		GeneratedAt: report.GeneratedAt,
	})
}

// Timing handles GET /api/v1/channels/:id/timing
func (h *ChannelHandler) Timing(c *fiber.Ctx) error {
	channelID := c.Params("id")
	if channelID == "" {
		return missingChannelID(c)
	}

	report, err := h.analytics.BuildReport(c.Context(), channelID)
	if err != nil {
		return h.reportError(c, channelID, err)
	}

	return c.JSON(dto.TimingResponse{
		ChannelID:   channelID,
		Channel:     report.Channel.Name,
		Timing:      report.Timing,
		GeneratedAt: report.GeneratedAt,
	})
}

// Outliers handles GET /api/v1/channels/:id/outliers
func (h *ChannelHandler) Outliers(c *fiber.Ctx) error {
	channelID := c.Params("id")
	if channelID == "" {
		return missingChannelID(c)
	}

	var req dto.OutlierRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	threshold := req.EffectiveThreshold()
	outliers, patterns, err := h.analytics.Outliers(c.Context(), channelID, threshold)
	if err != nil {
		return h.reportError(c, channelID, err)
	}

	if outliers == nil {
		outliers = []domain.Video{}
	}

	return c.JSON(dto.OutlierResponse{
		ChannelID: channelID,
		Threshold: threshold,
		Outliers:  outliers,
		Patterns:  patterns,
	})
}

// reportError maps service errors to HTTP responses.
func (h *ChannelHandler) reportError(c *fiber.Ctx, channelID string, err error) error {
	switch {
	case errors.Is(err, service.ErrChannelNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "channel not found",
			Code:  "CHANNEL_NOT_FOUND",
		})
	case errors.Is(err, service.ErrNoUploadsPlaylist):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: "channel has no uploads playlist",
			Code:  "NO_UPLOADS",
		})
	default:
		h.logger.Error("report failed",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "report failed",
			Code:  "INTERNAL_ERROR",
		})
	}
}

func missingChannelID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: "channel id is required",
		Code:  "MISSING_CHANNEL_ID",
	})
}
