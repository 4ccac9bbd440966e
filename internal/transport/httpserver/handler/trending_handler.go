package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"yota-analytics/internal/app/service"
	"yota-analytics/internal/transport/httpserver/dto"
	"yota-analytics/internal/validator"
)

// TrendingHandler handles niche discovery HTTP requests.
type TrendingHandler struct {
	trending  *service.TrendingService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewTrendingHandler creates a new TrendingHandler.
func NewTrendingHandler(svc *service.TrendingService, v *validator.Validator, logger *zap.Logger) *TrendingHandler {
	return &TrendingHandler{
		trending:  svc,
		validator: v,
		logger:    logger,
	}
}

// Discover handles GET /api/v1/trending
func (h *TrendingHandler) Discover(c *fiber.Ctx) error {
	var req dto.TrendingRequest
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

	result, err := h.trending.Discover(c.Context(), req.Niche, req.Limit())
	if err != nil {
		h.logger.Error("trending discovery failed",
			zap.String("niche", req.Niche),
			zap.Error(err),
		)

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "trending discovery failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(result)
}
