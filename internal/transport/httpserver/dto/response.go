package dto

import (
	"yota-analytics/internal/domain"
	"yota-analytics/internal/export"
)

// AuditResponse wraps the audit result for the audit-only endpoint.
type AuditResponse struct {
	ChannelID   string             `json:"channel_id"`
	Channel     string             `json:"channel"`
	Audit       domain.AuditResult `json:"audit"`
	GeneratedAt string             `json:"generated_at"`
}

// TimingResponse wraps the timing recommendation for the timing endpoint.
type TimingResponse struct {
	ChannelID   string                      `json:"channel_id"`
	Channel     string                      `json:"channel"`
	Timing      domain.TimingRecommendation `json:"timing"`
	GeneratedAt string                      `json:"generated_at"`
}

// OutlierResponse holds outliers and the patterns extracted from them.
type OutlierResponse struct {
	ChannelID string               `json:"channel_id"`
	Threshold float64              `json:"threshold"`
	Outliers  []domain.Video       `json:"outliers"`
	Patterns  domain.PatternReport `json:"patterns"`
}

// ExportResponse reports where exported files were written.
type ExportResponse struct {
	ChannelID string       `json:"channel_id"`
	Paths     export.Paths `json:"paths"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
