// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import "yota-analytics/internal/domain"

// TrendingRequest represents the query parameters for niche discovery.
type TrendingRequest struct {
	Niche      string `query:"niche" json:"niche" validate:"required,max=200"`
	MaxResults int    `query:"max_results" json:"max_results" validate:"omitempty,min=1,max=50"`
}

// Limit returns the requested result count, defaulting to 20.
func (r *TrendingRequest) Limit() int {
	if r.MaxResults > 0 {
		return r.MaxResults
	}
	return 20
}

// OutlierRequest represents the query parameters for outlier detection.
type OutlierRequest struct {
	Threshold float64 `query:"threshold" json:"threshold" validate:"omitempty,gt=0,max=100"`
}

// EffectiveThreshold returns the requested threshold, defaulting to the
// standard outlier multiple.
func (r *OutlierRequest) EffectiveThreshold() float64 {
	if r.Threshold > 0 {
		return r.Threshold
	}
	return domain.DefaultOutlierThreshold
}
