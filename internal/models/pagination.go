package models

import "math"

// Pagination defaults
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PaginationResult holds pagination metadata
type PaginationResult struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPaginationResult creates a pagination result
func NewPaginationResult(page, limit int, total int64) PaginationResult {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return PaginationResult{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ValidateAndSetDefaults validates pagination parameters and sets defaults
func ValidateAndSetDefaults(page, limit *int) {
	if *page < 1 {
		*page = DefaultPage
	}
	if *limit < 1 {
		*limit = DefaultLimit
	}
	if *limit > MaxLimit {
		*limit = MaxLimit
	}
}

// CalculateOffset calculates the SQL offset for pagination
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}
