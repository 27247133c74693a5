package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationResult(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{name: "empty", page: 1, limit: 10, total: 0, wantPages: 0},
		{name: "exact fit", page: 1, limit: 10, total: 10, wantPages: 1},
		{name: "partial last page", page: 1, limit: 10, total: 11, wantPages: 2, wantNext: true},
		{name: "middle page", page: 2, limit: 5, total: 12, wantPages: 3, wantNext: true, wantPrev: true},
		{name: "last page", page: 3, limit: 5, total: 12, wantPages: 3, wantPrev: true},
		{name: "beyond last page", page: 9, limit: 5, total: 12, wantPages: 3, wantPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginationResult(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
		})
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{name: "zero values", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "negative values", page: -3, limit: -5, wantPage: 1, wantLimit: 10},
		{name: "limit capped", page: 2, limit: 500, wantPage: 2, wantLimit: 100},
		{name: "kept", page: 4, limit: 25, wantPage: 4, wantLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := tt.page, tt.limit
			ValidateAndSetDefaults(&page, &limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestCustomerFilter_Normalize(t *testing.T) {
	f := CustomerFilter{SortBy: "created_at; DROP TABLE customers", Order: "sideways", Search: "  ada  "}
	f.Normalize()

	assert.Equal(t, SortFirstName, f.SortBy)
	assert.Equal(t, OrderAsc, f.Order)
	assert.Equal(t, "ada", f.Search)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.Limit)

	f = CustomerFilter{SortBy: SortCity, Order: "desc", Page: 3, Limit: 20}
	f.Normalize()
	assert.Equal(t, SortCity, f.SortBy)
	assert.Equal(t, OrderDesc, f.Order)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 20, f.Limit)
}

func TestAppError(t *testing.T) {
	err := ErrNotFoundWithMsg(MsgCustomerNotFound)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "Customer not found: resource not found", err.Error())

	assert.False(t, IsNotFound(ErrInvalidInput("bad")))
	assert.Equal(t, "bad", ErrInvalidInput("bad").Error())
}
