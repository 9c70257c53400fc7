// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/menu-pricing/backend/internal/application/usecase/cogs"
	"github.com/menu-pricing/backend/internal/domain/entity"
)

// SubmitCOGSRequest represents the request body for a weekly COGS submission.
type SubmitCOGSRequest struct {
	WeekStartDate string   `json:"week_start_date" binding:"required"`
	WeekEndDate   *string  `json:"week_end_date,omitempty"`
	Amount        *float64 `json:"amount" binding:"required"`
}

// COGSEntryResponse represents a single weekly entry.
type COGSEntryResponse struct {
	ID            string    `json:"id"`
	WeekStartDate string    `json:"week_start_date"`
	WeekEndDate   string    `json:"week_end_date"`
	Amount        float64   `json:"amount"`
	DailyCost     float64   `json:"daily_cost"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// COGSListResponse represents the response for listing entries.
type COGSListResponse struct {
	Entries []COGSEntryResponse `json:"entries"`
}

// DeleteCOGSResponse represents the result of a bulk delete.
type DeleteCOGSResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// DailyCOGSResponse maps ISO dates to the distributed daily cost.
type DailyCOGSResponse struct {
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Daily     map[string]float64 `json:"daily"`
}

// CurrentWeekResponse describes the COGS state of the current week.
type CurrentWeekResponse struct {
	WeekStartDate string  `json:"week_start_date"`
	WeekEndDate   string  `json:"week_end_date"`
	HasEntry      bool    `json:"has_entry"`
	Amount        float64 `json:"amount"`
	DailyCost     float64 `json:"daily_cost"`
}

// ToCOGSEntryResponse converts a domain COGSEntry to a COGSEntryResponse DTO.
func ToCOGSEntryResponse(e *entity.COGSEntry) COGSEntryResponse {
	daily := 0.0
	if days := e.DaysInWeek(); days > 0 {
		daily = e.Amount / float64(days)
	}
	return COGSEntryResponse{
		ID:            e.ID.String(),
		WeekStartDate: e.WeekStartDate.Format(DateLayout),
		WeekEndDate:   e.WeekEndDate.Format(DateLayout),
		Amount:        e.Amount,
		DailyCost:     daily,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ToCOGSListResponse converts entries to COGSListResponse.
func ToCOGSListResponse(entries []*entity.COGSEntry) COGSListResponse {
	out := make([]COGSEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToCOGSEntryResponse(e)
	}
	return COGSListResponse{
		Entries: out,
	}
}

// ToCurrentWeekResponse converts the current week state.
func ToCurrentWeekResponse(o *cogs.CurrentWeekOutput) CurrentWeekResponse {
	return CurrentWeekResponse{
		WeekStartDate: o.WeekStartDate.Format(DateLayout),
		WeekEndDate:   o.WeekEndDate.Format(DateLayout),
		HasEntry:      o.HasEntry,
		Amount:        o.Amount,
		DailyCost:     o.DailyCost,
	}
}
