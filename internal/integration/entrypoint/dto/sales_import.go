// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// StartImportRequest represents the request body for starting a sales import.
type StartImportRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ImportJobResponse represents the tracked state of an import.
type ImportJobResponse struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	RowsImported int        `json:"rows_imported"`
	RowsRejected int        `json:"rows_rejected"`
	Error        string     `json:"error,omitempty"`
	ErrorCode    string     `json:"error_code,omitempty"`
	Retryable    bool       `json:"retryable"`
	StartedAt    time.Time  `json:"started_at"`
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
}

// ToImportJobResponse converts an ImportJob to an ImportJobResponse DTO.
func ToImportJobResponse(job *entity.ImportJob) ImportJobResponse {
	return ImportJobResponse{
		ID:           job.ID,
		Status:       string(job.Status),
		StartDate:    job.StartDate.Format(DateLayout),
		EndDate:      job.EndDate.Format(DateLayout),
		RowsImported: job.RowsImported,
		RowsRejected: job.RowsRejected,
		Error:        job.Error,
		ErrorCode:    job.ErrorCode,
		Retryable:    job.Retryable,
		StartedAt:    job.StartedAt,
		FinishedAt:   job.FinishedAt,
	}
}
