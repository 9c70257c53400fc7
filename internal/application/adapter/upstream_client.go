// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/domain/entity"
)

// ExportRequest asks the point-of-sale system for a sales export.
type ExportRequest struct {
	AccountID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// ExportHandle identifies a running upstream export.
type ExportHandle struct {
	ExportID  string
	ProcessID string
}

// ExportRows is the decoded and validated content of a finished export.
type ExportRows struct {
	Records  []*entity.SalesRecord
	Rejected int
}

// UpstreamSalesClient defines the interface for the point-of-sale API.
type UpstreamSalesClient interface {
	// RequestExport starts an export and returns its handle.
	RequestExport(ctx context.Context, request ExportRequest) (*ExportHandle, error)

	// ProcessStatus returns the status of the export process.
	ProcessStatus(ctx context.Context, processID string) (entity.ImportStatus, error)

	// FetchRows downloads the rows of a finished export.
	FetchRows(ctx context.Context, accountID uuid.UUID, exportID string) (*ExportRows, error)

	// IsAvailable checks if the client is properly configured.
	IsAvailable() bool
}
