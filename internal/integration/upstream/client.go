// Package upstream implements the point-of-sale export API client.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

// Options configures the client.
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	RetryCount int
}

// Client is a resty-backed implementation of adapter.UpstreamSalesClient.
type Client struct {
	httpClient *resty.Client
	baseURL    string
	validate   *validator.Validate
}

// NewClient builds a point-of-sale API client.
func NewClient(opts Options) *Client {
	base := strings.TrimSuffix(opts.BaseURL, "/")
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return err != nil || resp.StatusCode() >= http.StatusInternalServerError
		})
	if opts.APIKey != "" {
		restyClient.SetAuthToken(opts.APIKey)
	}

	return &Client{
		httpClient: restyClient,
		baseURL:    base,
		validate:   validator.New(),
	}
}

// IsAvailable checks if the client is properly configured.
func (c *Client) IsAvailable() bool {
	return c.baseURL != ""
}

// RequestExport starts an export of the account's sales.
func (c *Client) RequestExport(ctx context.Context, request adapter.ExportRequest) (*adapter.ExportHandle, error) {
	result := new(exportResponse)
	if err := c.do(ctx, http.MethodPost, "/exports", exportRequest{
		AccountID: request.AccountID.String(),
		StartDate: request.StartDate.Format(entity.DateLayout),
		EndDate:   request.EndDate.Format(entity.DateLayout),
	}, result); err != nil {
		return nil, err
	}

	if err := c.validate.Struct(result); err != nil {
		return nil, fmt.Errorf("%w: export response: %v", domainerror.ErrInvalidUpstreamPayload, err)
	}

	return &adapter.ExportHandle{
		ExportID:  result.ExportID,
		ProcessID: result.ProcessID,
	}, nil
}

// ProcessStatus returns the status of the export process.
func (c *Client) ProcessStatus(ctx context.Context, processID string) (entity.ImportStatus, error) {
	result := new(processResponse)
	if err := c.do(ctx, http.MethodGet, "/processes/"+processID, nil, result); err != nil {
		return "", err
	}

	if err := c.validate.Struct(result); err != nil {
		return "", fmt.Errorf("%w: process status: %v", domainerror.ErrInvalidUpstreamPayload, err)
	}

	return entity.ImportStatus(result.Status), nil
}

// FetchRows downloads the rows of a finished export.
// Rows failing validation are rejected and counted, never defaulted.
func (c *Client) FetchRows(ctx context.Context, accountID uuid.UUID, exportID string) (*adapter.ExportRows, error) {
	result := new(rowsResponse)
	if err := c.do(ctx, http.MethodGet, "/exports/"+exportID+"/rows", nil, result); err != nil {
		return nil, err
	}

	if err := c.validate.Struct(result); err != nil {
		return nil, fmt.Errorf("%w: export rows: %v", domainerror.ErrInvalidUpstreamPayload, err)
	}

	rows := &adapter.ExportRows{Records: make([]*entity.SalesRecord, 0, len(result.Rows))}
	for i := range result.Rows {
		record, err := c.toRecord(accountID, &result.Rows[i])
		if err != nil {
			rows.Rejected++
			slog.Warn("Rejected upstream sales row",
				"exportID", exportID,
				"lineID", result.Rows[i].LineID,
				"error", err.Error(),
			)
			continue
		}
		rows.Records = append(rows.Records, record)
	}

	return rows, nil
}

func (c *Client) toRecord(accountID uuid.UUID, row *saleRow) (*entity.SalesRecord, error) {
	if err := c.validate.Struct(row); err != nil {
		return nil, err
	}

	soldAt, err := time.Parse(time.RFC3339, row.SoldAt)
	if err != nil {
		return nil, fmt.Errorf("invalid sold_at: %w", err)
	}

	var menuItemID *uuid.UUID
	if row.ItemID != nil {
		id, err := uuid.Parse(*row.ItemID)
		if err != nil {
			return nil, fmt.Errorf("invalid item_id: %w", err)
		}
		menuItemID = &id
	}

	return &entity.SalesRecord{
		ID:             uuid.New(),
		AccountID:      accountID,
		ExternalLineID: row.LineID,
		OrderID:        row.OrderID,
		MenuItemID:     menuItemID,
		ItemName:       row.ItemName,
		Category:       row.Category,
		Quantity:       *row.Quantity,
		Revenue:        *row.Revenue,
		Cost:           row.Cost,
		SoldAt:         soldAt,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, result interface{}) error {
	apiErr := new(apiError)

	req := c.httpClient.R().
		SetContext(ctx).
		SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("upstream request %s %s: %w", method, path, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("upstream api error: status=%d, code=%s, message=%s",
			resp.StatusCode(), apiErr.Error.Code, apiErr.Error.Message)
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: %s %s: %v", domainerror.ErrInvalidUpstreamPayload, method, path, err)
	}
	return nil
}
