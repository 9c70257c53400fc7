package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menu-pricing/backend/internal/application/adapter"
	"github.com/menu-pricing/backend/internal/domain/entity"
	domainerror "github.com/menu-pricing/backend/internal/domain/error"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Options{BaseURL: server.URL, APIKey: "key", Timeout: time.Second})
}

func TestClient_RequestExport(t *testing.T) {
	accountID := uuid.New()
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/exports", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var body exportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, accountID.String(), body.AccountID)
		assert.Equal(t, "2024-03-01", body.StartDate)

		_, _ = w.Write([]byte(`{"export_id": "exp-1", "process_id": "proc-1"}`))
	})

	handle, err := client.RequestExport(context.Background(), adapter.ExportRequest{
		AccountID: accountID,
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "exp-1", handle.ExportID)
	assert.Equal(t, "proc-1", handle.ProcessID)
}

func TestClient_ProcessStatus(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/processes/proc-1", r.URL.Path)
			_, _ = w.Write([]byte(`{"id": "proc-1", "status": "processing"}`))
		})
		status, err := client.ProcessStatus(context.Background(), "proc-1")
		require.NoError(t, err)
		assert.Equal(t, entity.ImportStatusProcessing, status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id": "proc-1", "status": "done-ish"}`))
		})
		_, err := client.ProcessStatus(context.Background(), "proc-1")
		assert.ErrorIs(t, err, domainerror.ErrInvalidUpstreamPayload)
	})

	t.Run("http error carries status", func(t *testing.T) {
		client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"code": "rate_limited", "message": "slow down"}}`))
		})
		_, err := client.ProcessStatus(context.Background(), "proc-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=429")
		assert.Contains(t, err.Error(), "slow down")
	})
}

func TestClient_FetchRowsRejectsMalformedRows(t *testing.T) {
	itemID := uuid.New().String()
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exports/exp-1/rows", r.URL.Path)
		_, _ = w.Write([]byte(`{"rows": [
			{"line_id": "l1", "order_id": "o1", "item_id": "` + itemID + `", "item_name": "Burger", "category": "Mains",
			 "quantity": 2, "revenue": 24.5, "cost": 8, "sold_at": "2024-03-04T12:30:00Z"},
			{"line_id": "l2", "order_id": "o1", "item_name": "Fries", "quantity": 1, "sold_at": "2024-03-04T12:30:00Z"},
			{"line_id": "l3", "order_id": "o2", "item_name": "Soda", "quantity": 1, "revenue": 2, "sold_at": "yesterday"},
			{"line_id": "l4", "order_id": "o2", "item_name": "Tea", "quantity": 1, "revenue": 0, "sold_at": "2024-03-04T13:00:00+01:00"}
		]}`))
	})

	accountID := uuid.New()
	rows, err := client.FetchRows(context.Background(), accountID, "exp-1")
	require.NoError(t, err)
	assert.Equal(t, 2, rows.Rejected)
	require.Len(t, rows.Records, 2)

	burger := rows.Records[0]
	assert.Equal(t, accountID, burger.AccountID)
	assert.Equal(t, "l1", burger.ExternalLineID)
	assert.Equal(t, 24.5, burger.Revenue)
	require.NotNil(t, burger.Cost)
	assert.Equal(t, 8.0, *burger.Cost)
	require.NotNil(t, burger.MenuItemID)
	assert.Equal(t, itemID, burger.MenuItemID.String())

	tea := rows.Records[1]
	assert.Equal(t, 0.0, tea.Revenue)
	assert.Nil(t, tea.Cost)
	assert.True(t, tea.SoldAt.Equal(time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)))
}

func TestClient_FetchRowsUnparsable(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})
	_, err := client.FetchRows(context.Background(), uuid.New(), "exp-1")
	assert.ErrorIs(t, err, domainerror.ErrInvalidUpstreamPayload)
}

func TestClient_IsAvailable(t *testing.T) {
	assert.False(t, NewClient(Options{}).IsAvailable())
	assert.True(t, NewClient(Options{BaseURL: "http://pos"}).IsAvailable())
}
