// Package upstream implements the point-of-sale export API client.
package upstream

// exportRequest is the body of POST /exports.
type exportRequest struct {
	AccountID string `json:"account_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// exportResponse is the body returned by POST /exports.
type exportResponse struct {
	ExportID  string `json:"export_id" validate:"required"`
	ProcessID string `json:"process_id" validate:"required"`
}

// processResponse is the body returned by GET /processes/{id}.
type processResponse struct {
	ID     string `json:"id"`
	Status string `json:"status" validate:"required,oneof=pending processing completed error"`
}

// rowsResponse is the body returned by GET /exports/{id}/rows.
type rowsResponse struct {
	Rows []saleRow `json:"rows" validate:"required"`
}

// saleRow is one sold line. Pointer fields distinguish absent values from zero.
type saleRow struct {
	LineID   string   `json:"line_id" validate:"required"`
	OrderID  string   `json:"order_id" validate:"required"`
	ItemID   *string  `json:"item_id" validate:"omitempty,uuid"`
	ItemName string   `json:"item_name" validate:"required"`
	Category string   `json:"category"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
	Revenue  *float64 `json:"revenue" validate:"required,gte=0"`
	Cost     *float64 `json:"cost" validate:"omitempty,gte=0"`
	SoldAt   string   `json:"sold_at" validate:"required"`
}

// apiError represents an upstream API error payload.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
