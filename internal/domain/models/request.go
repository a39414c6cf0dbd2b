package models

// Request is an originating purchase request raised against a warehouse.
type Request struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	NeededBy    string `json:"neededBy,omitempty"`
	WarehouseID int64  `json:"warehouseId,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// RequestActivity is an append-only audit entry attached to a request.
// Rows are inserted once and never updated or deleted.
type RequestActivity struct {
	ID        int64  `json:"id"`
	RequestID int64  `json:"requestId"`
	Action    string `json:"action"`
	Detail    string `json:"detail"`
	CreatedAt string `json:"createdAt"`
}

// ActivityFeedItem is an activity row enriched with a live snapshot of its
// parent request. Parent fields degrade to null independently when the parent
// row is missing.
type ActivityFeedItem struct {
	ID        int64   `json:"id"`
	RequestID int64   `json:"requestId"`
	Code      *string `json:"code"`
	Status    *string `json:"status"`
	Priority  *string `json:"priority"`
	Action    string  `json:"action"`
	Detail    string  `json:"detail"`
	CreatedAt string  `json:"createdAt"`
}
