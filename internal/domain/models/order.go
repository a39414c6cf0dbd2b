package models

// Purchase order statuses that count as delivered for dashboard purposes.
const (
	OrderStatusReceived = "RECEIVED"
	OrderStatusClosed   = "CLOSED"
)

// PurchaseOrder is the fact row the spend aggregations sum over. VendorName
// and MaterialName are denormalized copies taken at ordering time; the live
// dimension rows remain the source of truth for display labels.
type PurchaseOrder struct {
	ID           int64   `json:"id"`
	RFQID        int64   `json:"rfqId"`
	Code         string  `json:"code"`
	Status       string  `json:"status"`
	VendorID     int64   `json:"vendorId,omitempty"`
	VendorName   string  `json:"vendorName,omitempty"`
	MaterialID   int64   `json:"materialId,omitempty"`
	MaterialName string  `json:"materialName,omitempty"`
	Quantity     float64 `json:"quantity"`
	TotalAmount  float64 `json:"totalAmount"`
	Currency     string  `json:"currency"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}
