package models

// RFQ is a request-for-quote issued from a purchase request.
type RFQ struct {
	ID          int64  `json:"id"`
	RequestID   int64  `json:"requestId"`
	Code        string `json:"code"`
	Status      string `json:"status"`
	VendorCount int    `json:"vendorCount"`
	DueDate     string `json:"dueDate,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
