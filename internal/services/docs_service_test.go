package services

import (
	"bytes"
	"strings"
	"testing"

	"backend/internal/repositories"
)

func TestGeneratePurchaseOrderPDF(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (repositories.OrderDoc, error) {
			return repositories.OrderDoc{
				ID:           id,
				Code:         "PO-2024-002",
				Status:       "RECEIVED",
				VendorName:   "Acme Trading",
				MaterialName: "Steel Pipes",
				Quantity:     10,
				TotalAmount:  1500,
				Currency:     "SAR",
				CreatedAt:    "2024-01-02",
			}, nil
		},
	}

	pdfBytes, filename, err := svc.GeneratePurchaseOrder(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pdfBytes) == 0 || !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if !strings.HasPrefix(filename, "PO_2_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}
