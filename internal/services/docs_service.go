package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders printable purchase order documents.
type DocsService struct {
	OrderRepo repositories.OrderRepository
	RequestID string
	Loader    func(int64) (repositories.OrderDoc, error)
}

// GeneratePurchaseOrder builds the PDF for one purchase order.
func (s DocsService) GeneratePurchaseOrder(orderID int64) ([]byte, string, error) {
	data, err := s.loadOrderDoc(orderID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_purchase_order", fmt.Sprintf("order_id=%d", orderID))
	return buildPurchaseOrderPDF(data)
}

func (s DocsService) loadOrderDoc(orderID int64) (repositories.OrderDoc, error) {
	if s.Loader != nil {
		return s.Loader(orderID)
	}
	return s.OrderRepo.GetDoc(orderID)
}

func buildPurchaseOrderPDF(d repositories.OrderDoc) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Purchase Order", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PURCHASE ORDER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Order No   : %s", safe(d.Code, "-")),
		fmt.Sprintf("Status     : %s", safe(d.Status, "-")),
		fmt.Sprintf("Vendor     : %s", safe(d.VendorName, "-")),
		fmt.Sprintf("Material   : %s", safe(d.MaterialName, "-")),
		fmt.Sprintf("Quantity   : %.2f", d.Quantity),
		fmt.Sprintf("Ordered On : %s", safe(d.CreatedAt, "-")),
		fmt.Sprintf("Printed On : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	currency := safe(d.Currency, "SAR")
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s %s", utils.FormatMoney(d.TotalAmount), currency))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This document is generated from the procurement dashboard and is not a tax invoice.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("PO_%d_%s.pdf", d.ID, safeFilenamePart(d.Code))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "document"
	}
	return out
}
