package services

import (
	"database/sql"
	"testing"
	"time"

	intconfig "backend/internal/config"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestClassifyDeliveries(t *testing.T) {
	due := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	early := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	rows := []repositories.DeliveryRow{
		{CompletedAt: sql.NullTime{Time: early, Valid: true}, NeededBy: sql.NullTime{Time: due, Valid: true}},
		{CompletedAt: sql.NullTime{Time: late, Valid: true}, NeededBy: sql.NullTime{Time: due, Valid: true}},
		{CompletedAt: sql.NullTime{Time: due, Valid: true}, NeededBy: sql.NullTime{Time: due, Valid: true}},
		{CompletedAt: sql.NullTime{Time: late, Valid: true}, NeededBy: sql.NullTime{}},
	}

	onTime, delayed, skipped := classifyDeliveries(rows)
	if onTime != 2 {
		t.Fatalf("on-time count got %d want 2 (completion on the due date counts as on time)", onTime)
	}
	if delayed != 1 {
		t.Fatalf("delayed count got %d want 1", delayed)
	}
	if skipped != 1 {
		t.Fatalf("rows without a due date must be excluded, skipped got %d want 1", skipped)
	}
}

func TestResolveLabelFallbackChain(t *testing.T) {
	lookup := func(id int64) (string, error) {
		if id == 1 {
			return "Acme Trading", nil
		}
		return "", nil
	}

	if got := resolveLabel("Steel Pipes", 1, lookup); got != "Steel Pipes" {
		t.Fatalf("denormalized name should win, got %q", got)
	}
	if got := resolveLabel("  ", 1, lookup); got != "Acme Trading" {
		t.Fatalf("dimension lookup should fill empty names, got %q", got)
	}
	if got := resolveLabel("", 2, lookup); got != "Unassigned" {
		t.Fatalf("missing dimension should fall back to Unassigned, got %q", got)
	}
	if got := resolveLabel("", 3, nil); got != "Unassigned" {
		t.Fatalf("nil lookup should fall back to Unassigned, got %q", got)
	}
}

func TestVendorSpendDistribution(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("SUM\\(total_amount\\)").WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"vendor_id", "vendor_name", "spend"}).
			AddRow(int64(1), "", "130.00").
			AddRow(int64(2), "", "50.00"))
	mock.ExpectQuery("SELECT name FROM vendors").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Acme"))
	mock.ExpectQuery("SELECT name FROM vendors").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	svc := DashboardService{}
	series, err := svc.VendorSpendDistribution()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(series.Labels) != 2 || len(series.Data) != 2 {
		t.Fatalf("series should have 2 groups, got labels=%v data=%v", series.Labels, series.Data)
	}
	if series.Labels[0] != "Acme" || series.Labels[1] != "Unassigned" {
		t.Fatalf("label fallback wrong, got %v", series.Labels)
	}
	if series.Data[0] != 130 || series.Data[1] != 50 {
		t.Fatalf("sums wrong, got %v", series.Data)
	}
	if series.Currency != "SAR" {
		t.Fatalf("currency tag missing, got %q", series.Currency)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeliveryOutcomes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	due := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	early := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM purchase_orders po").WithArgs("RECEIVED", "CLOSED").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at", "needed_by"}).
			AddRow(early, due).
			AddRow(late, due).
			AddRow(late, nil))

	svc := DashboardService{}
	series, err := svc.DeliveryOutcomes()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if series.Labels[0] != "On-Time" || series.Labels[1] != "Delayed" {
		t.Fatalf("labels wrong, got %v", series.Labels)
	}
	if series.Data[0] != 1 || series.Data[1] != 1 {
		t.Fatalf("counts wrong, got %v", series.Data)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
