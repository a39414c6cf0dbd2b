package repositories

import (
	"net/url"
	"testing"

	"backend/internal/pagination"

	"github.com/DATA-DOG/go-sqlmock"
)

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "rfq_id", "code", "status",
		"vendor_id", "vendor_name", "material_id", "material_name",
		"quantity", "total_amount", "currency", "created_at", "updated_at",
	}).AddRow(int64(2), int64(1), "PO-2024-002", "RECEIVED",
		int64(3), "Acme", int64(4), "Steel Pipes",
		10.0, 1500.0, "SAR", "2024-01-02 09:00:00", "2024-01-10 09:00:00")
}

func TestOrderListEchoesDescriptor(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM purchase_orders").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(41)))
	mock.ExpectQuery("FROM purchase_orders ORDER BY id DESC LIMIT \\? OFFSET \\?").
		WithArgs(10, 30).
		WillReturnRows(orderRows())

	p := pagination.Parse(url.Values{"page": {"4"}})
	page, err := OrderRepository{DB: db}.List(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if page.Total != 41 || page.Page != 4 || page.PageSize != 10 {
		t.Fatalf("descriptor not echoed: total=%d page=%d pageSize=%d", page.Total, page.Page, page.PageSize)
	}
	if len(page.Rows) != 1 || page.Rows[0].Code != "PO-2024-002" {
		t.Fatalf("rows not scanned, got %+v", page.Rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderListSearchIsParameterized(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM purchase_orders WHERE").
		WithArgs("%PO-2024%", "%PO-2024%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery("FROM purchase_orders WHERE \\(code LIKE \\? OR vendor_name LIKE \\?\\)").
		WithArgs("%PO-2024%", "%PO-2024%", 10, 0).
		WillReturnRows(orderRows())

	p := pagination.Parse(url.Values{"search": {" PO-2024 "}})
	if _, err := (OrderRepository{DB: db}).List(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderListSortWhitelist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Whitelisted field is applied.
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM purchase_orders").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("ORDER BY total_amount DESC, id DESC").
		WithArgs(10, 0).
		WillReturnRows(orderRows())

	p := pagination.Parse(url.Values{"sort": {"total_amount:desc"}})
	if _, err := (OrderRepository{DB: db}).List(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Unknown field falls back to the default ordering.
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM purchase_orders").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery("ORDER BY id DESC LIMIT").
		WithArgs(10, 0).
		WillReturnRows(orderRows())

	p = pagination.Parse(url.Values{"sort": {"password_hash:asc"}})
	if _, err := (OrderRepository{DB: db}).List(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSpendGroupsNullSumBecomesZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SUM\\(total_amount\\)").WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"material_id", "material_name", "spend"}).
			AddRow(int64(1), "Cement", "250.50").
			AddRow(int64(2), "Rebar", nil))

	groups, err := OrderRepository{DB: db}.SpendByMaterial(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Total != 250.5 {
		t.Fatalf("decimal sum not parsed, got %v", groups[0].Total)
	}
	if groups[1].Total != 0 {
		t.Fatalf("null sum should be zero, got %v", groups[1].Total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
