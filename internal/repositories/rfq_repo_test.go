package repositories

import (
	"errors"
	"testing"

	"backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDeleteWithAuditMissingRFQ(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_id, code FROM rfqs").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "code"}))
	mock.ExpectRollback()

	err = RFQRepository{DB: db}.DeleteWithAudit(99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	// No DELETE and no audit insert may run for a missing row.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteWithAuditSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_id, code FROM rfqs").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "code"}).AddRow(int64(7), "RFQ-2024-010"))
	mock.ExpectExec("DELETE FROM rfqs").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO request_activities").
		WithArgs(int64(7), "rfq_deleted", "RFQ RFQ-2024-010 deleted").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := (RFQRepository{DB: db}).DeleteWithAudit(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteWithAuditConcurrentDeleteIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_id, code FROM rfqs").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "code"}).AddRow(int64(7), "RFQ-2024-010"))
	// Row vanished between lookup and delete.
	mock.ExpectExec("DELETE FROM rfqs").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = RFQRepository{DB: db}.DeleteWithAudit(5)
	if !domain.IsNotFound(err) {
		t.Fatalf("concurrent delete should surface as NotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteWithAuditRollsBackWhenAuditFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_id, code FROM rfqs").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "code"}).AddRow(int64(7), "RFQ-2024-010"))
	mock.ExpectExec("DELETE FROM rfqs").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO request_activities").
		WithArgs(int64(7), "rfq_deleted", "RFQ RFQ-2024-010 deleted").
		WillReturnError(errors.New("audit table unavailable"))
	mock.ExpectRollback()

	err = RFQRepository{DB: db}.DeleteWithAudit(5)
	if err == nil {
		t.Fatalf("expected error when audit insert fails")
	}
	if domain.IsNotFound(err) {
		t.Fatalf("audit failure must not masquerade as NotFound, got %v", err)
	}

	// Rollback expectation proves the deletion itself is undone.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
