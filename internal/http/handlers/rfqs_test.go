package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "backend/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDeleteRFQNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_id, code FROM rfqs").WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "code"}))
	mock.ExpectRollback()

	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/rfqs/42", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status got %d want 404, body %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not parsable: %v", err)
	}
	if body["message"] != "RFQ not found" {
		t.Fatalf("message got %v want RFQ not found", body["message"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteRFQMalformedIDIsNotFound(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/rfqs/not-a-number", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status got %d want 404", w.Code)
	}
}

func TestDeleteRFQSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT request_id, code FROM rfqs").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"request_id", "code"}).AddRow(int64(7), "RFQ-2024-010"))
	mock.ExpectExec("DELETE FROM rfqs").WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO request_activities").
		WithArgs(int64(7), "rfq_deleted", "RFQ RFQ-2024-010 deleted").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/rfqs/5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status got %d want 200, body %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not parsable: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("success envelope wrong: %v", body)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteRFQStoreFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectBegin().WillReturnError(sqlmock.ErrCancelled)

	r := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/rfqs/5", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status got %d want 500", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not parsable: %v", err)
	}
	if body["message"] != "Internal server error" {
		t.Fatalf("message got %v want Internal server error", body["message"])
	}
}
