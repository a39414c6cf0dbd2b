package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/pagination"
)

type RFQRepository struct {
	DB *sql.DB
}

func (r RFQRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var rfqSortColumns = map[string]string{
	"code":       "code",
	"status":     "status",
	"due_date":   "due_date",
	"created_at": "created_at",
}

// List returns one page of RFQs matching the descriptor.
func (r RFQRepository) List(p pagination.Params) (pagination.Page[models.RFQ], error) {
	db := r.db()

	where := ""
	args := []any{}
	if p.HasSearch() {
		where = " WHERE code LIKE ?"
		args = append(args, intdb.LikePattern(p.Search))
	}

	var total int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM rfqs`+where, args...).Scan(&total); err != nil {
		return pagination.EmptyPage[models.RFQ](p), err
	}

	order := " ORDER BY id DESC"
	if p.HasSort() {
		if col, ok := rfqSortColumns[p.SortField]; ok {
			order = fmt.Sprintf(" ORDER BY %s %s, id DESC", col, sortDirection(p.SortDirection))
		}
	}

	query := `
		SELECT id, COALESCE(request_id,0), code, status, COALESCE(vendor_count,0),
		       CASE WHEN due_date IS NULL THEN '' ELSE DATE_FORMAT(due_date, '%Y-%m-%d') END,
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM rfqs` + where + order + ` LIMIT ? OFFSET ?`
	args = append(args, p.PageSize, p.Offset())

	rows, err := db.Query(query, args...)
	if err != nil {
		return pagination.EmptyPage[models.RFQ](p), err
	}
	defer rows.Close()

	list := []models.RFQ{}
	for rows.Next() {
		var q models.RFQ
		if err := rows.Scan(&q.ID, &q.RequestID, &q.Code, &q.Status, &q.VendorCount, &q.DueDate, &q.CreatedAt); err != nil {
			return pagination.EmptyPage[models.RFQ](p), err
		}
		list = append(list, q)
	}
	if err := rows.Err(); err != nil {
		return pagination.EmptyPage[models.RFQ](p), err
	}

	return pagination.NewPage(list, total, p), nil
}

// DeleteWithAudit removes an RFQ and appends the deletion to the parent
// request's activity log inside one transaction. The delete and the audit
// insert commit or roll back together. A row vanishing between lookup and
// delete surfaces as the same NotFoundError as a missing row.
func (r RFQRepository) DeleteWithAudit(id int64) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var (
		requestID int64
		code      string
	)
	err = tx.QueryRow(`SELECT request_id, code FROM rfqs WHERE id = ?`, id).Scan(&requestID, &code)
	if err == sql.ErrNoRows {
		return domain.NotFoundError{Resource: "RFQ"}
	}
	if err != nil {
		return err
	}

	res, err := tx.Exec(`DELETE FROM rfqs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "RFQ"}
	}

	detail := fmt.Sprintf("RFQ %s deleted", code)
	if _, err := tx.Exec(`
		INSERT INTO request_activities (request_id, action, detail, created_at)
		VALUES (?, ?, ?, NOW())`, requestID, "rfq_deleted", detail); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
