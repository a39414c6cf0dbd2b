package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"
	"backend/internal/pagination"
)

type RequestRepository struct {
	DB *sql.DB
}

func (r RequestRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var requestSortColumns = map[string]string{
	"code":       "code",
	"status":     "status",
	"priority":   "priority",
	"created_at": "created_at",
}

// List returns one page of purchase requests matching the descriptor.
func (r RequestRepository) List(p pagination.Params) (pagination.Page[models.Request], error) {
	db := r.db()

	where := ""
	args := []any{}
	if p.HasSearch() {
		where = " WHERE (code LIKE ? OR title LIKE ?)"
		like := intdb.LikePattern(p.Search)
		args = append(args, like, like)
	}

	var total int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM requests`+where, args...).Scan(&total); err != nil {
		return pagination.EmptyPage[models.Request](p), err
	}

	order := " ORDER BY id DESC"
	if p.HasSort() {
		if col, ok := requestSortColumns[p.SortField]; ok {
			order = fmt.Sprintf(" ORDER BY %s %s, id DESC", col, sortDirection(p.SortDirection))
		}
	}

	query := `
		SELECT id, code, COALESCE(title,''), status, COALESCE(priority,''),
		       CASE WHEN needed_by IS NULL THEN '' ELSE DATE_FORMAT(needed_by, '%Y-%m-%d') END,
		       COALESCE(warehouse_id,0),
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM requests` + where + order + ` LIMIT ? OFFSET ?`
	args = append(args, p.PageSize, p.Offset())

	rows, err := db.Query(query, args...)
	if err != nil {
		return pagination.EmptyPage[models.Request](p), err
	}
	defer rows.Close()

	list := []models.Request{}
	for rows.Next() {
		var req models.Request
		if err := rows.Scan(&req.ID, &req.Code, &req.Title, &req.Status, &req.Priority, &req.NeededBy, &req.WarehouseID, &req.CreatedAt); err != nil {
			return pagination.EmptyPage[models.Request](p), err
		}
		list = append(list, req)
	}
	if err := rows.Err(); err != nil {
		return pagination.EmptyPage[models.Request](p), err
	}

	return pagination.NewPage(list, total, p), nil
}
