package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
)

type ActivityRepository struct {
	DB *sql.DB
}

func (r ActivityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Recent returns the newest activity rows, each joined live to its parent
// request for the code/status/priority snapshot. Parent fields stay null when
// the parent row no longer exists; the activity row itself is always kept.
func (r ActivityRepository) Recent(limit int) ([]models.ActivityFeedItem, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := r.db().Query(`
		SELECT a.id, a.request_id, req.code, req.status, req.priority,
		       a.action, COALESCE(a.detail,''),
		       DATE_FORMAT(a.created_at, '%Y-%m-%d %H:%i:%s')
		FROM request_activities a
		LEFT JOIN requests req ON req.id = a.request_id
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ActivityFeedItem{}
	for rows.Next() {
		var item models.ActivityFeedItem
		var code, status, priority sql.NullString
		if err := rows.Scan(
			&item.ID, &item.RequestID, &code, &status, &priority,
			&item.Action, &item.Detail, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		if code.Valid {
			item.Code = &code.String
		}
		if status.Valid {
			item.Status = &status.String
		}
		if priority.Valid {
			item.Priority = &priority.String
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
