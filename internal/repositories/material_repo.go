package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"
	"backend/internal/pagination"
)

type MaterialRepository struct {
	DB *sql.DB
}

func (r MaterialRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var materialSortColumns = map[string]string{
	"code":     "code",
	"name":     "name",
	"category": "category",
}

// List returns one page of catalog materials matching the descriptor.
func (r MaterialRepository) List(p pagination.Params) (pagination.Page[models.Material], error) {
	db := r.db()

	where := ""
	args := []any{}
	if p.HasSearch() {
		where = " WHERE (code LIKE ? OR name LIKE ?)"
		like := intdb.LikePattern(p.Search)
		args = append(args, like, like)
	}

	var total int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM materials`+where, args...).Scan(&total); err != nil {
		return pagination.EmptyPage[models.Material](p), err
	}

	order := " ORDER BY id DESC"
	if p.HasSort() {
		if col, ok := materialSortColumns[p.SortField]; ok {
			order = fmt.Sprintf(" ORDER BY %s %s, id DESC", col, sortDirection(p.SortDirection))
		}
	}

	query := `
		SELECT id, code, name, COALESCE(unit,''), COALESCE(category,'')
		FROM materials` + where + order + ` LIMIT ? OFFSET ?`
	args = append(args, p.PageSize, p.Offset())

	rows, err := db.Query(query, args...)
	if err != nil {
		return pagination.EmptyPage[models.Material](p), err
	}
	defer rows.Close()

	list := []models.Material{}
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Unit, &m.Category); err != nil {
			return pagination.EmptyPage[models.Material](p), err
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return pagination.EmptyPage[models.Material](p), err
	}

	return pagination.NewPage(list, total, p), nil
}

// NameByID resolves a material display name; "" when the row or name is gone.
func (r MaterialRepository) NameByID(id int64) (string, error) {
	if id == 0 {
		return "", nil
	}
	var name sql.NullString
	err := r.db().QueryRow(`SELECT name FROM materials WHERE id = ?`, id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !name.Valid {
		return "", nil
	}
	return name.String, nil
}
