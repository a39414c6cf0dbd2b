package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"
	"backend/internal/pagination"
)

type WarehouseRepository struct {
	DB *sql.DB
}

func (r WarehouseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var warehouseSortColumns = map[string]string{
	"code": "code",
	"name": "name",
}

// List returns one page of warehouses matching the descriptor.
func (r WarehouseRepository) List(p pagination.Params) (pagination.Page[models.Warehouse], error) {
	db := r.db()

	where := ""
	args := []any{}
	if p.HasSearch() {
		where = " WHERE (code LIKE ? OR name LIKE ? OR location LIKE ?)"
		like := intdb.LikePattern(p.Search)
		args = append(args, like, like, like)
	}

	var total int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM warehouses`+where, args...).Scan(&total); err != nil {
		return pagination.EmptyPage[models.Warehouse](p), err
	}

	order := " ORDER BY id DESC"
	if p.HasSort() {
		if col, ok := warehouseSortColumns[p.SortField]; ok {
			order = fmt.Sprintf(" ORDER BY %s %s, id DESC", col, sortDirection(p.SortDirection))
		}
	}

	query := `
		SELECT id, code, name, COALESCE(location,'')
		FROM warehouses` + where + order + ` LIMIT ? OFFSET ?`
	args = append(args, p.PageSize, p.Offset())

	rows, err := db.Query(query, args...)
	if err != nil {
		return pagination.EmptyPage[models.Warehouse](p), err
	}
	defer rows.Close()

	list := []models.Warehouse{}
	for rows.Next() {
		var w models.Warehouse
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.Location); err != nil {
			return pagination.EmptyPage[models.Warehouse](p), err
		}
		list = append(list, w)
	}
	if err := rows.Err(); err != nil {
		return pagination.EmptyPage[models.Warehouse](p), err
	}

	return pagination.NewPage(list, total, p), nil
}

// Create inserts a warehouse and returns the new id.
func (r WarehouseRepository) Create(w models.Warehouse) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO warehouses (code, name, location, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())`,
		w.Code, w.Name, intdb.NullIfEmpty(w.Location))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites a warehouse row; reports whether the row existed.
func (r WarehouseRepository) Update(id int64, w models.Warehouse) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE warehouses
		SET code = ?, name = ?, location = ?, updated_at = NOW()
		WHERE id = ?`,
		w.Code, w.Name, intdb.NullIfEmpty(w.Location), id)
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

// Delete removes a warehouse row; reports whether the row existed.
func (r WarehouseRepository) Delete(id int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM warehouses WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
