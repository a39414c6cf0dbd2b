package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"
	"backend/internal/pagination"
)

type VendorRepository struct {
	DB *sql.DB
}

func (r VendorRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var vendorSortColumns = map[string]string{
	"code":       "code",
	"name":       "name",
	"city":       "city",
	"created_at": "created_at",
}

// List returns one page of vendors matching the descriptor.
func (r VendorRepository) List(p pagination.Params) (pagination.Page[models.Vendor], error) {
	db := r.db()

	where := ""
	args := []any{}
	if p.HasSearch() {
		where = " WHERE (code LIKE ? OR name LIKE ? OR city LIKE ?)"
		like := intdb.LikePattern(p.Search)
		args = append(args, like, like, like)
	}

	var total int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM vendors`+where, args...).Scan(&total); err != nil {
		return pagination.EmptyPage[models.Vendor](p), err
	}

	order := " ORDER BY id DESC"
	if p.HasSort() {
		if col, ok := vendorSortColumns[p.SortField]; ok {
			order = fmt.Sprintf(" ORDER BY %s %s, id DESC", col, sortDirection(p.SortDirection))
		}
	}

	query := `
		SELECT id, code, name, COALESCE(email,''), COALESCE(phone,''), COALESCE(city,''),
		       COALESCE(status,'active'),
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM vendors` + where + order + ` LIMIT ? OFFSET ?`
	args = append(args, p.PageSize, p.Offset())

	rows, err := db.Query(query, args...)
	if err != nil {
		return pagination.EmptyPage[models.Vendor](p), err
	}
	defer rows.Close()

	list := []models.Vendor{}
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(&v.ID, &v.Code, &v.Name, &v.Email, &v.Phone, &v.City, &v.Status, &v.CreatedAt); err != nil {
			return pagination.EmptyPage[models.Vendor](p), err
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return pagination.EmptyPage[models.Vendor](p), err
	}

	return pagination.NewPage(list, total, p), nil
}

// NameByID resolves a vendor display name. Missing rows and empty names both
// return "", leaving the fallback label to the caller.
func (r VendorRepository) NameByID(id int64) (string, error) {
	if id == 0 {
		return "", nil
	}
	var name sql.NullString
	err := r.db().QueryRow(`SELECT name FROM vendors WHERE id = ?`, id).Scan(&name)
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

// Create inserts a vendor and returns the new id.
func (r VendorRepository) Create(v models.Vendor) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vendors (code, name, email, phone, city, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, COALESCE(NULLIF(?,''),'active'), NOW(), NOW())`,
		v.Code, v.Name, intdb.NullIfEmpty(v.Email), intdb.NullIfEmpty(v.Phone), intdb.NullIfEmpty(v.City), v.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites a vendor row; reports whether the row existed.
func (r VendorRepository) Update(id int64, v models.Vendor) (bool, error) {
	res, err := r.db().Exec(`
		UPDATE vendors
		SET code = ?, name = ?, email = ?, phone = ?, city = ?, status = COALESCE(NULLIF(?,''),'active'), updated_at = NOW()
		WHERE id = ?`,
		v.Code, v.Name, intdb.NullIfEmpty(v.Email), intdb.NullIfEmpty(v.Phone), intdb.NullIfEmpty(v.City), v.Status, id)
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

// Delete removes a vendor row; reports whether the row existed.
func (r VendorRepository) Delete(id int64) (bool, error) {
	res, err := r.db().Exec(`DELETE FROM vendors WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}
