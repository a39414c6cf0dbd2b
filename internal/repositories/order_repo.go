package repositories

import (
	"database/sql"
	"fmt"

	intconfig "backend/internal/config"
	intdb "backend/internal/db"
	"backend/internal/domain/models"
	"backend/internal/pagination"
	"backend/internal/utils"
)

// SpendGroup is one grouped-sum bucket over purchase orders. Name carries the
// denormalized label from the fact rows and may be empty; the caller resolves
// the final display label.
type SpendGroup struct {
	Key   int64
	Name  string
	Total float64
}

// DeliveryRow carries the two timestamps needed to classify a delivered order
// as on-time or delayed. NeededBy travels through order -> rfq -> request and
// is null whenever that chain is broken.
type DeliveryRow struct {
	CompletedAt sql.NullTime
	NeededBy    sql.NullTime
}

// OrderDoc is the projection used for the printable order document.
type OrderDoc struct {
	ID           int64
	Code         string
	Status       string
	VendorName   string
	MaterialName string
	Quantity     float64
	TotalAmount  float64
	Currency     string
	CreatedAt    string
}

type OrderRepository struct {
	DB *sql.DB
}

func (r OrderRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// orderSortColumns whitelists sortable fields; unknown fields fall back to the
// default ordering instead of reaching the store.
var orderSortColumns = map[string]string{
	"code":         "code",
	"status":       "status",
	"total_amount": "total_amount",
	"created_at":   "created_at",
}

// List returns one page of purchase orders matching the descriptor.
func (r OrderRepository) List(p pagination.Params) (pagination.Page[models.PurchaseOrder], error) {
	db := r.db()

	where := ""
	args := []any{}
	if p.HasSearch() {
		where = " WHERE (code LIKE ? OR vendor_name LIKE ?)"
		like := intdb.LikePattern(p.Search)
		args = append(args, like, like)
	}

	var total int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM purchase_orders`+where, args...).Scan(&total); err != nil {
		return pagination.EmptyPage[models.PurchaseOrder](p), err
	}

	order := " ORDER BY id DESC"
	if p.HasSort() {
		if col, ok := orderSortColumns[p.SortField]; ok {
			order = fmt.Sprintf(" ORDER BY %s %s, id DESC", col, sortDirection(p.SortDirection))
		}
	}

	query := `
		SELECT id, COALESCE(rfq_id,0), code, status,
		       COALESCE(vendor_id,0), COALESCE(vendor_name,''),
		       COALESCE(material_id,0), COALESCE(material_name,''),
		       COALESCE(quantity,0), COALESCE(total_amount,0), COALESCE(currency,'SAR'),
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'),
		       DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')
		FROM purchase_orders` + where + order + ` LIMIT ? OFFSET ?`
	args = append(args, p.PageSize, p.Offset())

	rows, err := db.Query(query, args...)
	if err != nil {
		return pagination.EmptyPage[models.PurchaseOrder](p), err
	}
	defer rows.Close()

	list := []models.PurchaseOrder{}
	for rows.Next() {
		var o models.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.RFQID, &o.Code, &o.Status,
			&o.VendorID, &o.VendorName,
			&o.MaterialID, &o.MaterialName,
			&o.Quantity, &o.TotalAmount, &o.Currency,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return pagination.EmptyPage[models.PurchaseOrder](p), err
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return pagination.EmptyPage[models.PurchaseOrder](p), err
	}

	return pagination.NewPage(list, total, p), nil
}

// SpendByMaterial sums order totals per material, largest first, capped at
// the top N groups.
func (r OrderRepository) SpendByMaterial(limit int) ([]SpendGroup, error) {
	return r.spendGroups("material_id", "material_name", limit)
}

// SpendByVendor sums order totals per vendor, largest first.
func (r OrderRepository) SpendByVendor(limit int) ([]SpendGroup, error) {
	return r.spendGroups("vendor_id", "vendor_name", limit)
}

func (r OrderRepository) spendGroups(keyCol, nameCol string, limit int) ([]SpendGroup, error) {
	if limit < 1 {
		limit = 10
	}

	query := fmt.Sprintf(`
		SELECT COALESCE(%s,0), COALESCE(%s,''), SUM(total_amount) AS spend
		FROM purchase_orders
		GROUP BY %s, %s
		ORDER BY spend DESC
		LIMIT ?`, keyCol, nameCol, keyCol, nameCol)

	rows, err := r.db().Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SpendGroup{}
	for rows.Next() {
		var g SpendGroup
		var sum sql.NullString
		if err := rows.Scan(&g.Key, &g.Name, &sum); err != nil {
			return nil, err
		}
		// DECIMAL sums arrive as strings; NULL (empty group) becomes 0.
		g.Total = utils.DecimalToFloat(sum)
		out = append(out, g)
	}
	return out, rows.Err()
}

// DeliveryRows fetches delivered orders with the due date of the originating
// request. Classification happens in memory because the comparison spans the
// order -> rfq -> request chain.
func (r OrderRepository) DeliveryRows() ([]DeliveryRow, error) {
	rows, err := r.db().Query(`
		SELECT po.updated_at, req.needed_by
		FROM purchase_orders po
		LEFT JOIN rfqs q ON q.id = po.rfq_id
		LEFT JOIN requests req ON req.id = q.request_id
		WHERE po.status IN (?, ?)`,
		models.OrderStatusReceived, models.OrderStatusClosed,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DeliveryRow{}
	for rows.Next() {
		var d DeliveryRow
		if err := rows.Scan(&d.CompletedAt, &d.NeededBy); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetDoc loads the projection for the printable order document.
func (r OrderRepository) GetDoc(id int64) (OrderDoc, error) {
	var d OrderDoc
	err := r.db().QueryRow(`
		SELECT id, code, status,
		       COALESCE(vendor_name,''), COALESCE(material_name,''),
		       COALESCE(quantity,0), COALESCE(total_amount,0), COALESCE(currency,'SAR'),
		       DATE_FORMAT(created_at, '%Y-%m-%d')
		FROM purchase_orders
		WHERE id = ?`, id).Scan(
		&d.ID, &d.Code, &d.Status,
		&d.VendorName, &d.MaterialName,
		&d.Quantity, &d.TotalAmount, &d.Currency,
		&d.CreatedAt,
	)
	return d, err
}

func sortDirection(dir string) string {
	if dir == pagination.DirectionDesc {
		return "DESC"
	}
	return "ASC"
}
