package dao

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const inventoryListLimit = 500

type InventoryRow struct {
	ID          uint            `db:"id"`
	SKU         string          `db:"sku"`
	Item        string          `db:"item"`
	Category    string          `db:"category"`
	Location    string          `db:"location"`
	Qty         int             `db:"qty"`
	CostPerUnit decimal.Decimal `db:"cost_per_unit"`
	Value       decimal.Decimal `db:"value"`
}

type LocationTotalRow struct {
	Location   string          `db:"location"`
	TotalQty   int64           `db:"total_qty"`
	TotalValue decimal.Decimal `db:"total_value"`
}

type LowStockRow struct {
	SKU      string `db:"sku"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Qty      int    `db:"qty"`
}

type ItemValueRow struct {
	SKU   string          `db:"sku"`
	Name  string          `db:"name"`
	Value decimal.Decimal `db:"value"`
}

// ReportDAO holds the read-only joins and aggregations. It shares the gorm
// connection pool through sqlx.
type ReportDAO struct {
	db *sqlx.DB
}

func NewReportDAO(db *sqlx.DB) *ReportDAO {
	return &ReportDAO{
		db: db,
	}
}

const inventoryQuery = `
	SELECT
		inv.id,
		it.sku,
		it.name AS item,
		COALESCE(c.name, '') AS category,
		l.name AS location,
		COALESCE(inv.qty, 0) AS qty,
		COALESCE(inv.cost_per_unit, 0) AS cost_per_unit,
		COALESCE(inv.qty, 0) * COALESCE(inv.cost_per_unit, 0) AS value
	FROM inventory inv
	JOIN items it ON it.id = inv.item_id
	LEFT JOIN categories c ON c.id = it.category_id
	JOIN locations l ON l.id = inv.location_id
	%s
	ORDER BY it.sku, l.name
	LIMIT %d`

func (d *ReportDAO) ListInventory(ctx context.Context, locationID *uint) ([]InventoryRow, error) {
	where := ""
	args := []interface{}{}
	if locationID != nil {
		where = "WHERE l.id = $1"
		args = append(args, *locationID)
	}

	rows := []InventoryRow{}
	if err := d.db.SelectContext(ctx, &rows, fmt.Sprintf(inventoryQuery, where, inventoryListLimit), args...); err != nil {
		return nil, fmt.Errorf("d.db.SelectContext -> %w", err)
	}

	return rows, nil
}

func (d *ReportDAO) TotalsByLocation(ctx context.Context) ([]LocationTotalRow, error) {
	const q = `
		SELECT
			l.name AS location,
			COALESCE(SUM(inv.qty), 0) AS total_qty,
			ROUND(COALESCE(SUM(inv.qty * inv.cost_per_unit), 0)::numeric, 2) AS total_value
		FROM inventory inv
		JOIN locations l ON l.id = inv.location_id
		GROUP BY l.name
		ORDER BY l.name`

	rows := []LocationTotalRow{}
	if err := d.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("d.db.SelectContext -> %w", err)
	}

	return rows, nil
}

func (d *ReportDAO) LowStock(ctx context.Context, threshold, limit int) ([]LowStockRow, error) {
	const q = `
		SELECT it.sku, it.name, l.name AS location, inv.qty
		FROM inventory inv
		JOIN items it ON it.id = inv.item_id
		JOIN locations l ON l.id = inv.location_id
		WHERE inv.qty < $1
		ORDER BY inv.qty ASC, it.sku
		LIMIT $2`

	rows := []LowStockRow{}
	if err := d.db.SelectContext(ctx, &rows, q, threshold, limit); err != nil {
		return nil, fmt.Errorf("d.db.SelectContext -> %w", err)
	}

	return rows, nil
}

func (d *ReportDAO) TopItemsByValue(ctx context.Context, limit int) ([]ItemValueRow, error) {
	const q = `
		SELECT
			it.sku,
			it.name,
			ROUND(COALESCE(SUM(inv.qty * inv.cost_per_unit), 0)::numeric, 2) AS value
		FROM inventory inv
		JOIN items it ON it.id = inv.item_id
		GROUP BY it.sku, it.name
		ORDER BY value DESC, it.sku
		LIMIT $1`

	rows := []ItemValueRow{}
	if err := d.db.SelectContext(ctx, &rows, q, limit); err != nil {
		return nil, fmt.Errorf("d.db.SelectContext -> %w", err)
	}

	return rows, nil
}
