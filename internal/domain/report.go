package domain

import "github.com/shopspring/decimal"

const DefaultLowStockThreshold = 10

type LocationTotal struct {
	Location   string          `json:"location" db:"location"`
	TotalQty   int64           `json:"total_qty" db:"total_qty"`
	TotalValue decimal.Decimal `json:"total_value" db:"total_value"`
}

type LowStockRow struct {
	SKU      string `json:"sku" db:"sku"`
	Name     string `json:"name" db:"name"`
	Location string `json:"location" db:"location"`
	Qty      int    `json:"qty" db:"qty"`
}

type ItemValue struct {
	SKU   string          `json:"sku" db:"sku"`
	Name  string          `json:"name" db:"name"`
	Value decimal.Decimal `json:"value" db:"value"`
}

type Summary struct {
	Totals   []LocationTotal
	LowStock []LowStockRow
	TopItems []ItemValue
}
