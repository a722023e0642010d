package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	ErrNoStockAtSource   = errors.New("no stock at source")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNegativeCost      = errors.New("cost per unit must not be negative")
	ErrBalanceOverflow   = errors.New("balance would exceed the maximum quantity")
)

// Balance is the quantity of one item held at one location.
type Balance struct {
	ID          uint            `json:"id"`
	ItemID      uint            `json:"item_id"`
	LocationID  uint            `json:"location_id"`
	Qty         int             `json:"qty"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

func NewBalance(itemID, locationID uint) Balance {
	return Balance{
		ItemID:      itemID,
		LocationID:  locationID,
		CostPerUnit: decimal.Zero,
	}
}

// CanReceive reports whether qty can be added without overflowing Qty.
func (b Balance) CanReceive(qty int) bool {
	return qty >= 0 && b.Qty <= math.MaxInt-qty
}

func (b *Balance) Receive(qty int) {
	b.Qty += qty
}

func (b *Balance) Issue(qty int) error {
	if b.Qty < qty {
		return fmt.Errorf("item %d at location %d has %d, requested %d: %w",
			b.ItemID, b.LocationID, b.Qty, qty, ErrInsufficientStock)
	}
	b.Qty -= qty

	return nil
}

func (b Balance) Value() decimal.Decimal {
	return b.CostPerUnit.Mul(decimal.NewFromInt(int64(b.Qty)))
}

// InventoryRow is a balance joined with its item, category and location names.
type InventoryRow struct {
	ID          uint            `json:"id" db:"id"`
	SKU         string          `json:"sku" db:"sku"`
	Item        string          `json:"item" db:"item"`
	Category    string          `json:"category" db:"category"`
	Location    string          `json:"location" db:"location"`
	Qty         int             `json:"qty" db:"qty"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit" db:"cost_per_unit"`
	Value       decimal.Decimal `json:"value" db:"value"`
}
