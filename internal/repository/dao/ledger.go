package dao

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBalanceNotFound    = errors.New("inventory balance not found")
	ErrQuantityOutOfRange = errors.New("quantity out of range")
)

const maxTxAttempts = 3

type Inventory struct {
	ID          uint            `gorm:"primaryKey"`
	ItemID      uint            `gorm:"not null;uniqueIndex:idx_inventory_item_location,priority:1"`
	Item        Item            `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`
	LocationID  uint            `gorm:"not null;uniqueIndex:idx_inventory_item_location,priority:2;index"`
	Location    Location        `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
	Qty         int             `gorm:"not null;default:0;check:chk_inventory_qty_non_negative,qty >= 0"`
	CostPerUnit decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
}

func (Inventory) TableName() string {
	return "inventory"
}

type Movement struct {
	ID             uint      `gorm:"primaryKey"`
	ItemID         uint      `gorm:"not null;index"`
	Item           Item      `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`
	FromLocationID *uint     `gorm:"index"`
	FromLocation   *Location `gorm:"foreignKey:FromLocationID;constraint:OnDelete:RESTRICT"`
	ToLocationID   *uint     `gorm:"index"`
	ToLocation     *Location `gorm:"foreignKey:ToLocationID;constraint:OnDelete:RESTRICT"`
	Qty            int       `gorm:"not null;check:chk_movements_qty_positive,qty > 0"`
	Reason         string    `gorm:"size:32;not null;default:move"`
	CreatedAt      time.Time `gorm:"not null;index"`
	UserID         *uint     `gorm:"index"`
	User           *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// ApplyFunc decides a movement against locked balances and mutates their Qty.
// src is nil when the movement has no source or nothing is stocked there. dst
// is non-nil whenever the movement has a destination.
type ApplyFunc func(src, dst *Inventory) error

type MovementFilter struct {
	ItemID     *uint
	LocationID *uint
	Limit      int
}

type LedgerDAO struct {
	db *gorm.DB
}

func NewLedgerDAO(db *gorm.DB) *LedgerDAO {
	return &LedgerDAO{
		db: db,
	}
}

// ApplyMovement runs apply inside one transaction with every touched balance
// row locked, then persists the balances and appends the movement. Nothing is
// written when apply fails.
func (d *LedgerDAO) ApplyMovement(ctx context.Context, movement Movement, apply ApplyFunc) (Movement, *Inventory, *Inventory, error) {
	var (
		stored   Movement
		src, dst *Inventory
	)

	err := withRetry(ctx, func() error {
		stored, src, dst = movement, nil, nil

		return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := checkReferences(tx, movement); err != nil {
				return err
			}

			if movement.ToLocationID != nil {
				row := Inventory{ItemID: movement.ItemID, LocationID: *movement.ToLocationID, CostPerUnit: decimal.Zero}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "item_id"}, {Name: "location_id"}},
					DoNothing: true,
				}).Omit(clause.Associations).Create(&row).Error; err != nil {
					return fmt.Errorf("create destination balance -> %w", err)
				}
			}

			locked, err := lockBalances(tx, movement.ItemID, movement.FromLocationID, movement.ToLocationID)
			if err != nil {
				return err
			}
			if movement.FromLocationID != nil {
				src = locked[*movement.FromLocationID]
			}
			if movement.ToLocationID != nil {
				dst = locked[*movement.ToLocationID]
			}

			if err = apply(src, dst); err != nil {
				return err
			}

			for _, b := range []*Inventory{src, dst} {
				if b == nil {
					continue
				}
				if err = tx.Model(&Inventory{}).Where("id = ?", b.ID).Update("qty", b.Qty).Error; err != nil {
					return fmt.Errorf("update balance %d -> %w", b.ID, err)
				}
			}

			stored.CreatedAt = time.Now().UTC()
			if err = tx.Omit(clause.Associations).Create(&stored).Error; err != nil {
				return fmt.Errorf("insert movement -> %w", err)
			}

			return nil
		})
	})
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return Movement{}, nil, nil, ErrLocationNotFound
		case isCheckViolation(err):
			return Movement{}, nil, nil, fmt.Errorf("%w: %w", ErrQuantityOutOfRange, err)
		}

		return Movement{}, nil, nil, err
	}

	return stored, src, dst, nil
}

func checkReferences(tx *gorm.DB, m Movement) error {
	var n int64
	if err := tx.Model(&Item{}).Where("id = ?", m.ItemID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", m.ItemID, ErrItemNotFound)
	}

	for _, id := range []*uint{m.FromLocationID, m.ToLocationID} {
		if id == nil {
			continue
		}
		if err := tx.Model(&Location{}).Where("id = ?", *id).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("location %d: %w", *id, ErrLocationNotFound)
		}
	}

	return nil
}

// lockBalances takes FOR UPDATE locks in ascending location order so that two
// opposite transfers of the same item cannot deadlock each other.
func lockBalances(tx *gorm.DB, itemID uint, locationIDs ...*uint) (map[uint]*Inventory, error) {
	ids := make([]uint, 0, len(locationIDs))
	for _, id := range locationIDs {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	locked := make(map[uint]*Inventory, len(ids))
	for _, id := range ids {
		var row Inventory
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("item_id = ? AND location_id = ?", itemID, id).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("lock balance item=%d location=%d -> %w", itemID, id, err)
		}
		locked[id] = &row
	}

	return locked, nil
}

func (d *LedgerDAO) UpdateCostPerUnit(ctx context.Context, itemID, locationID uint, cost decimal.Decimal) (Inventory, error) {
	var row Inventory

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("item_id = ? AND location_id = ?", itemID, locationID).
			Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBalanceNotFound
		}
		if err != nil {
			return err
		}

		row.CostPerUnit = cost
		return tx.Model(&Inventory{}).Where("id = ?", row.ID).Update("cost_per_unit", cost).Error
	})
	if err != nil {
		return Inventory{}, err
	}

	return row, nil
}

func (d *LedgerDAO) FindBalance(ctx context.Context, itemID, locationID uint) (Inventory, error) {
	var row Inventory
	err := d.db.WithContext(ctx).Where("item_id = ? AND location_id = ?", itemID, locationID).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Inventory{}, ErrBalanceNotFound
		}

		return Inventory{}, err
	}

	return row, nil
}

func (d *LedgerDAO) ListMovements(ctx context.Context, f MovementFilter) ([]Movement, error) {
	q := d.db.WithContext(ctx).Model(&Movement{})
	if f.ItemID != nil {
		q = q.Where("item_id = ?", *f.ItemID)
	}
	if f.LocationID != nil {
		q = q.Where("from_location_id = ? OR to_location_id = ?", *f.LocationID, *f.LocationID)
	}

	var movements []Movement
	if err := q.Order("created_at DESC, id DESC").Limit(f.Limit).Find(&movements).Error; err != nil {
		return nil, err
	}

	return movements, nil
}

// withRetry reruns fn when postgres reports a conflict that a fresh
// transaction may not hit. Business rule failures are returned as is.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		if err = fn(); err == nil || !isTransient(err) {
			return err
		}
		if attempt == maxTxAttempts {
			break
		}

		zap.L().Warn("retrying ledger transaction", zap.Int("attempt", attempt), zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt*25) * time.Millisecond):
		}
	}

	return err
}

// isTransient only admits errors raised before COMMIT succeeded. A broken
// connection may hide a commit that landed, so it is never retried.
func isTransient(err error) bool {
	code := pgErrCode(err)

	return code == pgerrcode.SerializationFailure ||
		code == pgerrcode.DeadlockDetected
}
