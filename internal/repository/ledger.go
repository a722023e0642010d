package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/repository/dao"
)

var (
	ErrBalanceNotFound    = dao.ErrBalanceNotFound
	ErrQuantityOutOfRange = dao.ErrQuantityOutOfRange
)

type LedgerDAO interface {
	ApplyMovement(ctx context.Context, movement dao.Movement, apply dao.ApplyFunc) (dao.Movement, *dao.Inventory, *dao.Inventory, error)
	UpdateCostPerUnit(ctx context.Context, itemID, locationID uint, cost decimal.Decimal) (dao.Inventory, error)
	ListMovements(ctx context.Context, f dao.MovementFilter) ([]dao.Movement, error)
}

type LedgerRepository struct {
	dao LedgerDAO
}

func NewLedgerRepository(dao LedgerDAO) *LedgerRepository {
	return &LedgerRepository{
		dao: dao,
	}
}

// ApplyMovement decides m with domain rules against the locked balance rows
// and commits the outcome.
func (r *LedgerRepository) ApplyMovement(ctx context.Context, m domain.Movement) (domain.MovementResult, error) {
	apply := func(src, dst *dao.Inventory) error {
		from, to := balanceToDomainPtr(src), balanceToDomainPtr(dst)
		if err := m.Apply(from, to); err != nil {
			return err
		}
		if src != nil {
			src.Qty = from.Qty
		}
		if dst != nil {
			dst.Qty = to.Qty
		}

		return nil
	}

	stored, src, dst, err := r.dao.ApplyMovement(ctx, dao.Movement{
		ItemID:         m.ItemID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Qty:            m.Qty,
		Reason:         m.Reason,
		UserID:         m.UserID,
	}, apply)
	if err != nil {
		return domain.MovementResult{}, fmt.Errorf("r.dao.ApplyMovement -> %w", err)
	}

	return domain.MovementResult{
		Movement: movementToDomain(stored),
		From:     balanceToDomainPtr(src),
		To:       balanceToDomainPtr(dst),
	}, nil
}

func (r *LedgerRepository) SetCostPerUnit(ctx context.Context, itemID, locationID uint, cost decimal.Decimal) (domain.Balance, error) {
	updated, err := r.dao.UpdateCostPerUnit(ctx, itemID, locationID, cost)
	if err != nil {
		return domain.Balance{}, fmt.Errorf("r.dao.UpdateCostPerUnit -> %w", err)
	}

	return balanceToDomain(updated), nil
}

func (r *LedgerRepository) ListMovements(ctx context.Context, itemID, locationID *uint, limit int) ([]domain.Movement, error) {
	found, err := r.dao.ListMovements(ctx, dao.MovementFilter{
		ItemID:     itemID,
		LocationID: locationID,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListMovements -> %w", err)
	}

	movements := make([]domain.Movement, 0, len(found))
	for _, m := range found {
		movements = append(movements, movementToDomain(m))
	}

	return movements, nil
}

func balanceToDomain(b dao.Inventory) domain.Balance {
	return domain.Balance{
		ID:          b.ID,
		ItemID:      b.ItemID,
		LocationID:  b.LocationID,
		Qty:         b.Qty,
		CostPerUnit: b.CostPerUnit,
	}
}

func balanceToDomainPtr(b *dao.Inventory) *domain.Balance {
	if b == nil {
		return nil
	}
	out := balanceToDomain(*b)

	return &out
}

func movementToDomain(m dao.Movement) domain.Movement {
	return domain.Movement{
		ID:             m.ID,
		ItemID:         m.ItemID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Qty:            m.Qty,
		Reason:         m.Reason,
		CreatedAt:      m.CreatedAt,
		UserID:         m.UserID,
	}
}
