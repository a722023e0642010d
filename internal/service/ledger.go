package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/repository"
)

const (
	DefaultMovementLimit = 100
	MaxMovementLimit     = 500
)

var (
	ErrBalanceNotFound    = repository.ErrBalanceNotFound
	ErrQuantityOutOfRange = repository.ErrQuantityOutOfRange
)

type LedgerRepository interface {
	ApplyMovement(ctx context.Context, m domain.Movement) (domain.MovementResult, error)
	SetCostPerUnit(ctx context.Context, itemID, locationID uint, cost decimal.Decimal) (domain.Balance, error)
	ListMovements(ctx context.Context, itemID, locationID *uint, limit int) ([]domain.Movement, error)
}

type LedgerService struct {
	repo LedgerRepository
}

func NewLedgerService(repo LedgerRepository) *LedgerService {
	return &LedgerService{
		repo: repo,
	}
}

// ApplyMovement records m and updates the balances it touches. Either all of
// it takes effect or none of it does.
func (s *LedgerService) ApplyMovement(ctx context.Context, m domain.Movement) (domain.MovementResult, error) {
	m.Reason = strings.TrimSpace(m.Reason)
	if m.Reason == "" {
		m.Reason = domain.DefaultReason
	}

	if err := m.Validate(); err != nil {
		return domain.MovementResult{}, err
	}

	result, err := s.repo.ApplyMovement(ctx, m)
	if err != nil {
		if isRejection(err) {
			zap.L().Warn("movement rejected", movementFields(m, zap.Error(err))...)
			return domain.MovementResult{}, err
		}

		return domain.MovementResult{}, fmt.Errorf("s.repo.ApplyMovement -> %w", err)
	}

	zap.L().Info("movement applied", movementFields(result.Movement, zap.Uint("movementID", result.Movement.ID))...)

	return result, nil
}

func (s *LedgerService) SetCostPerUnit(ctx context.Context, itemID, locationID uint, cost decimal.Decimal) (domain.Balance, error) {
	if cost.IsNegative() {
		return domain.Balance{}, domain.ErrNegativeCost
	}

	balance, err := s.repo.SetCostPerUnit(ctx, itemID, locationID, cost.Round(2))
	if err != nil {
		return domain.Balance{}, fmt.Errorf("s.repo.SetCostPerUnit -> %w", err)
	}

	return balance, nil
}

// ListMovements returns the newest movements first. A limit outside
// 1..MaxMovementLimit falls back to the default or the maximum.
func (s *LedgerService) ListMovements(ctx context.Context, itemID, locationID *uint, limit int) ([]domain.Movement, error) {
	switch {
	case limit <= 0:
		limit = DefaultMovementLimit
	case limit > MaxMovementLimit:
		limit = MaxMovementLimit
	}

	movements, err := s.repo.ListMovements(ctx, itemID, locationID, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListMovements -> %w", err)
	}

	return movements, nil
}

func isRejection(err error) bool {
	return errors.Is(err, domain.ErrNoStockAtSource) ||
		errors.Is(err, domain.ErrInsufficientStock) ||
		errors.Is(err, domain.ErrBalanceOverflow) ||
		errors.Is(err, ErrQuantityOutOfRange) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrLocationNotFound)
}

func movementFields(m domain.Movement, extra ...zap.Field) []zap.Field {
	fields := []zap.Field{
		zap.Uint("itemID", m.ItemID),
		zap.Int("qty", m.Qty),
		zap.String("reason", m.Reason),
	}
	if m.FromLocationID != nil {
		fields = append(fields, zap.Uint("from", *m.FromLocationID))
	}
	if m.ToLocationID != nil {
		fields = append(fields, zap.Uint("to", *m.ToLocationID))
	}
	if m.UserID != nil {
		fields = append(fields, zap.Uint("userID", *m.UserID))
	}

	return append(fields, extra...)
}
