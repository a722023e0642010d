package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrNoLocation      = errors.New("a source or destination location is required")
	ErrSameLocation    = errors.New("source and destination location must differ")
	ErrReasonTooLong   = errors.New("reason must be at most 32 characters")
)

const (
	DefaultReason  = "move"
	MaxReasonChars = 32
	MaxQty         = math.MaxInt32
)

type MovementKind string

const (
	MovementReceive  MovementKind = "receive"
	MovementIssue    MovementKind = "issue"
	MovementTransfer MovementKind = "transfer"
)

// Movement is an immutable record of a quantity change.
type Movement struct {
	ID             uint      `json:"id"`
	ItemID         uint      `json:"item_id"`
	FromLocationID *uint     `json:"from_location_id"`
	ToLocationID   *uint     `json:"to_location_id"`
	Qty            int       `json:"qty"`
	Reason         string    `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         *uint     `json:"user_id"`
}

func (m Movement) Kind() MovementKind {
	switch {
	case m.FromLocationID != nil && m.ToLocationID != nil:
		return MovementTransfer
	case m.FromLocationID != nil:
		return MovementIssue
	default:
		return MovementReceive
	}
}

func (m Movement) Validate() error {
	if m.Qty <= 0 || m.Qty > MaxQty {
		return ErrInvalidQuantity
	}
	if m.FromLocationID == nil && m.ToLocationID == nil {
		return ErrNoLocation
	}
	if m.FromLocationID != nil && m.ToLocationID != nil && *m.FromLocationID == *m.ToLocationID {
		return ErrSameLocation
	}
	if len([]rune(m.Reason)) > MaxReasonChars {
		return ErrReasonTooLong
	}

	return nil
}

// Apply runs the movement against the balances it touches. dst must be set
// when the movement has a destination. src is nil when the movement has no
// source or no balance row exists there. Neither balance is modified unless
// Apply returns nil.
func (m Movement) Apply(src, dst *Balance) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if m.FromLocationID != nil {
		if src == nil {
			return fmt.Errorf("item %d at location %d: %w", m.ItemID, *m.FromLocationID, ErrNoStockAtSource)
		}
		if src.Qty < m.Qty {
			return fmt.Errorf("item %d at location %d has %d, requested %d: %w",
				m.ItemID, *m.FromLocationID, src.Qty, m.Qty, ErrInsufficientStock)
		}
	}
	if m.ToLocationID != nil {
		if dst == nil {
			return fmt.Errorf("missing destination balance for location %d", *m.ToLocationID)
		}
		if !dst.CanReceive(m.Qty) {
			return fmt.Errorf("item %d at location %d has %d, received %d: %w",
				m.ItemID, *m.ToLocationID, dst.Qty, m.Qty, ErrBalanceOverflow)
		}
	}

	if m.ToLocationID != nil {
		dst.Receive(m.Qty)
	}
	if m.FromLocationID != nil {
		if err := src.Issue(m.Qty); err != nil {
			return err
		}
	}

	return nil
}

// MovementResult is what a committed movement leaves behind.
type MovementResult struct {
	Movement Movement `json:"movement"`
	From     *Balance `json:"from,omitempty"`
	To       *Balance `json:"to,omitempty"`
}
