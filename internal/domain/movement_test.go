package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(id uint) *uint { return &id }

func TestMovement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       Movement
		wantErr error
	}{
		{"receive", Movement{ItemID: 1, ToLocationID: loc(1), Qty: 1}, nil},
		{"issue", Movement{ItemID: 1, FromLocationID: loc(1), Qty: 1}, nil},
		{"transfer", Movement{ItemID: 1, FromLocationID: loc(1), ToLocationID: loc(2), Qty: 3}, nil},
		{"zero qty", Movement{ItemID: 1, ToLocationID: loc(1)}, ErrInvalidQuantity},
		{"negative qty", Movement{ItemID: 1, ToLocationID: loc(1), Qty: -4}, ErrInvalidQuantity},
		{"largest qty", Movement{ItemID: 1, ToLocationID: loc(1), Qty: MaxQty}, nil},
		{"qty above int32", Movement{ItemID: 1, ToLocationID: loc(1), Qty: MaxQty + 1}, ErrInvalidQuantity},
		{"qty max int", Movement{ItemID: 1, ToLocationID: loc(1), Qty: math.MaxInt}, ErrInvalidQuantity},
		{"no location", Movement{ItemID: 1, Qty: 1}, ErrNoLocation},
		{"same location", Movement{ItemID: 1, FromLocationID: loc(2), ToLocationID: loc(2), Qty: 1}, ErrSameLocation},
		{"long reason", Movement{ItemID: 1, ToLocationID: loc(1), Qty: 1, Reason: "0123456789012345678901234567890123"}, ErrReasonTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestMovement_Kind(t *testing.T) {
	assert.Equal(t, MovementReceive, Movement{ToLocationID: loc(1)}.Kind())
	assert.Equal(t, MovementIssue, Movement{FromLocationID: loc(1)}.Kind())
	assert.Equal(t, MovementTransfer, Movement{FromLocationID: loc(1), ToLocationID: loc(2)}.Kind())
}

func TestMovement_Apply(t *testing.T) {
	t.Run("transfer moves exactly qty", func(t *testing.T) {
		src := Balance{ItemID: 1, LocationID: 1, Qty: 10}
		dst := NewBalance(1, 2)

		err := Movement{ItemID: 1, FromLocationID: loc(1), ToLocationID: loc(2), Qty: 7}.Apply(&src, &dst)
		require.NoError(t, err)
		assert.Equal(t, 3, src.Qty)
		assert.Equal(t, 7, dst.Qty)
	})

	t.Run("insufficient stock changes nothing", func(t *testing.T) {
		src := Balance{ItemID: 1, LocationID: 1, Qty: 3}
		dst := Balance{ItemID: 1, LocationID: 2, Qty: 1}

		err := Movement{ItemID: 1, FromLocationID: loc(1), ToLocationID: loc(2), Qty: 5}.Apply(&src, &dst)
		assert.ErrorIs(t, err, ErrInsufficientStock)
		assert.Equal(t, 3, src.Qty)
		assert.Equal(t, 1, dst.Qty)
	})

	t.Run("missing source row", func(t *testing.T) {
		err := Movement{ItemID: 2, FromLocationID: loc(2), Qty: 1}.Apply(nil, nil)
		assert.ErrorIs(t, err, ErrNoStockAtSource)
	})

	t.Run("exact balance drains to zero", func(t *testing.T) {
		src := Balance{ItemID: 1, LocationID: 1, Qty: 4}

		err := Movement{ItemID: 1, FromLocationID: loc(1), Qty: 4}.Apply(&src, nil)
		require.NoError(t, err)
		assert.Zero(t, src.Qty)
	})

	t.Run("huge receive never wraps negative", func(t *testing.T) {
		dst := Balance{ItemID: 1, LocationID: 1, Qty: 1}

		err := Movement{ItemID: 1, ToLocationID: loc(1), Qty: math.MaxInt}.Apply(nil, &dst)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 1, dst.Qty)
	})

	t.Run("receive into a full balance is rejected", func(t *testing.T) {
		dst := Balance{ItemID: 1, LocationID: 1, Qty: math.MaxInt - 5}

		err := Movement{ItemID: 1, ToLocationID: loc(1), Qty: 6}.Apply(nil, &dst)
		assert.ErrorIs(t, err, ErrBalanceOverflow)
		assert.Equal(t, math.MaxInt-5, dst.Qty)
	})

	t.Run("receive needs a destination row", func(t *testing.T) {
		err := Movement{ItemID: 1, ToLocationID: loc(1), Qty: 4}.Apply(nil, nil)
		assert.Error(t, err)
	})
}

func TestBalance_CanReceive(t *testing.T) {
	assert.True(t, Balance{Qty: math.MaxInt - 5}.CanReceive(5))
	assert.False(t, Balance{Qty: math.MaxInt - 5}.CanReceive(6))
	assert.False(t, Balance{}.CanReceive(-1))
}

func TestBalance_Value(t *testing.T) {
	b := Balance{Qty: 3}
	b.CostPerUnit = b.CostPerUnit.Add(mustDecimal(t, "2.50"))

	assert.True(t, b.Value().Equal(mustDecimal(t, "7.5")), b.Value().String())
}
