package dao

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errNoStock = errors.New("no stock")
	errShort   = errors.New("short")
)

// moveRule is the minimal receive/issue rule the dao needs for its own tests.
func moveRule(qty int) ApplyFunc {
	return func(src, dst *Inventory) error {
		return applyRule(qty, true, src, dst)
	}
}

func receiveRule(qty int) ApplyFunc {
	return func(src, dst *Inventory) error {
		return applyRule(qty, false, src, dst)
	}
}

func applyRule(qty int, hasSource bool, src, dst *Inventory) error {
	if hasSource {
		if src == nil {
			return errNoStock
		}
		if src.Qty < qty {
			return errShort
		}
		src.Qty -= qty
	}
	if dst != nil {
		dst.Qty += qty
	}
	return nil
}

func ptr(v uint) *uint { return &v }

type fixture struct {
	item      Item
	locations []Location
}

func seed(t *testing.T, locations ...string) fixture {
	t.Helper()
	ctx := context.Background()
	catalog := NewCatalogDAO(testDB)

	item, err := catalog.InsertItem(ctx, Item{SKU: "SKU-0001", Name: "Helmet", Unit: "ea"})
	require.NoError(t, err)

	f := fixture{item: item}
	for _, name := range locations {
		loc, err := catalog.InsertLocation(ctx, Location{Name: name})
		require.NoError(t, err)
		f.locations = append(f.locations, loc)
	}

	return f
}

func countMovements(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, testDB.Model(&Movement{}).Count(&n).Error)
	return n
}

func TestLedgerDAO_ApplyMovement(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	f := seed(t, "Katampe", "Niger")
	d := NewLedgerDAO(testDB)
	katampe, niger := f.locations[0].ID, f.locations[1].ID

	// receive creates the row
	mv, src, dst, err := d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, ToLocationID: ptr(katampe), Qty: 10, Reason: "receive"}, receiveRule(10))
	require.NoError(t, err)
	assert.NotZero(t, mv.ID)
	assert.False(t, mv.CreatedAt.IsZero())
	assert.Nil(t, src)
	require.NotNil(t, dst)
	assert.Equal(t, 10, dst.Qty)

	// transfer moves exactly qty
	_, src, dst, err = d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, FromLocationID: ptr(katampe), ToLocationID: ptr(niger), Qty: 7, Reason: "move"}, moveRule(7))
	require.NoError(t, err)
	assert.Equal(t, 3, src.Qty)
	assert.Equal(t, 7, dst.Qty)

	// rejected transfer writes nothing
	_, _, _, err = d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, FromLocationID: ptr(katampe), ToLocationID: ptr(niger), Qty: 5, Reason: "move"}, moveRule(5))
	assert.ErrorIs(t, err, errShort)

	b, err := d.FindBalance(ctx, f.item.ID, katampe)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Qty)
	b, err = d.FindBalance(ctx, f.item.ID, niger)
	require.NoError(t, err)
	assert.Equal(t, 7, b.Qty)
	assert.EqualValues(t, 2, countMovements(t))
}

func TestLedgerDAO_ApplyMovement_NoSourceRow(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	f := seed(t, "Katampe", "Ekiti")
	d := NewLedgerDAO(testDB)

	_, _, _, err := d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, FromLocationID: ptr(f.locations[0].ID), ToLocationID: ptr(f.locations[1].ID), Qty: 1}, moveRule(1))
	assert.ErrorIs(t, err, errNoStock)

	// the destination row created inside the transaction was rolled back too
	_, err = d.FindBalance(ctx, f.item.ID, f.locations[1].ID)
	assert.ErrorIs(t, err, ErrBalanceNotFound)
	assert.Zero(t, countMovements(t))
}

func TestLedgerDAO_ApplyMovement_UnknownReferences(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	f := seed(t, "Katampe")
	d := NewLedgerDAO(testDB)

	_, _, _, err := d.ApplyMovement(ctx, Movement{ItemID: 9999, ToLocationID: ptr(f.locations[0].ID), Qty: 1}, receiveRule(1))
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, _, _, err = d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, ToLocationID: ptr(9999), Qty: 1}, receiveRule(1))
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestLedgerDAO_ConcurrentIssuesNeverOverdraw(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	f := seed(t, "Katampe")
	d := NewLedgerDAO(testDB)
	loc := f.locations[0].ID

	_, _, _, err := d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, ToLocationID: ptr(loc), Qty: 10}, receiveRule(10))
	require.NoError(t, err)

	const workers = 16
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _, err := d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, FromLocationID: ptr(loc), Qty: 3}, moveRule(3))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, errShort):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 3, succeeded.Load())
	assert.EqualValues(t, workers-3, rejected.Load())

	b, err := d.FindBalance(ctx, f.item.ID, loc)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Qty)
}

func TestLedgerDAO_OppositeTransfers(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	f := seed(t, "Katampe", "Niger")
	d := NewLedgerDAO(testDB)
	a, b := f.locations[0].ID, f.locations[1].ID

	for _, loc := range []uint{a, b} {
		_, _, _, err := d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, ToLocationID: ptr(loc), Qty: 50}, receiveRule(50))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		from, to := a, b
		if i%2 == 1 {
			from, to = b, a
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _, err := d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, FromLocationID: ptr(from), ToLocationID: ptr(to), Qty: 1}, moveRule(1))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var total int64
	require.NoError(t, testDB.Model(&Inventory{}).Where("item_id = ?", f.item.ID).Select("SUM(qty)").Scan(&total).Error)
	assert.EqualValues(t, 100, total)
}

func TestLedgerDAO_UpdateCostPerUnit(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	f := seed(t, "Katampe")
	d := NewLedgerDAO(testDB)
	loc := f.locations[0].ID

	_, err := d.UpdateCostPerUnit(ctx, f.item.ID, loc, decimal.NewFromInt(5))
	assert.ErrorIs(t, err, ErrBalanceNotFound)

	_, _, _, err = d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, ToLocationID: ptr(loc), Qty: 2}, receiveRule(2))
	require.NoError(t, err)

	row, err := d.UpdateCostPerUnit(ctx, f.item.ID, loc, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	assert.True(t, row.CostPerUnit.Equal(decimal.RequireFromString("12.5")))
}

func TestLedgerDAO_ListMovements(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	f := seed(t, "Katampe", "Niger")
	d := NewLedgerDAO(testDB)
	a, b := f.locations[0].ID, f.locations[1].ID

	_, _, _, err := d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, ToLocationID: ptr(a), Qty: 5}, receiveRule(5))
	require.NoError(t, err)
	_, _, _, err = d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, FromLocationID: ptr(a), ToLocationID: ptr(b), Qty: 2}, moveRule(2))
	require.NoError(t, err)

	all, err := d.ListMovements(ctx, MovementFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].Qty)

	atB, err := d.ListMovements(ctx, MovementFilter{LocationID: ptr(b), Limit: 10})
	require.NoError(t, err)
	assert.Len(t, atB, 1)
}

func TestLedgerDAO_ApplyMovement_CheckViolation(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	f := seed(t, "Katampe")
	d := NewLedgerDAO(testDB)
	loc := f.locations[0].ID

	_, _, _, err := d.ApplyMovement(ctx, Movement{ItemID: f.item.ID, ToLocationID: ptr(loc), Qty: 1}, func(_, dst *Inventory) error {
		dst.Qty = -1
		return nil
	})
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)

	_, err = d.FindBalance(ctx, f.item.ID, loc)
	assert.ErrorIs(t, err, ErrBalanceNotFound)
	assert.Zero(t, countMovements(t))
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{pgerrcode.SerializationFailure, true},
		{pgerrcode.DeadlockDetected, true},
		{pgerrcode.ConnectionFailure, false},
		{pgerrcode.AdminShutdown, false},
		{pgerrcode.CheckViolation, false},
	}

	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			err := fmt.Errorf("tx -> %w", &pgconn.PgError{Code: tc.code})
			assert.Equal(t, tc.want, isTransient(err))
		})
	}
	assert.False(t, isTransient(errors.New("boom")))
}

func TestWithRetry(t *testing.T) {
	deadlock := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			if calls < maxTxAttempts {
				return deadlock
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, maxTxAttempts, calls)
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			return deadlock
		})
		assert.ErrorIs(t, err, deadlock)
		assert.Equal(t, maxTxAttempts, calls)
	})

	t.Run("business errors are not retried", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			return errShort
		})
		assert.ErrorIs(t, err, errShort)
		assert.Equal(t, 1, calls)
	})

	t.Run("cancel during backoff stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		calls := 0
		err := withRetry(ctx, func() error {
			calls++
			time.AfterFunc(time.Millisecond, cancel)
			return deadlock
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
