package dao

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportDAO(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	catalog := NewCatalogDAO(testDB)
	ledger := NewLedgerDAO(testDB)
	reports := NewReportDAO(testSqlx)

	a, err := catalog.InsertLocation(ctx, Location{Name: "Katampe"})
	require.NoError(t, err)
	b, err := catalog.InsertLocation(ctx, Location{Name: "Niger"})
	require.NoError(t, err)
	ppe, err := catalog.InsertCategory(ctx, Category{Name: "PPE"})
	require.NoError(t, err)
	helmet, err := catalog.InsertItem(ctx, Item{SKU: "SKU-0001", Name: "Helmet", CategoryID: &ppe.ID, Unit: "ea"})
	require.NoError(t, err)
	drill, err := catalog.InsertItem(ctx, Item{SKU: "SKU-0002", Name: "Drill", Unit: "ea"})
	require.NoError(t, err)

	receive := func(item, loc uint, qty int, cost string) {
		_, _, _, err := ledger.ApplyMovement(ctx, Movement{ItemID: item, ToLocationID: ptr(loc), Qty: qty}, receiveRule(qty))
		require.NoError(t, err)
		_, err = ledger.UpdateCostPerUnit(ctx, item, loc, decimal.RequireFromString(cost))
		require.NoError(t, err)
	}
	receive(helmet.ID, a.ID, 20, "2.50")
	receive(helmet.ID, b.ID, 4, "2.50")
	receive(drill.ID, a.ID, 2, "100.00")

	t.Run("inventory", func(t *testing.T) {
		rows, err := reports.ListInventory(ctx, nil)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "SKU-0001", rows[0].SKU)
		assert.Equal(t, "PPE", rows[0].Category)
		assert.True(t, rows[0].Value.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, "", rows[2].Category)

		rows, err = reports.ListInventory(ctx, &b.ID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Niger", rows[0].Location)
	})

	t.Run("totals", func(t *testing.T) {
		rows, err := reports.TotalsByLocation(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "Katampe", rows[0].Location)
		assert.EqualValues(t, 22, rows[0].TotalQty)
		assert.True(t, rows[0].TotalValue.Equal(decimal.NewFromInt(250)))
	})

	t.Run("low stock", func(t *testing.T) {
		rows, err := reports.LowStock(ctx, 10, 25)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].Qty)
		assert.Equal(t, 4, rows[1].Qty)
	})

	t.Run("top items", func(t *testing.T) {
		rows, err := reports.TopItemsByValue(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "SKU-0002", rows[0].SKU)
		assert.True(t, rows[1].Value.Equal(decimal.NewFromInt(60)))
	})
}
