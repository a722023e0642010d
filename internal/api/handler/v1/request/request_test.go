package request

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jil-inventory/inventory-api/internal/domain"
)

func ptr(v uint) *uint { return &v }

func TestCreateMovementRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateMovementRequest
		wantErr error
		invalid bool
	}{
		{name: "receive", req: CreateMovementRequest{ItemID: 1, ToLocationID: ptr(2), Qty: 3}},
		{name: "transfer", req: CreateMovementRequest{ItemID: 1, FromLocationID: ptr(1), ToLocationID: ptr(2), Qty: 3, Reason: "rebalance"}},
		{name: "missing item", req: CreateMovementRequest{ToLocationID: ptr(2), Qty: 3}, invalid: true},
		{name: "zero location id", req: CreateMovementRequest{ItemID: 1, ToLocationID: ptr(0), Qty: 3}, invalid: true},
		{name: "long reason", req: CreateMovementRequest{ItemID: 1, ToLocationID: ptr(2), Qty: 3, Reason: strings.Repeat("r", 33)}, invalid: true},
		{name: "zero qty", req: CreateMovementRequest{ItemID: 1, ToLocationID: ptr(2)}, wantErr: domain.ErrInvalidQuantity},
		{name: "negative qty", req: CreateMovementRequest{ItemID: 1, ToLocationID: ptr(2), Qty: -4}, wantErr: domain.ErrInvalidQuantity},
		{name: "no location", req: CreateMovementRequest{ItemID: 1, Qty: 1}, wantErr: domain.ErrNoLocation},
		{name: "same location", req: CreateMovementRequest{ItemID: 1, FromLocationID: ptr(2), ToLocationID: ptr(2), Qty: 1}, wantErr: domain.ErrSameLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.invalid:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateItemRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateItemRequest
		wantErr bool
	}{
		{name: "ok", req: CreateItemRequest{SKU: "sku-0001", Name: "Helmet"}},
		{name: "with unit", req: CreateItemRequest{SKU: "SKU-0001", Name: "Gloves", Unit: "pair"}},
		{name: "bad sku", req: CreateItemRequest{SKU: "-x", Name: "Helmet"}, wantErr: true},
		{name: "missing name", req: CreateItemRequest{SKU: "SKU-0001"}, wantErr: true},
		{name: "bad unit", req: CreateItemRequest{SKU: "SKU-0001", Name: "Helmet", Unit: "9 kg"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetCostRequest_Validate(t *testing.T) {
	ok := SetCostRequest{ItemID: 1, LocationID: 1, CostPerUnit: decimal.RequireFromString("2.50")}
	assert.NoError(t, ok.Validate())

	negative := SetCostRequest{ItemID: 1, LocationID: 1, CostPerUnit: decimal.NewFromInt(-1)}
	assert.Error(t, negative.Validate())

	missing := SetCostRequest{CostPerUnit: decimal.Zero}
	assert.Error(t, missing.Validate())
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "admin@example.com", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "admin", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "admin@example.com"}).Validate())
}
