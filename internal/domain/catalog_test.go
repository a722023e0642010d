package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCheckCategoryParent(t *testing.T) {
	// 1 <- 2 <- 3, 4 standalone
	parents := map[uint]*uint{
		1: nil,
		2: loc(1),
		3: loc(2),
		4: nil,
	}

	assert.NoError(t, CheckCategoryParent(4, nil, parents))
	assert.NoError(t, CheckCategoryParent(4, loc(3), parents))
	assert.NoError(t, CheckCategoryParent(3, loc(4), parents))

	assert.ErrorIs(t, CheckCategoryParent(1, loc(3), parents), ErrCategoryCycle)
	assert.ErrorIs(t, CheckCategoryParent(2, loc(2), parents), ErrCategoryCycle)
}

func TestCheckCategoryParent_ExistingLoop(t *testing.T) {
	parents := map[uint]*uint{
		1: loc(2),
		2: loc(1),
		3: nil,
	}

	assert.ErrorIs(t, CheckCategoryParent(3, loc(1), parents), ErrCategoryCycle)
}

func TestSKU(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "sku-0001", want: "SKU-0001"},
		{in: "  ab.c_d ", want: "AB.C_D"},
		{in: "A", want: "A", wantErr: true},
		{in: "-abc", want: "-ABC", wantErr: true},
		{in: "has space", want: "HAS SPACE", wantErr: true},
		{in: strings.Repeat("X", 65), want: strings.Repeat("X", 65), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeSKU(tt.in)
			assert.Equal(t, tt.want, got)

			if tt.wantErr {
				assert.ErrorIs(t, ValidateSKU(got), ErrInvalidSKU)
			} else {
				assert.NoError(t, ValidateSKU(got))
			}
		})
	}
}
