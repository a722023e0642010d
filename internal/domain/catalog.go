package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrCategoryCycle = errors.New("category parent would create a cycle")
	ErrInvalidSKU    = errors.New("sku must be 2 to 64 characters of A-Z, 0-9, '.', '_' or '-' and start with a letter or digit")
)

// SKUPattern matches a normalised SKU.
var SKUPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9._-]{1,63}$`)

type Location struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id"`
}

type Item struct {
	ID         uint   `json:"id"`
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	CategoryID *uint  `json:"category_id"`
	Unit       string `json:"unit"`
}

const DefaultUnit = "ea"

// NormalizeSKU upper-cases and trims s. SKUs are stored in this form.
func NormalizeSKU(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func ValidateSKU(sku string) error {
	if !SKUPattern.MatchString(sku) {
		return ErrInvalidSKU
	}

	return nil
}

// CheckCategoryParent reports ErrCategoryCycle when making parentID the parent
// of categoryID would close a loop. parents maps every known category to its
// current parent.
func CheckCategoryParent(categoryID uint, parentID *uint, parents map[uint]*uint) error {
	if parentID == nil {
		return nil
	}

	seen := make(map[uint]bool, len(parents))
	for cur := parentID; cur != nil; cur = parents[*cur] {
		if *cur == categoryID {
			return fmt.Errorf("category %d -> parent %d: %w", categoryID, *parentID, ErrCategoryCycle)
		}
		if seen[*cur] {
			// A pre-existing loop that does not pass through categoryID.
			return fmt.Errorf("category %d is part of a loop: %w", *cur, ErrCategoryCycle)
		}
		seen[*cur] = true
	}

	return nil
}
