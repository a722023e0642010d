package request

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/jil-inventory/inventory-api/internal/domain"
)

var unitExp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]{0,15}$`)

type CreateLocationRequest struct {
	Name string `json:"name"`
}

func (req *CreateLocationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ParentID *uint  `json:"parent_id"`
}

func (req *CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.ParentID, validation.NilOrNotEmpty),
	)
}

type SetCategoryParentRequest struct {
	ParentID *uint `json:"parent_id"`
}

func (req *SetCategoryParentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ParentID, validation.NilOrNotEmpty),
	)
}

type CreateItemRequest struct {
	SKU        string `json:"sku"`
	Name       string `json:"name"`
	CategoryID *uint  `json:"category_id"`
	Unit       string `json:"unit"`
}

func (req *CreateItemRequest) Validate() error {
	sku := domain.NormalizeSKU(req.SKU)

	return validation.ValidateStruct(
		req,
		validation.Field(&req.SKU, validation.Required, validation.By(func(interface{}) error {
			return validation.Validate(sku, validation.Match(domain.SKUPattern).Error(domain.ErrInvalidSKU.Error()))
		})),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.CategoryID, validation.NilOrNotEmpty),
		validation.Field(&req.Unit, validation.Match(unitExp)),
	)
}

func (req *CreateItemRequest) ToDomain() domain.Item {
	return domain.Item{
		SKU:        req.SKU,
		Name:       strings.TrimSpace(req.Name),
		CategoryID: req.CategoryID,
		Unit:       req.Unit,
	}
}

type SetCostRequest struct {
	ItemID      uint            `json:"item_id"`
	LocationID  uint            `json:"location_id"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

func (req *SetCostRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ItemID, validation.Required),
		validation.Field(&req.LocationID, validation.Required),
		validation.Field(&req.CostPerUnit, validation.By(func(interface{}) error {
			if req.CostPerUnit.IsNegative() {
				return domain.ErrNegativeCost
			}
			return nil
		})),
	)
}
