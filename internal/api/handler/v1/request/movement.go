package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/jil-inventory/inventory-api/internal/domain"
)

type CreateMovementRequest struct {
	ItemID         uint   `json:"item_id"`
	FromLocationID *uint  `json:"from_location_id"`
	ToLocationID   *uint  `json:"to_location_id"`
	Qty            int    `json:"qty"`
	Reason         string `json:"reason"`
	UserID         *uint  `json:"user_id"`
}

func (req *CreateMovementRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.ItemID, validation.Required),
		validation.Field(&req.FromLocationID, validation.NilOrNotEmpty),
		validation.Field(&req.ToLocationID, validation.NilOrNotEmpty),
		validation.Field(&req.Reason, validation.RuneLength(0, domain.MaxReasonChars)),
	)
	if err != nil {
		return err
	}

	return req.ToDomain().Validate()
}

func (req *CreateMovementRequest) ToDomain() domain.Movement {
	return domain.Movement{
		ItemID:         req.ItemID,
		FromLocationID: req.FromLocationID,
		ToLocationID:   req.ToLocationID,
		Qty:            req.Qty,
		Reason:         req.Reason,
		UserID:         req.UserID,
	}
}
