package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/jil-inventory/inventory-api/internal/api/handler/v1/request"
	"github.com/jil-inventory/inventory-api/internal/api/handler/v1/response"
	"github.com/jil-inventory/inventory-api/internal/api/middleware"
	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/service"
)

type LedgerService interface {
	ApplyMovement(ctx context.Context, m domain.Movement) (domain.MovementResult, error)
	SetCostPerUnit(ctx context.Context, itemID, locationID uint, cost decimal.Decimal) (domain.Balance, error)
	ListMovements(ctx context.Context, itemID, locationID *uint, limit int) ([]domain.Movement, error)
}

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type LedgerHandler struct {
	svc  LedgerService
	uSvc UserService
}

func NewLedgerHandler(svc LedgerService, uSvc UserService) *LedgerHandler {
	return &LedgerHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateMovement godoc
// @Summary      Record a stock movement
// @Description  Receives (to only), issues (from only) or transfers (both) a quantity of an item.
// @Description  The acting user comes from the bearer token when one is sent; user_id in the body is ignored.
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateMovementRequest  true  "request body"
// @Success      201      {object}  response.MovementResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /movements [post]
// @Security BearerAuth
func (h *LedgerHandler) HandleCreateMovement(ctx *gin.Context) {
	var req request.CreateMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	m := req.ToDomain()
	m.UserID = nil
	if userID, ok := middleware.UserID(ctx); ok {
		user, respErr := getUserFromContext(ctx, h.uSvc, userID)
		if respErr != nil {
			response.RenderErr(ctx, respErr)
			return
		}
		m.UserID = &user.ID
	}

	result, err := h.svc.ApplyMovement(ctx.Request.Context(), m)
	if err != nil {
		response.RenderErr(ctx, movementErr(err, m))
		return
	}

	ctx.JSON(http.StatusCreated, response.MovementResponse{
		OK:       true,
		Movement: result.Movement,
		From:     result.From,
		To:       result.To,
	})
}

func movementErr(err error, m domain.Movement) *response.Err {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNoLocation),
		errors.Is(err, domain.ErrSameLocation),
		errors.Is(err, domain.ErrReasonTooLong):
		return response.ErrBadRequest(err)
	case errors.Is(err, domain.ErrBalanceOverflow),
		errors.Is(err, service.ErrQuantityOutOfRange):
		return response.ErrBadRequest(domain.ErrInvalidQuantity)
	case errors.Is(err, domain.ErrNoStockAtSource):
		return response.ErrConflict("No stock at source", err)
	case errors.Is(err, domain.ErrInsufficientStock):
		return response.ErrConflict("Insufficient stock", err)
	case errors.Is(err, service.ErrItemNotFound):
		return response.ErrNotFound("item", "ID", m.ItemID)
	case errors.Is(err, service.ErrLocationNotFound):
		return &response.Err{
			HTTPStatusCode: http.StatusNotFound,
			StatusText:     http.StatusText(http.StatusNotFound),
			ErrorText:      "Location not found",
		}
	default:
		return response.ErrInternalServerError(fmt.Errorf("v1.HandleCreateMovement -> h.svc.ApplyMovement -> %w", err))
	}
}

// HandleListMovements godoc
// @Summary      Movement history, newest first
// @Tags         movements
// @Produce      json
// @Param        itemId      query     int  false  "Item ID"
// @Param        locationId  query     int  false  "Location ID (source or destination)"
// @Param        limit       query     int  false  "Max rows (default 100, max 500)"
// @Success      200         {array}   domain.Movement
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /movements [get]
func (h *LedgerHandler) HandleListMovements(ctx *gin.Context) {
	itemID, err := optionalUintQuery(ctx, "itemId", "item_id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	locationID, err := optionalUintQuery(ctx, "locationId", "location_id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit: %w", err)))
			return
		}
	}

	movements, err := h.svc.ListMovements(ctx.Request.Context(), itemID, locationID, limit)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMovements -> h.svc.ListMovements -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NonNil(movements))
}

// HandleSetCost godoc
// @Summary      Set the cost per unit of a balance
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request  body      request.SetCostRequest  true  "request body"
// @Success      200      {object}  domain.Balance
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /inventory/cost [put]
// @Security BearerAuth
func (h *LedgerHandler) HandleSetCost(ctx *gin.Context) {
	var req request.SetCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	balance, err := h.svc.SetCostPerUnit(ctx.Request.Context(), req.ItemID, req.LocationID, req.CostPerUnit)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNegativeCost):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrBalanceNotFound):
			response.RenderErr(ctx, response.ErrNotFound("balance", "item/location", fmt.Sprintf("%d/%d", req.ItemID, req.LocationID)))
		default:
			err = fmt.Errorf("v1.HandleSetCost -> h.svc.SetCostPerUnit -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, balance)
}

func getUserFromContext(ctx *gin.Context, uSvc UserService, userID uint) (domain.User, *response.Err) {
	user, err := uSvc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return domain.User{}, response.ErrUnauthorized(service.ErrUserNotFound)
		case errors.Is(err, service.ErrUserInactive):
			return domain.User{}, response.ErrUnauthorized(service.ErrUserInactive)
		}

		err = fmt.Errorf("getUserFromContext -> uSvc.GetUser -> %w", err)
		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}
