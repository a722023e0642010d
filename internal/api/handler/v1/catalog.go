package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jil-inventory/inventory-api/internal/api/handler/v1/request"
	"github.com/jil-inventory/inventory-api/internal/api/handler/v1/response"
	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/service"
)

type CatalogService interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	Filters(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, name string) (domain.Location, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, name string, parentID *uint) (domain.Category, error)
	SetCategoryParent(ctx context.Context, id uint, parentID *uint) (domain.Category, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	CountItems(ctx context.Context) (int64, error)
	ListInventory(ctx context.Context, locationID *uint) ([]domain.InventoryRow, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListLocations godoc
// @Summary      List locations
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Location
// @Failure      500  {object}  response.Err
// @Router       /locations [get]
func (h *CatalogHandler) HandleListLocations(ctx *gin.Context) {
	locations, err := h.svc.ListLocations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListLocations -> h.svc.ListLocations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NonNil(locations))
}

// HandleCreateLocation godoc
// @Summary      Create a location
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateLocationRequest  true  "request body"
// @Success      201      {object}  domain.Location
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /locations [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateLocation(ctx *gin.Context) {
	var req request.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	location, err := h.svc.CreateLocation(ctx.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrLocationExists) {
			response.RenderErr(ctx, response.ErrConflict("Location already exists", err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateLocation -> h.svc.CreateLocation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, location)
}

// HandleListCategories godoc
// @Summary      List categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Category
// @Failure      500  {object}  response.Err
// @Router       /categories [get]
func (h *CatalogHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.svc.ListCategories(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListCategories -> h.svc.ListCategories -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NonNil(categories))
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateCategoryRequest  true  "request body"
// @Success      201      {object}  domain.Category
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /categories [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateCategory(ctx *gin.Context) {
	var req request.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.CreateCategory(ctx.Request.Context(), req.Name, req.ParentID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", *req.ParentID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCategory -> h.svc.CreateCategory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

// HandleSetCategoryParent godoc
// @Summary      Move a category under another one
// @Description  A null parent_id makes the category a root. Assignments that would create a cycle are rejected.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        categoryID  path      int                               true  "Category ID"
// @Param        request     body      request.SetCategoryParentRequest  true  "request body"
// @Success      200         {object}  domain.Category
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /categories/{categoryID}/parent [put]
// @Security BearerAuth
func (h *CatalogHandler) HandleSetCategoryParent(ctx *gin.Context) {
	categoryID, err := strconv.ParseUint(ctx.Param("categoryID"), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid category ID: %w", err)))
		return
	}

	var req request.SetCategoryParentRequest
	if err = ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.SetCategoryParent(ctx.Request.Context(), uint(categoryID), req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryCycle):
			response.RenderErr(ctx, response.ErrBadRequest(domain.ErrCategoryCycle))
		case errors.Is(err, service.ErrCategoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", categoryID))
		default:
			err = fmt.Errorf("v1.HandleSetCategoryParent -> h.svc.SetCategoryParent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

// HandleListItems godoc
// @Summary      List items
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   domain.Item
// @Failure      500  {object}  response.Err
// @Router       /items [get]
func (h *CatalogHandler) HandleListItems(ctx *gin.Context) {
	items, err := h.svc.ListItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NonNil(items))
}

// HandleCreateItem godoc
// @Summary      Create an item
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateItemRequest  true  "request body"
// @Success      201      {object}  domain.Item
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /items [post]
// @Security BearerAuth
func (h *CatalogHandler) HandleCreateItem(ctx *gin.Context) {
	var req request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSKU):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrItemSKUExists):
			response.RenderErr(ctx, response.ErrConflict("Item SKU already exists", err))
		case errors.Is(err, service.ErrCategoryNotFound):
			response.RenderErr(ctx, response.ErrNotFound("category", "ID", *req.CategoryID))
		default:
			err = fmt.Errorf("v1.HandleCreateItem -> h.svc.CreateItem -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// HandleItemCount godoc
// @Summary      Count items
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.CountResponse
// @Failure      500  {object}  response.Err
// @Router       /item_count [get]
func (h *CatalogHandler) HandleItemCount(ctx *gin.Context) {
	n, err := h.svc.CountItems(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleItemCount -> h.svc.CountItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.CountResponse{Count: n})
}

// HandleFilters godoc
// @Summary      Filter options for the inventory view
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  response.FiltersResponse
// @Failure      500  {object}  response.Err
// @Router       /filters [get]
func (h *CatalogHandler) HandleFilters(ctx *gin.Context) {
	locations, err := h.svc.Filters(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleFilters -> h.svc.Filters -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.FiltersResponse{Locations: response.NonNil(locations)})
}

// HandleListInventory godoc
// @Summary      List balances joined with item, category and location
// @Tags         inventory
// @Produce      json
// @Param        locationId   query     int  false  "Location ID"
// @Param        location_id  query     int  false  "Location ID (alias)"
// @Success      200          {array}   domain.InventoryRow
// @Failure      400          {object}  response.Err
// @Failure      500          {object}  response.Err
// @Router       /inventory [get]
func (h *CatalogHandler) HandleListInventory(ctx *gin.Context) {
	locationID, err := optionalUintQuery(ctx, "locationId", "location_id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rows, err := h.svc.ListInventory(ctx.Request.Context(), locationID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListInventory -> h.svc.ListInventory -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NonNil(rows))
}

// optionalUintQuery reads the first of keys present in the query string.
func optionalUintQuery(ctx *gin.Context, keys ...string) (*uint, error) {
	for _, key := range keys {
		raw, ok := ctx.GetQuery(key)
		if !ok || raw == "" {
			continue
		}

		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", key, err)
		}
		id := uint(v)

		return &id, nil
	}

	return nil, nil
}
