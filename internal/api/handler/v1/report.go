package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jil-inventory/inventory-api/internal/api/handler/v1/response"
	"github.com/jil-inventory/inventory-api/internal/domain"
)

type ReportService interface {
	Summary(ctx context.Context) (domain.Summary, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleSummary godoc
// @Summary      Totals by location, low stock and top items by value
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.SummaryResponse
// @Failure      500  {object}  response.Err
// @Router       /summary [get]
func (h *ReportHandler) HandleSummary(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleSummary -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewSummaryResponse(summary))
}

// HandleReportSummary godoc
// @Summary      Same report as /summary under short keys
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.ReportSummaryResponse
// @Failure      500  {object}  response.Err
// @Router       /reports/summary [get]
func (h *ReportHandler) HandleReportSummary(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleReportSummary -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewReportSummaryResponse(summary))
}
