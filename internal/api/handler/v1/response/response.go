package response

import "github.com/jil-inventory/inventory-api/internal/domain"

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	Email       string `json:"email"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type FiltersResponse struct {
	Locations []domain.Location `json:"locations"`
}

type MovementResponse struct {
	OK       bool            `json:"ok"`
	Movement domain.Movement `json:"movement"`
	From     *domain.Balance `json:"from,omitempty"`
	To       *domain.Balance `json:"to,omitempty"`
}

// SummaryResponse is served at /summary.
type SummaryResponse struct {
	TotalsByLocation []domain.LocationTotal `json:"totalsByLocation"`
	LowStock         []domain.LowStockRow   `json:"lowStock"`
	TopItems         []domain.ItemValue     `json:"topItems"`
}

// ReportSummaryResponse is the same data under the keys /reports/summary uses.
type ReportSummaryResponse struct {
	Totals []domain.LocationTotal `json:"totals"`
	Low    []domain.LowStockRow   `json:"low"`
	Top    []domain.ItemValue     `json:"top"`
}

func NewSummaryResponse(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalsByLocation: NonNil(s.Totals),
		LowStock:         NonNil(s.LowStock),
		TopItems:         NonNil(s.TopItems),
	}
}

func NewReportSummaryResponse(s domain.Summary) ReportSummaryResponse {
	return ReportSummaryResponse{
		Totals: NonNil(s.Totals),
		Low:    NonNil(s.LowStock),
		Top:    NonNil(s.TopItems),
	}
}

// NonNil renders a nil slice as [] instead of null.
func NonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
