package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jil-inventory/inventory-api/internal/domain"
)

const (
	lowStockLimit = 25
	topItemsLimit = 10
)

type ReportRepository interface {
	TotalsByLocation(ctx context.Context) ([]domain.LocationTotal, error)
	LowStock(ctx context.Context, threshold, limit int) ([]domain.LowStockRow, error)
	TopItemsByValue(ctx context.Context, limit int) ([]domain.ItemValue, error)
}

type ReportService struct {
	repo      ReportRepository
	threshold atomic.Int64
}

func NewReportService(repo ReportRepository, lowStockThreshold int) *ReportService {
	s := &ReportService{
		repo: repo,
	}
	s.SetLowStockThreshold(lowStockThreshold)

	return s
}

// SetLowStockThreshold is safe to call while requests are being served.
// Non-positive values restore the default.
func (s *ReportService) SetLowStockThreshold(n int) {
	if n <= 0 {
		n = domain.DefaultLowStockThreshold
	}
	s.threshold.Store(int64(n))
}

func (s *ReportService) LowStockThreshold() int {
	return int(s.threshold.Load())
}

func (s *ReportService) Summary(ctx context.Context) (domain.Summary, error) {
	totals, err := s.repo.TotalsByLocation(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("s.repo.TotalsByLocation -> %w", err)
	}

	low, err := s.repo.LowStock(ctx, s.LowStockThreshold(), lowStockLimit)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("s.repo.LowStock -> %w", err)
	}

	top, err := s.repo.TopItemsByValue(ctx, topItemsLimit)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("s.repo.TopItemsByValue -> %w", err)
	}

	return domain.Summary{
		Totals:   totals,
		LowStock: low,
		TopItems: top,
	}, nil
}
