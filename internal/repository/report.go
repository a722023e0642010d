package repository

import (
	"context"
	"fmt"

	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/repository/dao"
)

type ReportDAO interface {
	ListInventory(ctx context.Context, locationID *uint) ([]dao.InventoryRow, error)
	TotalsByLocation(ctx context.Context) ([]dao.LocationTotalRow, error)
	LowStock(ctx context.Context, threshold, limit int) ([]dao.LowStockRow, error)
	TopItemsByValue(ctx context.Context, limit int) ([]dao.ItemValueRow, error)
}

type ReportRepository struct {
	dao ReportDAO
}

func NewReportRepository(dao ReportDAO) *ReportRepository {
	return &ReportRepository{
		dao: dao,
	}
}

func (r *ReportRepository) ListInventory(ctx context.Context, locationID *uint) ([]domain.InventoryRow, error) {
	found, err := r.dao.ListInventory(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListInventory -> %w", err)
	}

	rows := make([]domain.InventoryRow, 0, len(found))
	for _, f := range found {
		rows = append(rows, domain.InventoryRow(f))
	}

	return rows, nil
}

func (r *ReportRepository) TotalsByLocation(ctx context.Context) ([]domain.LocationTotal, error) {
	found, err := r.dao.TotalsByLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TotalsByLocation -> %w", err)
	}

	rows := make([]domain.LocationTotal, 0, len(found))
	for _, f := range found {
		rows = append(rows, domain.LocationTotal(f))
	}

	return rows, nil
}

func (r *ReportRepository) LowStock(ctx context.Context, threshold, limit int) ([]domain.LowStockRow, error) {
	found, err := r.dao.LowStock(ctx, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.LowStock -> %w", err)
	}

	rows := make([]domain.LowStockRow, 0, len(found))
	for _, f := range found {
		rows = append(rows, domain.LowStockRow(f))
	}

	return rows, nil
}

func (r *ReportRepository) TopItemsByValue(ctx context.Context, limit int) ([]domain.ItemValue, error) {
	found, err := r.dao.TopItemsByValue(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.TopItemsByValue -> %w", err)
	}

	rows := make([]domain.ItemValue, 0, len(found))
	for _, f := range found {
		rows = append(rows, domain.ItemValue(f))
	}

	return rows, nil
}
