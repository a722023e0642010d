package repository

import (
	"context"
	"fmt"

	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/repository/dao"
)

var (
	ErrLocationExists   = dao.ErrLocationExists
	ErrLocationNotFound = dao.ErrLocationNotFound
	ErrCategoryNotFound = dao.ErrCategoryNotFound
	ErrItemSKUExists    = dao.ErrItemSKUExists
	ErrItemNotFound     = dao.ErrItemNotFound
)

type CatalogDAO interface {
	ListLocations(ctx context.Context) ([]dao.Location, error)
	InsertLocation(ctx context.Context, location dao.Location) (dao.Location, error)
	ListCategories(ctx context.Context) ([]dao.Category, error)
	InsertCategory(ctx context.Context, category dao.Category) (dao.Category, error)
	UpdateCategoryParent(ctx context.Context, id uint, parentID *uint, check func(parents map[uint]*uint) error) (dao.Category, error)
	ListItems(ctx context.Context) ([]dao.Item, error)
	InsertItem(ctx context.Context, item dao.Item) (dao.Item, error)
	CountItems(ctx context.Context) (int64, error)
}

type CatalogRepository struct {
	dao CatalogDAO
}

func NewCatalogRepository(dao CatalogDAO) *CatalogRepository {
	return &CatalogRepository{
		dao: dao,
	}
}

func (r *CatalogRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	found, err := r.dao.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListLocations -> %w", err)
	}

	locations := make([]domain.Location, 0, len(found))
	for _, l := range found {
		locations = append(locations, domain.Location{ID: l.ID, Name: l.Name})
	}

	return locations, nil
}

func (r *CatalogRepository) CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error) {
	created, err := r.dao.InsertLocation(ctx, dao.Location{Name: location.Name})
	if err != nil {
		return domain.Location{}, fmt.Errorf("r.dao.InsertLocation -> %w", err)
	}

	return domain.Location{ID: created.ID, Name: created.Name}, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	found, err := r.dao.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListCategories -> %w", err)
	}

	categories := make([]domain.Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, categoryToDomain(c))
	}

	return categories, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.InsertCategory(ctx, dao.Category{
		Name:     category.Name,
		ParentID: category.ParentID,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.InsertCategory -> %w", err)
	}

	return categoryToDomain(created), nil
}

// SetCategoryParent reparents a category, rejecting assignments that would
// make it its own ancestor.
func (r *CatalogRepository) SetCategoryParent(ctx context.Context, id uint, parentID *uint) (domain.Category, error) {
	updated, err := r.dao.UpdateCategoryParent(ctx, id, parentID, func(parents map[uint]*uint) error {
		return domain.CheckCategoryParent(id, parentID, parents)
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.UpdateCategoryParent -> %w", err)
	}

	return categoryToDomain(updated), nil
}

func (r *CatalogRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	found, err := r.dao.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListItems -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, it := range found {
		items = append(items, itemToDomain(it))
	}

	return items, nil
}

func (r *CatalogRepository) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.InsertItem(ctx, dao.Item{
		SKU:        item.SKU,
		Name:       item.Name,
		CategoryID: item.CategoryID,
		Unit:       item.Unit,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.InsertItem -> %w", err)
	}

	return itemToDomain(created), nil
}

func (r *CatalogRepository) CountItems(ctx context.Context) (int64, error) {
	n, err := r.dao.CountItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountItems -> %w", err)
	}

	return n, nil
}

func categoryToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:       c.ID,
		Name:     c.Name,
		ParentID: c.ParentID,
	}
}

func itemToDomain(it dao.Item) domain.Item {
	return domain.Item{
		ID:         it.ID,
		SKU:        it.SKU,
		Name:       it.Name,
		CategoryID: it.CategoryID,
		Unit:       it.Unit,
	}
}
