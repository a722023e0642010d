package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jil-inventory/inventory-api/internal/domain"
	"github.com/jil-inventory/inventory-api/internal/repository"
)

var (
	ErrLocationExists   = repository.ErrLocationExists
	ErrLocationNotFound = repository.ErrLocationNotFound
	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrItemSKUExists    = repository.ErrItemSKUExists
	ErrItemNotFound     = repository.ErrItemNotFound
)

type CatalogRepository interface {
	ListLocations(ctx context.Context) ([]domain.Location, error)
	CreateLocation(ctx context.Context, location domain.Location) (domain.Location, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (domain.Category, error)
	SetCategoryParent(ctx context.Context, id uint, parentID *uint) (domain.Category, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	CountItems(ctx context.Context) (int64, error)
}

type InventoryReader interface {
	ListInventory(ctx context.Context, locationID *uint) ([]domain.InventoryRow, error)
}

type CatalogService struct {
	repo      CatalogRepository
	inventory InventoryReader
}

func NewCatalogService(repo CatalogRepository, inventory InventoryReader) *CatalogService {
	return &CatalogService{
		repo:      repo,
		inventory: inventory,
	}
}

func (s *CatalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListLocations -> %w", err)
	}

	return locations, nil
}

// Filters returns the options a client needs to narrow inventory listings.
func (s *CatalogService) Filters(ctx context.Context) ([]domain.Location, error) {
	return s.ListLocations(ctx)
}

func (s *CatalogService) CreateLocation(ctx context.Context, name string) (domain.Location, error) {
	created, err := s.repo.CreateLocation(ctx, domain.Location{Name: strings.TrimSpace(name)})
	if err != nil {
		return domain.Location{}, fmt.Errorf("s.repo.CreateLocation -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListCategories -> %w", err)
	}

	return categories, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string, parentID *uint) (domain.Category, error) {
	created, err := s.repo.CreateCategory(ctx, domain.Category{
		Name:     strings.TrimSpace(name),
		ParentID: parentID,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.CreateCategory -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) SetCategoryParent(ctx context.Context, id uint, parentID *uint) (domain.Category, error) {
	if parentID != nil && *parentID == id {
		return domain.Category{}, fmt.Errorf("category %d: %w", id, domain.ErrCategoryCycle)
	}

	updated, err := s.repo.SetCategoryParent(ctx, id, parentID)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.SetCategoryParent -> %w", err)
	}

	return updated, nil
}

func (s *CatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListItems -> %w", err)
	}

	return items, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	item.SKU = domain.NormalizeSKU(item.SKU)
	if err := domain.ValidateSKU(item.SKU); err != nil {
		return domain.Item{}, err
	}
	item.Name = strings.TrimSpace(item.Name)
	if item.Unit == "" {
		item.Unit = domain.DefaultUnit
	}

	created, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.CreateItem -> %w", err)
	}

	return created, nil
}

func (s *CatalogService) CountItems(ctx context.Context) (int64, error) {
	n, err := s.repo.CountItems(ctx)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CountItems -> %w", err)
	}

	return n, nil
}

func (s *CatalogService) ListInventory(ctx context.Context, locationID *uint) ([]domain.InventoryRow, error) {
	rows, err := s.inventory.ListInventory(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("s.inventory.ListInventory -> %w", err)
	}

	return rows, nil
}
