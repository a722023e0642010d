package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrLocationExists   = errors.New("location already exists")
	ErrLocationNotFound = errors.New("location not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemSKUExists    = errors.New("item sku already exists")
	ErrItemNotFound     = errors.New("item not found")
)

type Location struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

type Category struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"not null"`
	ParentID *uint     `gorm:"index"`
	Parent   *Category `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
}

type Item struct {
	ID         uint      `gorm:"primaryKey"`
	SKU        string    `gorm:"column:sku;uniqueIndex;not null"`
	Name       string    `gorm:"index;not null"`
	CategoryID *uint     `gorm:"index"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Unit       string    `gorm:"not null;default:ea"`
}

type CatalogDAO struct {
	db *gorm.DB
}

func NewCatalogDAO(db *gorm.DB) *CatalogDAO {
	return &CatalogDAO{
		db: db,
	}
}

func (d *CatalogDAO) ListLocations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := d.db.WithContext(ctx).Order("name").Find(&locations).Error; err != nil {
		return nil, err
	}

	return locations, nil
}

func (d *CatalogDAO) InsertLocation(ctx context.Context, location Location) (Location, error) {
	if err := d.db.WithContext(ctx).Create(&location).Error; err != nil {
		if isUniqueViolation(err) {
			return Location{}, ErrLocationExists
		}

		return Location{}, err
	}

	return location, nil
}

func (d *CatalogDAO) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := d.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func (d *CatalogDAO) FindCategoryByID(ctx context.Context, id uint) (Category, error) {
	var category Category
	if err := d.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, err
	}

	return category, nil
}

func (d *CatalogDAO) InsertCategory(ctx context.Context, category Category) (Category, error) {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(&category).Error; err != nil {
		if isForeignKeyViolation(err) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, err
	}

	return category, nil
}

// UpdateCategoryParent locks the category table while check decides whether
// the new parent is acceptable, so two concurrent reparents cannot together
// build a loop.
func (d *CatalogDAO) UpdateCategoryParent(
	ctx context.Context,
	id uint,
	parentID *uint,
	check func(parents map[uint]*uint) error,
) (Category, error) {
	var updated Category

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("LOCK TABLE categories IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
			return fmt.Errorf("lock categories -> %w", err)
		}

		var all []Category
		if err := tx.Find(&all).Error; err != nil {
			return err
		}

		parents := make(map[uint]*uint, len(all))
		for _, c := range all {
			parents[c.ID] = c.ParentID
		}
		if _, ok := parents[id]; !ok {
			return ErrCategoryNotFound
		}
		if parentID != nil {
			if _, ok := parents[*parentID]; !ok {
				return ErrCategoryNotFound
			}
		}

		if err := check(parents); err != nil {
			return err
		}

		if err := tx.Model(&Category{}).Where("id = ?", id).Update("parent_id", parentID).Error; err != nil {
			return err
		}

		return tx.First(&updated, id).Error
	})
	if err != nil {
		return Category{}, err
	}

	return updated, nil
}

func (d *CatalogDAO) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := d.db.WithContext(ctx).Order("sku").Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (d *CatalogDAO) InsertItem(ctx context.Context, item Item) (Item, error) {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(&item).Error; err != nil {
		if isUniqueViolation(err) {
			return Item{}, ErrItemSKUExists
		}
		if isForeignKeyViolation(err) {
			return Item{}, ErrCategoryNotFound
		}

		return Item{}, err
	}

	return item, nil
}

func (d *CatalogDAO) CountItems(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&Item{}).Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isUniqueViolation(err error) bool {
	return pgErrCode(err) == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pgErrCode(err) == pgerrcode.ForeignKeyViolation
}

func isCheckViolation(err error) bool {
	code := pgErrCode(err)

	return code == pgerrcode.CheckViolation || code == pgerrcode.NumericValueOutOfRange
}
