package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"travelbooking/internal/catalog"
	"travelbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository stores one catalog in the catalog_items table. Items are
// kept as JSON payloads and listed in their seeded order.
type CatalogRepository[T catalog.Item] struct {
	db   *gorm.DB
	kind domain.CatalogKind
}

func NewCatalogRepository[T catalog.Item](db *gorm.DB, kind domain.CatalogKind) *CatalogRepository[T] {
	return &CatalogRepository[T]{db: db, kind: kind}
}

type catalogItemModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Domain    string    `gorm:"column:domain"`
	ItemID    string    `gorm:"column:item_id"`
	Position  int       `gorm:"column:position"`
	UnitPrice float64   `gorm:"column:unit_price"`
	Currency  string    `gorm:"column:currency"`
	Payload   string    `gorm:"column:payload"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (catalogItemModel) TableName() string { return "catalog_items" }

func decodeItem[T catalog.Item](m catalogItemModel) (T, error) {
	var item T
	if err := json.Unmarshal([]byte(m.Payload), &item); err != nil {
		return item, fmt.Errorf("decode %s item %s: %w", m.Domain, m.ItemID, err)
	}
	return item, nil
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	var rows []catalogItemModel
	err := r.db.WithContext(ctx).
		Where("domain = ?", string(r.kind)).
		Order("position ASC").Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for _, m := range rows {
		item, err := decodeItem[T](m)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *CatalogRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var m catalogItemModel
	tx := r.db.WithContext(ctx).
		Where("domain = ? AND item_id = ?", string(r.kind), id).
		First(&m)
	if tx.Error != nil {
		var zero T
		return zero, notFound(tx.Error)
	}
	return decodeItem[T](m)
}

// Seed upserts items, recording their slice position as catalog order.
func (r *CatalogRepository[T]) Seed(ctx context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([]catalogItemModel, 0, len(items))
	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encode %s item %s: %w", r.kind, item.ItemID(), err)
		}
		rows = append(rows, catalogItemModel{
			Domain:    string(r.kind),
			ItemID:    item.ItemID(),
			Position:  i,
			UnitPrice: item.UnitPrice(),
			Currency:  item.PriceCurrency(),
			Payload:   string(payload),
		})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "domain"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"position", "unit_price", "currency", "payload"}),
	}).Create(&rows).Error
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
