package repository

import (
	"context"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
)

// CatalogRepository holds the fixed item catalog. Reference data only, never
// mutated after construction, so reads need no locking.
type CatalogRepository struct {
	items []entity.Item
}

func NewCatalogRepository(items []entity.Item) *CatalogRepository {
	return &CatalogRepository{items: items}
}

// FindAll returns the catalog in its fixed order.
func (r *CatalogRepository) FindAll(ctx context.Context) []entity.Item {
	out := make([]entity.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Lookup returns an id→item index for catalog joins.
func (r *CatalogRepository) Lookup(ctx context.Context) map[int64]entity.Item {
	m := make(map[int64]entity.Item, len(r.items))
	for _, it := range r.items {
		m[it.ID] = it
	}
	return m
}

// FindByID looks up one catalog item.
func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			item := it
			return &item, nil
		}
	}
	return nil, ErrNotFound
}
