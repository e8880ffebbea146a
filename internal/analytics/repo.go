package analytics

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Repository держит агрегаты в памяти процесса
type Repository struct {
	logger *zap.SugaredLogger

	mu        sync.Mutex
	items     map[string]int
	checkouts int
	revenue   float64
}

func NewRepository(logger *zap.SugaredLogger) *Repository {
	return &Repository{
		logger: logger,
		items:  make(map[string]int),
	}
}

// AddItemUnits меняет счетчик единиц товара; счетчик не уходит ниже нуля
func (r *Repository) AddItemUnits(_ context.Context, item string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	units := r.items[item] + delta
	if units <= 0 {
		delete(r.items, item)
		return nil
	}
	r.items[item] = units

	return nil
}

func (r *Repository) AddCheckout(_ context.Context, total float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.checkouts++
	r.revenue += total

	return nil
}

// Snapshot агрегаты и top самых популярных товаров
func (r *Repository) Snapshot(_ context.Context, top int) (Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]ItemCount, 0, len(r.items))
	for name, units := range r.items {
		items = append(items, ItemCount{Name: name, Units: units})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Units != items[j].Units {
			return items[i].Units > items[j].Units
		}
		return items[i].Name < items[j].Name
	})
	if top >= 0 && len(items) > top {
		items = items[:top]
	}

	return Stats{
		Checkouts: r.checkouts,
		Revenue:   r.revenue,
		TopItems:  items,
	}, nil
}
