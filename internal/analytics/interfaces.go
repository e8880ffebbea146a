package analytics

import (
	"context"

	"grocery-cart/internal/kafka"
)

// AnalyticsRepo - хранилище агрегатов по событиям корзин.
type AnalyticsRepo interface {
	AddItemUnits(ctx context.Context, item string, delta int) error
	AddCheckout(ctx context.Context, total float64) error
	Snapshot(ctx context.Context, top int) (Stats, error)
}

// AnalyticsService - интерфейс сервиса аналитики.
type AnalyticsService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	GetStats(ctx context.Context, top int) (Stats, error)
}

// ItemCount сколько единиц товара сейчас лежит в корзинах
type ItemCount struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

// Stats агрегаты по корзинам
type Stats struct {
	Checkouts int         `json:"checkouts"`
	Revenue   float64     `json:"revenue"`
	TopItems  []ItemCount `json:"top_items"`
}
