package analytics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"grocery-cart/internal/kafka"
)

type Service struct {
	repo   AnalyticsRepo
	logger *zap.SugaredLogger

	checkouts prometheus.Counter
	revenue   prometheus.Counter
	itemUnits *prometheus.CounterVec
}

func NewService(repo AnalyticsRepo, logger *zap.SugaredLogger, reg prometheus.Registerer) *Service {
	s := &Service{
		repo:   repo,
		logger: logger,
		checkouts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cart_checkouts_total",
			Help: "Total number of completed checkouts",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cart_revenue_total",
			Help: "Sum of checkout totals",
		}),
		itemUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cart_item_units_added_total",
			Help: "Units added to carts by item name",
		}, []string{"item"}),
	}

	reg.MustRegister(s.checkouts, s.revenue, s.itemUnits)

	return s
}

func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.CartID == "" {
		return nil // Игнорируем события без корзины
	}

	switch event.Type {
	case kafka.EventTypeAdd:
		s.itemUnits.WithLabelValues(event.Item).Inc()
		return s.repo.AddItemUnits(ctx, event.Item, 1)
	case kafka.EventTypeRemove:
		return s.repo.AddItemUnits(ctx, event.Item, -1)
	case kafka.EventTypeCheckout:
		s.checkouts.Inc()
		if event.Total > 0 {
			s.revenue.Add(event.Total)
		}
		return s.repo.AddCheckout(ctx, event.Total)
	default:
		s.logger.Warnf("unknown event type %q for cart %s", event.Type, event.CartID)
		return nil
	}
}

func (s *Service) GetStats(ctx context.Context, top int) (Stats, error) {
	return s.repo.Snapshot(ctx, top)
}
