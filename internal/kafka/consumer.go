package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	kgo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DefaultRetryBackoff пауза после ошибки чтения из брокера
const DefaultRetryBackoff = time.Second

// Consumer читает события корзин из топика и передает их обработчику.
type Consumer struct {
	Reader ReaderInterface
	Logger *zap.SugaredLogger
	// RetryBackoff пауза перед повторным чтением после ошибки.
	// Нулевое значение означает DefaultRetryBackoff.
	RetryBackoff time.Duration
}

func NewConsumer(brokers []string, topic, groupID string, logger *zap.SugaredLogger) EventConsumer {
	reader := kgo.NewReader(kgo.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})

	return &Consumer{
		Reader:       &readerAdapter{reader: reader},
		Logger:       logger,
		RetryBackoff: DefaultRetryBackoff,
	}
}

type readerAdapter struct {
	reader *kgo.Reader
}

func (a *readerAdapter) ReadMessage(ctx context.Context) (kgo.Message, error) {
	return a.reader.ReadMessage(ctx)
}

func (a *readerAdapter) Close() error {
	return a.reader.Close()
}

// Consume читает события корзин до отмены контекста.
// Битые сообщения и ошибки обработчика логируются и пропускаются,
// после ошибки чтения консьюмер ждет RetryBackoff.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Event) error) {
	for {
		msg, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}

			c.Logger.Errorw("cart events: read failed", "err", err, "retry_in", c.backoff())
			if !c.wait(ctx) {
				return
			}
			continue
		}

		event, err := decodeEvent(msg)
		if err != nil {
			c.Logger.Errorw("cart events: bad message", "offset", msg.Offset, "err", err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			c.Logger.Errorf("cart %s: %s event not processed: %v", event.CartID, event.Type, err)
		}
	}
}

func (c *Consumer) backoff() time.Duration {
	if c.RetryBackoff <= 0 {
		return DefaultRetryBackoff
	}

	return c.RetryBackoff
}

// wait false, если контекст отменили во время паузы
func (c *Consumer) wait(ctx context.Context) bool {
	timer := time.NewTimer(c.backoff())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func decodeEvent(msg kgo.Message) (Event, error) {
	var event Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return Event{}, err
	}

	return event, nil
}

func (c *Consumer) Close() error {
	return c.Reader.Close()
}
