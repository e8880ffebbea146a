package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// fakeWriter реализует WriterInterface и просто запоминает, какие сообщения ему передали.
type fakeWriter struct {
	lastMessages []kafka.Message
	returnError  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.lastMessages = append(f.lastMessages, msgs...)
	return f.returnError
}

func (f *fakeWriter) Close() error {
	return nil
}

func zapTestLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	logger, err := zap.NewDevelopmentConfig().Build(zap.AddCallerSkip(1))
	if err != nil {
		t.Fatalf("не удалось создать zap-логгер: %v", err)
	}
	return logger.Sugar()
}

func TestProducer_SendEvent_Success(t *testing.T) {
	logger := zapTestLogger(t)
	defer func() { _ = logger.Sync() }()

	fw := &fakeWriter{}
	p := &Producer{
		Writer: fw,
		Logger: logger,
	}

	evt := Event{
		CartID:    "cart-1",
		Type:      EventTypeAdd,
		Item:      "milk",
		Quantity:  2,
		Timestamp: time.Now().UTC(),
	}

	if err := p.SendEvent(context.Background(), evt); err != nil {
		t.Fatalf("ожидали, что SendEvent не вернёт ошибку, но получили: %v", err)
	}

	if len(fw.lastMessages) != 1 {
		t.Fatalf("ожидали 1 записанное сообщение, но получили %d", len(fw.lastMessages))
	}
	if string(fw.lastMessages[0].Key) != evt.CartID {
		t.Errorf("ключ сообщения должен быть id корзины, получили %q", fw.lastMessages[0].Key)
	}

	var decoded Event
	if err := json.Unmarshal(fw.lastMessages[0].Value, &decoded); err != nil {
		t.Fatalf("не удалось разобрать записанное сообщение как JSON: %v", err)
	}
	if decoded.CartID != evt.CartID {
		t.Errorf("CartID не совпал: ожидали %q, получили %q", evt.CartID, decoded.CartID)
	}
	if decoded.Type != evt.Type {
		t.Errorf("Type не совпал: ожидали %q, получили %q", evt.Type, decoded.Type)
	}
	if decoded.Item != evt.Item || decoded.Quantity != evt.Quantity {
		t.Errorf("товар не совпал: ожидали %s x%d, получили %s x%d", evt.Item, evt.Quantity, decoded.Item, decoded.Quantity)
	}
}

func TestProducer_SendEvent_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mw := NewMockWriterInterface(ctrl)
	mw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))

	p := &Producer{
		Writer: mw,
		Logger: zapTestLogger(t),
	}

	evt := Event{CartID: "cart-2", Type: EventTypeCheckout, Total: 12.5}
	if err := p.SendEvent(context.Background(), evt); err == nil {
		t.Fatalf("ожидали ошибку от SendEvent, но получили nil")
	}
}

func TestProducer_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mw := NewMockWriterInterface(ctrl)
	mw.EXPECT().Close().Return(nil)

	p := &Producer{Writer: mw, Logger: zapTestLogger(t)}
	if err := p.Close(); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
}

func TestNopProducer(t *testing.T) {
	var p EventProducer = NopProducer{}
	if err := p.SendEvent(context.Background(), Event{}); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}
