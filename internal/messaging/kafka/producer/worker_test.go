package producer_test

import (
	"context"
	"testing"
	"time"

	"go-personnel/internal/messaging/kafka"
	kafkaMock "go-personnel/internal/messaging/kafka/mock"
	"go-personnel/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestProcessOutboxEvents_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().
		ListPending(gomock.Any(), 50).
		Return([]kafka.OutboxEvent{}, nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, repo, &kafkago.Writer{}, zap.NewNop(), 5*time.Millisecond)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		assert.Fail(t, "worker did not stop after cancellation")
	}
}
