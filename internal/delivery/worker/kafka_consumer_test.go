package worker

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tracker/config"
	"tracker/internal/delivery/worker/handler"
	"tracker/internal/domain/service"
	mockRepo "tracker/internal/mocks/repository"
	mockService "tracker/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// fakeReader hands out queued messages and blocks once they run out.
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
	closed    bool
	fetchErr  error
	commitErr error
	fetched   int
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	if f.fetchErr != nil {
		err := f.fetchErr
		f.mu.Unlock()

		return kafka.Message{}, err
	}
	if len(f.messages) > 0 {
		msg := f.messages[0]
		f.messages = f.messages[1:]
		f.fetched++
		f.mu.Unlock()

		return msg, nil
	}
	f.mu.Unlock()

	<-ctx.Done()

	return kafka.Message{}, ctx.Err()
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = append(f.committed, msgs...)

	return nil
}

func (f *fakeReader) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true

	return nil
}

func (f *fakeReader) fetchedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.fetched
}

func (f *fakeReader) committedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.committed)
}

func eventMessage(t *testing.T, offset int64, recipient uuid.UUID) kafka.Message {
	t.Helper()

	value, err := json.Marshal(service.NotificationEvent{
		EventID:      uuid.NewString(),
		Type:         "status_update",
		DeliveryID:   uuid.NewString(),
		Title:        "Delivered",
		Body:         "Your order has arrived",
		RecipientIDs: []string{recipient.String()},
	})
	require.NoError(t, err)

	return kafka.Message{
		Offset:  offset,
		Value:   value,
		Headers: []kafka.Header{{Key: "request_id", Value: []byte("req-1")}},
	}
}

func newTestConsumer(t *testing.T, reader messageReader) (*kafkaConsumer, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := handler.NewNotificationProcessor(handler.NotificationProcessorParams{
		Logger:           logger,
		NotificationSvc:  mockService.NewMockNotificationService(t),
		DeviceRepo:       deviceRepo,
		NotificationRepo: mockRepo.NewMockNotificationRepository(t),
	})

	consumer := newKafkaConsumer(reader, processor, logger)
	consumer.retryBackoff = time.Millisecond

	return consumer, deviceRepo
}

func TestKafkaConsumer_ProcessesAndCommits(t *testing.T) {
	recipient := uuid.New()
	reader := &fakeReader{messages: []kafka.Message{
		eventMessage(t, 1, recipient),
		{Offset: 2, Value: []byte("{broken")},
		eventMessage(t, 3, recipient),
	}}
	consumer, deviceRepo := newTestConsumer(t, reader)

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{recipient}).
		Return(nil, nil).Twice()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Serve(ctx) }()

	require.Eventually(t, func() bool { return reader.committedCount() == 3 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestKafkaConsumer_RetriesRetryableFailures(t *testing.T) {
	recipient := uuid.New()
	reader := &fakeReader{messages: []kafka.Message{eventMessage(t, 1, recipient)}}
	consumer, deviceRepo := newTestConsumer(t, reader)

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Times(defaultMaxAttempts)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Serve(ctx) }()

	require.Eventually(t, func() bool { return reader.committedCount() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestKafkaConsumer_StopEndsServe(t *testing.T) {
	reader := &fakeReader{}
	consumer, _ := newTestConsumer(t, reader)

	done := make(chan error, 1)
	go func() { done <- consumer.Serve(context.Background()) }()

	require.NoError(t, consumer.stop(context.Background()))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("serve did not return after stop")
	}
	assert.True(t, reader.closed)
}

func TestKafkaConsumer_FetchError(t *testing.T) {
	reader := &fakeReader{fetchErr: errors.New("broker unreachable")}
	consumer, _ := newTestConsumer(t, reader)

	err := consumer.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unreachable")
}

func TestHeaderValue(t *testing.T) {
	headers := []kafka.Header{{Key: "a", Value: []byte("1")}, {Key: "request_id", Value: []byte("abc")}}

	assert.Equal(t, "abc", headerValue(headers, "request_id"))
	assert.Empty(t, headerValue(headers, "missing"))
}

func TestKafkaConsumer_WithoutGroupSkipsCommit(t *testing.T) {
	recipient := uuid.New()
	reader := &fakeReader{
		messages:  []kafka.Message{eventMessage(t, 1, recipient), eventMessage(t, 2, recipient)},
		commitErr: errors.New("unavailable when GroupID is not set"),
	}
	consumer, deviceRepo := newTestConsumer(t, reader)
	consumer.commit = false

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{recipient}).
		Return(nil, nil).Twice()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Serve(ctx) }()

	require.Eventually(t, func() bool { return reader.fetchedCount() == 2 }, time.Second, 5*time.Millisecond)

	select {
	case err := <-done:
		t.Fatalf("consumer stopped early: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
	assert.Zero(t, reader.committedCount())
}

func TestKafkaConsumer_CommitFailureStopsGroupConsumer(t *testing.T) {
	recipient := uuid.New()
	reader := &fakeReader{
		messages:  []kafka.Message{eventMessage(t, 1, recipient)},
		commitErr: errors.New("coordinator not available"),
	}
	consumer, deviceRepo := newTestConsumer(t, reader)

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, []uuid.UUID{recipient}).
		Return(nil, nil).Once()

	err := consumer.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit message")
}

func TestNewKafkaConsumer_CommitsOnlyWithGroup(t *testing.T) {
	tests := []struct {
		name       string
		groupID    string
		wantCommit bool
	}{
		{"consumer group", "tracker-notify", true},
		{"plain topic reader", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			cfg := &config.Config{Kafka: &config.KafkaConfig{
				Brokers: []string{"localhost:9092"},
				Topic:   "delivery-notifications",
				GroupID: tt.groupID,
			}}

			consumer, err := NewKafkaConsumer(KafkaConsumerParams{
				Lc:     lc,
				Cfg:    cfg,
				Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCommit, consumer.(*kafkaConsumer).commit)

			lc.RequireStart().RequireStop()
		})
	}
}
