package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodorder/config"
	"foodorder/internal/delivery/worker/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type recordingAcknowledger struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *recordingAcknowledger) Ack(bool) error {
	a.acked = true

	return nil
}

func (a *recordingAcknowledger) Nack(_, requeue bool) error {
	a.nacked = true
	a.requeued = requeue

	return nil
}

func TestSettle(t *testing.T) {
	tests := []struct {
		disposition handler.Disposition
		want        recordingAcknowledger
	}{
		{disposition: handler.DispositionAck, want: recordingAcknowledger{acked: true}},
		{disposition: handler.DispositionRequeue, want: recordingAcknowledger{nacked: true, requeued: true}},
		{disposition: handler.DispositionReject, want: recordingAcknowledger{nacked: true}},
	}

	for _, tt := range tests {
		t.Run(tt.disposition.String(), func(t *testing.T) {
			var ack recordingAcknowledger

			require.NoError(t, settle(&ack, tt.disposition))
			assert.Equal(t, tt.want, ack)
		})
	}
}

func TestNewConsumer_DisabledWithoutRabbitMQ(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}

	consumer, err := NewConsumer(ConsumerParams{
		Lc:     fxtest.NewLifecycle(t),
		Cfg:    cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	assert.NoError(t, consumer.Serve(context.Background()))
}
