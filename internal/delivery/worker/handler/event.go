package handler

import (
	"context"
	"log/slog"

	deliverycontext "foodorder/internal/delivery/context"
	"foodorder/internal/domain/service"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
)

// processEvent runs one order event through the notifier with a request-scoped logger.
// The request ID is the first non-empty of the transport candidates, the event field,
// the incoming context, or a fresh UUID.
func processEvent(ctx context.Context, logger *slog.Logger, notifierUC usecase.NotifierUsecase, event *service.OrderEvent, requestIDs ...string) error {
	requestID := resolveRequestID(ctx, event, requestIDs...)
	reqLogger := logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	result, err := notifierUC.ProcessOrderEvent(ctx, event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
			slog.Bool("retryable", usecase.IsRetryableError(err)),
		)

		return err
	}

	reqLogger.Info("[Worker] Order event processed",
		slog.String("event_id", event.EventID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return nil
}

func resolveRequestID(ctx context.Context, event *service.OrderEvent, candidates ...string) string {
	for _, id := range candidates {
		if id != "" {
			return id
		}
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
