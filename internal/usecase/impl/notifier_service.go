package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "foodorder/internal/delivery/context"
	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/repository"
	"foodorder/internal/domain/service"
	"foodorder/internal/usecase"
	"foodorder/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Firebase batch size limit
const firebaseBatchSize = 500

// notifierService implements the NotifierUsecase interface.
type notifierService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotifierServiceParams holds dependencies for NotifierService, injected by Fx.
type NotifierServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotifierService is the constructor for notifierService.
func NewNotifierService(params NotifierServiceParams) usecase.NotifierUsecase {
	return &notifierService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (s *notifierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ProcessOrderEvent pushes the event to every active device of the customer and
// prunes tokens that Firebase reports as invalid.
func (s *notifierService) ProcessOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	if event == nil {
		return nil, errors.New("order event is nil")
	}

	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid customer id %q", event.CustomerID)
	}

	title, body, ok := orderEventMessage(event)
	if !ok {
		return nil, errors.Errorf("unsupported order event type %q", event.Type)
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, customerID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to find customer devices"))
	}

	result := &usecase.NotificationResult{Devices: len(devices)}
	if len(devices) == 0 {
		s.log(ctx).Debug("Customer has no active devices", slog.String("customerID", event.CustomerID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"event_type":    event.Type,
		"order_id":      event.OrderID,
		"restaurant_id": event.RestaurantID,
		"status":        event.Status,
	}

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		end := min(i+firebaseBatchSize, len(tokens))
		batch := tokens[i:end]

		sent, failed, batchInvalid, err := s.notificationSvc.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			s.log(ctx).Error("Failed to send notification batch",
				slog.String("orderID", event.OrderID),
				slog.Int("batchSize", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		deleted, err := s.deviceRepo.DeleteDevicesByTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).Warn("Failed to prune invalid tokens", slog.Any("error", err))
		}
		result.InvalidTokens = int(deleted)
	}

	s.log(ctx).Info("Order event processed",
		slog.String("eventID", event.EventID),
		slog.String("eventType", event.Type),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", result.InvalidTokens),
	)

	return result, nil
}

// orderEventMessage returns the push title and body for an event.
func orderEventMessage(event *service.OrderEvent) (title, body string, ok bool) {
	restaurant := event.RestaurantName
	if restaurant == "" {
		restaurant = "the restaurant"
	}

	switch event.Type {
	case service.OrderEventCreated:
		return "Order placed",
			fmt.Sprintf("Your order at %s for %s was received.", restaurant, util.FormatCurrency(event.TotalAmount)),
			true
	case service.OrderEventStatusChanged:
		return "Order update", statusMessage(entity.OrderStatus(event.Status), restaurant), true
	default:
		return "", "", false
	}
}

func statusMessage(status entity.OrderStatus, restaurant string) string {
	switch status {
	case entity.OrderStatusConfirmed:
		return fmt.Sprintf("%s confirmed your order.", restaurant)
	case entity.OrderStatusPreparing:
		return fmt.Sprintf("%s is preparing your order.", restaurant)
	case entity.OrderStatusOutForDelivery:
		return "Your order is out for delivery."
	case entity.OrderStatusDelivered:
		return "Your order was delivered. Enjoy your meal!"
	case entity.OrderStatusCancelled:
		return fmt.Sprintf("%s cancelled your order.", restaurant)
	default:
		return fmt.Sprintf("Your order is now %s.", status)
	}
}
