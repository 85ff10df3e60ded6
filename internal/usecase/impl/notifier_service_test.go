package impl

import (
	"context"
	"fmt"
	"testing"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/service"
	mockRepo "foodorder/internal/mocks/repository"
	mockSvc "foodorder/internal/mocks/service"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notifierServiceFixtures holds all test dependencies for notifier service tests.
type notifierServiceFixtures struct {
	service         usecase.NotifierUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestNotifierService(t *testing.T) notifierServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	service := NewNotifierService(NotifierServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return notifierServiceFixtures{
		service:         service,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func newStatusEvent(customerID uuid.UUID, status entity.OrderStatus) *service.OrderEvent {
	return &service.OrderEvent{
		EventID:        uuid.NewString(),
		Type:           service.OrderEventStatusChanged,
		OrderID:        uuid.NewString(),
		CustomerID:     customerID.String(),
		RestaurantID:   uuid.NewString(),
		RestaurantName: "Spice Route",
		Status:         status.String(),
	}
}

func TestNotifierService_ProcessOrderEvent_SendsAndPrunes(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	customerID := uuid.New()
	event := newStatusEvent(customerID, entity.OrderStatusPreparing)
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: customerID, FCMToken: "tok-1"},
		{ID: uuid.New(), UserID: customerID, FCMToken: "tok-2"},
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, customerID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, []string{"tok-1", "tok-2"}, "Order update", "Spice Route is preparing your order.",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["order_id"] == event.OrderID && data["status"] == "preparing"
			})).
		Return(1, 1, []string{"tok-2"}, nil)
	fx.deviceRepo.EXPECT().DeleteDevicesByTokens(ctx, []string{"tok-2"}).Return(int64(1), nil)

	result, err := fx.service.ProcessOrderEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{Devices: 2, Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestNotifierService_ProcessOrderEvent_NoDevices(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, customerID).Return(nil, nil)

	result, err := fx.service.ProcessOrderEvent(ctx, newStatusEvent(customerID, entity.OrderStatusConfirmed))
	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestNotifierService_ProcessOrderEvent_Batches(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	customerID := uuid.New()

	devices := make([]*entity.UserDevice, 0, firebaseBatchSize+20)
	for i := range firebaseBatchSize + 20 {
		devices = append(devices, &entity.UserDevice{FCMToken: fmt.Sprintf("tok-%d", i)})
	}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, customerID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
		Return(firebaseBatchSize, 0, nil, nil).Once()
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 20 }), mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).Once()

	result, err := fx.service.ProcessOrderEvent(ctx, newStatusEvent(customerID, entity.OrderStatusDelivered))
	require.NoError(t, err)
	assert.Equal(t, firebaseBatchSize, result.Sent)
	assert.Equal(t, 20, result.Failed)
}

func TestNotifierService_ProcessOrderEvent_StoreErrorIsRetryable(t *testing.T) {
	fx := createTestNotifierService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, customerID).Return(nil, errors.New("connection refused"))

	_, err := fx.service.ProcessOrderEvent(ctx, newStatusEvent(customerID, entity.OrderStatusConfirmed))
	require.Error(t, err)
	assert.True(t, usecase.IsRetryableError(err))
}

func TestNotifierService_ProcessOrderEvent_MalformedEvent(t *testing.T) {
	tests := []struct {
		name  string
		event *service.OrderEvent
	}{
		{name: "nil event"},
		{name: "bad customer id", event: &service.OrderEvent{Type: service.OrderEventCreated, CustomerID: "not-a-uuid"}},
		{name: "unknown type", event: &service.OrderEvent{Type: "order.refunded", CustomerID: uuid.NewString()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotifierService(t)

			_, err := fx.service.ProcessOrderEvent(context.Background(), tt.event)
			require.Error(t, err)
			assert.False(t, usecase.IsRetryableError(err))
		})
	}
}

func TestOrderEventMessage(t *testing.T) {
	title, body, ok := orderEventMessage(&service.OrderEvent{
		Type:           service.OrderEventCreated,
		RestaurantName: "Spice Route",
		TotalAmount:    12.5,
	})
	require.True(t, ok)
	assert.Equal(t, "Order placed", title)
	assert.Equal(t, "Your order at Spice Route for 12.50 was received.", body)

	_, body, ok = orderEventMessage(&service.OrderEvent{Type: service.OrderEventStatusChanged, Status: "cancelled"})
	require.True(t, ok)
	assert.Equal(t, "the restaurant cancelled your order.", body)
}
