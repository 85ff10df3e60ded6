package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "created to confirmed", from: OrderStatusCreated, to: OrderStatusConfirmed, want: true},
		{name: "confirmed to preparing", from: OrderStatusConfirmed, to: OrderStatusPreparing, want: true},
		{name: "preparing to out for delivery", from: OrderStatusPreparing, to: OrderStatusOutForDelivery, want: true},
		{name: "out for delivery to delivered", from: OrderStatusOutForDelivery, to: OrderStatusDelivered, want: true},
		{name: "created to cancelled", from: OrderStatusCreated, to: OrderStatusCancelled, want: true},
		{name: "out for delivery to cancelled", from: OrderStatusOutForDelivery, to: OrderStatusCancelled, want: true},
		{name: "skip confirmed", from: OrderStatusCreated, to: OrderStatusPreparing, want: false},
		{name: "backwards", from: OrderStatusPreparing, to: OrderStatusConfirmed, want: false},
		{name: "same status", from: OrderStatusConfirmed, to: OrderStatusConfirmed, want: false},
		{name: "delivered is terminal", from: OrderStatusDelivered, to: OrderStatusPreparing, want: false},
		{name: "cancelled is terminal", from: OrderStatusCancelled, to: OrderStatusConfirmed, want: false},
		{name: "delivered cannot be cancelled", from: OrderStatusDelivered, to: OrderStatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderStatusOutForDelivery.IsValid())
	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusCreated.IsTerminal())
	assert.Empty(t, OrderStatusDelivered.NextStatuses())
	assert.Equal(t, []OrderStatus{OrderStatusConfirmed, OrderStatusCancelled}, OrderStatusCreated.NextStatuses())
}

func TestRole_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "customer", want: true},
		{raw: "owner", want: true},
		{raw: "driver", want: false},
		{raw: "Owner", want: false},
		{raw: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			_, ok := ParseRole(tt.raw)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestRestaurant_ApplyDefaults(t *testing.T) {
	t.Parallel()

	restaurant := &Restaurant{Name: "Spice Hub", Cuisine: "Indian"}
	restaurant.ApplyDefaults()

	assert.Equal(t, DefaultRestaurantDescription, restaurant.Description)
	assert.Equal(t, "Indian", restaurant.Cuisine)
	assert.Equal(t, DefaultRestaurantRating, restaurant.Rating)
	assert.Equal(t, DefaultRestaurantDeliveryTime, restaurant.DeliveryTime)
	assert.True(t, restaurant.HasValidRating())

	restaurant.Rating = 5.5
	assert.False(t, restaurant.HasValidRating())
}
