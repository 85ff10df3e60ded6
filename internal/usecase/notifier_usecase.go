package usecase

import (
	"context"
	"fmt"

	"foodorder/internal/domain/service"
	"foodorder/internal/errors"
)

// NotificationResult summarizes one processed order event.
type NotificationResult struct {
	Devices       int
	Sent          int
	Failed        int
	InvalidTokens int
}

// NotifierUsecase turns order events into pushes to the customer's devices.
type NotifierUsecase interface {
	// ProcessOrderEvent notifies the customer of an order event.
	// Errors wrapped by NewRetryableError should be redelivered by the broker.
	ProcessOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)
}

// retryableError wraps an error to indicate the message should be redelivered
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError wraps an error as retryable
func NewRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError checks if an error is retryable
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}
