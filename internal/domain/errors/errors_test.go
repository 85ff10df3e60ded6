package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrCartEmpty.WrapMessage("checkout")

	assert.ErrorIs(t, wrapped, ErrCartEmpty)

	var appErr AppError
	require.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "CART_EMPTY", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("name is required")

	assert.Equal(t, "name is required", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create order", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)
}

func TestTaxonomyStatusCodes(t *testing.T) {
	tests := []struct {
		err  *BaseError
		want int
	}{
		{ErrInvalidRole, http.StatusBadRequest},
		{ErrMixedRestaurants, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrOrderOwnershipViolation, http.StatusForbidden},
		{ErrCartNotFound, http.StatusNotFound},
		{ErrRestaurantAlreadyExists, http.StatusConflict},
		{ErrInvalidStatusTransition, http.StatusConflict},
		{ErrDanglingMenuItem, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}
