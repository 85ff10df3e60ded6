package postgres

import (
	"context"
	"testing"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDevice(userID uuid.UUID, token, deviceID string) *entity.UserDevice {
	return &entity.UserDevice{
		UserID:   userID,
		FCMToken: token,
		DeviceID: deviceID,
		Platform: entity.PlatformAndroid,
		IsActive: true,
	}
}

func TestDeviceRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(newTestDB(t))
	userID := uuid.New()

	device := newTestDevice(userID, "token-1", "pixel-8")
	require.NoError(t, repo.CreateDevice(ctx, device))
	assert.NotEqual(t, uuid.Nil, device.ID)

	require.NoError(t, repo.UpdateFCMToken(ctx, device.ID, "token-2"))

	found, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, "token-2", found.FCMToken)

	active, err := repo.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	require.NoError(t, repo.DeleteDevice(ctx, device.ID))
	_, err = repo.FindDeviceByID(ctx, device.ID)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.DeleteDevice(ctx, device.ID), repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.UpdateFCMToken(ctx, uuid.New(), "x"), repository.ErrDeviceNotFound)
}

func TestDeviceRepository_DeleteDevicesByTokens(t *testing.T) {
	ctx := context.Background()
	repo := NewDeviceRepository(newTestDB(t))
	userID := uuid.New()

	require.NoError(t, repo.CreateDevice(ctx, newTestDevice(userID, "stale-1", "a")))
	require.NoError(t, repo.CreateDevice(ctx, newTestDevice(userID, "stale-2", "b")))
	require.NoError(t, repo.CreateDevice(ctx, newTestDevice(userID, "fresh", "c")))

	deleted, err := repo.DeleteDevicesByTokens(ctx, []string{"stale-1", "stale-2", "unknown"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.FindDevicesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].FCMToken)

	none, err := repo.DeleteDevicesByTokens(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, none)
}
