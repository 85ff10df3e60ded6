package mongodb

import (
	"context"
	"time"

	"foodorder/internal/domain/entity"
	domainerrors "foodorder/internal/domain/errors"
	"foodorder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// deviceRepository implements the repository.DeviceRepository interface.
// Removed devices are deleted outright; the collection keeps no tombstones.
type deviceRepository struct {
	store
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *mongo.Database) repository.DeviceRepository {
	return &deviceRepository{store: store{db: db}}
}

// CreateDevice persists a new device for a customer.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	if err := stampNew(&device.ID, &device.CreatedAt, &device.UpdatedAt); err != nil {
		return err
	}

	if _, err := repo.collection(devicesCollection).InsertOne(repo.withSession(ctx), fromDeviceDomain(device)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var doc deviceDocument

	if err := repo.collection(devicesCollection).FindOne(repo.withSession(ctx), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&doc), nil
}

// FindDevicesByUser retrieves all devices for a user, newest first.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.find(ctx, bson.M{"user_id": userID.String()})
}

// FindActiveDevicesByUser retrieves the active devices for a user, newest first.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.find(ctx, bson.M{"user_id": userID.String(), "is_active": true})
}

// UpdateFCMToken updates the FCM token for a specific device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result, err := repo.collection(devicesCollection).UpdateOne(repo.withSession(ctx),
		bson.M{"_id": deviceID.String()},
		bson.M{"$set": bson.M{"fcm_token": fcmToken, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}
	if result.MatchedCount == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a device by its ID.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result, err := repo.collection(devicesCollection).DeleteOne(repo.withSession(ctx), bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete device")
	}
	if result.DeletedCount == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevicesByTokens removes every device holding one of the tokens.
func (repo *deviceRepository) DeleteDevicesByTokens(ctx context.Context, fcmTokens []string) (int64, error) {
	if len(fcmTokens) == 0 {
		return 0, nil
	}

	result, err := repo.collection(devicesCollection).DeleteMany(repo.withSession(ctx), bson.M{"fcm_token": bson.M{"$in": fcmTokens}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete devices by tokens")
	}

	return result.DeletedCount, nil
}

func (repo *deviceRepository) find(ctx context.Context, filter bson.M) ([]*entity.UserDevice, error) {
	var docs []*deviceDocument

	sort := bson.D{{Key: "created_at", Value: -1}}
	if err := findAll(repo.withSession(ctx), repo.collection(devicesCollection), filter, sort, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}

	devices := make([]*entity.UserDevice, 0, len(docs))
	for _, doc := range docs {
		devices = append(devices, toDeviceDomain(doc))
	}

	return devices, nil
}
