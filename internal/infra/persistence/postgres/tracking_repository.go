package postgres

import (
	"context"
	"slices"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/geo"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// trackingRepository implements the repository.TrackingRepository interface.
type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository is the constructor for trackingRepository.
func NewTrackingRepository(db *gorm.DB) repository.TrackingRepository {
	return &trackingRepository{
		db: db,
	}
}

// InsertPing stores a new active ping. The delivery row lock serializes
// concurrent pings of one delivery, so deactivation and insert never interleave.
func (repo *trackingRepository) InsertPing(ctx context.Context, ping *entity.LocationPing) error {
	pingM := fromPingDomain(ping)
	pingM.IsActive = true

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockDelivery(tx, ping.DeliveryID); err != nil {
			return err
		}

		if err := tx.Model(&model.LocationPingModel{}).
			Where("delivery_id = ? AND is_active = ?", ping.DeliveryID, true).
			Update("is_active", false).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate previous ping")
		}

		if err := tx.Create(pingM).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrDeliveryNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to insert location ping")
		}

		return nil
	})
	if err != nil {
		return err
	}

	ping.ID = pingM.ID
	ping.IsActive = true

	return nil
}

// GetActivePing returns the current position of the delivery's courier.
func (repo *trackingRepository) GetActivePing(ctx context.Context, deliveryID uuid.UUID) (*entity.LocationPing, error) {
	var pingM model.LocationPingModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_id = ? AND is_active = ?", deliveryID, true).
		Take(&pingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPingNotFound
		}

		return nil, errors.Wrap(err, "failed to find active ping")
	}

	return toPingDomain(&pingM), nil
}

// ListPings returns the newest limit pings in chronological order.
func (repo *trackingRepository) ListPings(ctx context.Context, deliveryID uuid.UUID, limit int) ([]*entity.LocationPing, error) {
	var pingModels []*model.LocationPingModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("recorded_at DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&pingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list location pings")
	}

	slices.Reverse(pingModels)

	pings := make([]*entity.LocationPing, 0, len(pingModels))
	for _, pingM := range pingModels {
		pings = append(pings, toPingDomain(pingM))
	}

	return pings, nil
}

// CreateRoute stores the first route of a delivery.
func (repo *trackingRepository) CreateRoute(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRouteAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeliveryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create route")
	}

	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// UpsertRoute replaces the whole route of a delivery in one statement.
func (repo *trackingRepository) UpsertRoute(ctx context.Context, route *entity.Route) error {
	routeM := fromRouteDomain(route)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "delivery_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"pickup_latitude",
				"pickup_longitude",
				"delivery_latitude",
				"delivery_longitude",
				"route_geometry",
				"distance_meters",
				"estimated_duration_seconds",
				"travel_mode",
				"provider",
				"provider_route_id",
				"updated_at",
			}),
		}).
		Create(routeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeliveryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert route")
	}

	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// GetRoute retrieves the route of a delivery.
func (repo *trackingRepository) GetRoute(ctx context.Context, deliveryID uuid.UUID) (*entity.Route, error) {
	var routeM model.RouteModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Take(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route")
	}

	return toRouteDomain(&routeM), nil
}

// AppendStatusHistory adds an immutable history entry.
func (repo *trackingRepository) AppendStatusHistory(ctx context.Context, entry *entity.StatusHistoryEntry) error {
	entryM := fromStatusHistoryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeliveryNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append status history")
	}

	entry.ID = entryM.ID

	return nil
}

// GetStatusHistory returns the full audit trail, newest first.
func (repo *trackingRepository) GetStatusHistory(ctx context.Context, deliveryID uuid.UUID) ([]*entity.StatusHistoryEntry, error) {
	var entryModels []*model.StatusHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("recorded_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find status history")
	}

	entries := make([]*entity.StatusHistoryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toStatusHistoryDomain(entryM))
	}

	return entries, nil
}

// LatestStatusEntry returns the newest history entry, or nil when there is none.
func (repo *trackingRepository) LatestStatusEntry(ctx context.Context, deliveryID uuid.UUID) (*entity.StatusHistoryEntry, error) {
	var entryModels []*model.StatusHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("recorded_at DESC").
		Limit(1).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest status entry")
	}

	if len(entryModels) == 0 {
		return nil, nil
	}

	return toStatusHistoryDomain(entryModels[0]), nil
}

// GetDelivery retrieves a delivery without locking it.
func (repo *trackingRepository) GetDelivery(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", deliveryID).
		Take(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// ListDeliveriesByCourier returns a courier's deliveries by assignment time.
// Rows never assigned sort last.
func (repo *trackingRepository) ListDeliveriesByCourier(ctx context.Context, courierID uuid.UUID, limit int) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("courier_id = ?", courierID).
		Order("assigned_at DESC NULLS LAST").
		Order("created_at DESC").
		Limit(limit).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courier deliveries")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, toDeliveryDomain(deliveryM))
	}

	return deliveries, nil
}

// GetDeliveryForUpdate retrieves a delivery with SELECT ... FOR UPDATE.
// It must run inside a transaction for the lock to outlive the statement.
func (repo *trackingRepository) GetDeliveryForUpdate(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, error) {
	return lockDelivery(repo.db.WithContext(ctx), deliveryID)
}

// UpdateDeliveryStatus writes the status and any lifecycle timestamps that are set.
func (repo *trackingRepository) UpdateDeliveryStatus(ctx context.Context, deliveryID uuid.UUID, update repository.DeliveryStatusUpdate) error {
	values := map[string]interface{}{
		"status":     string(update.Status),
		"updated_at": time.Now().UTC(),
	}
	if update.AssignedAt != nil {
		values["assigned_at"] = *update.AssignedAt
	}
	if update.PickedUpAt != nil {
		values["picked_up_at"] = *update.PickedUpAt
	}
	if update.DeliveredAt != nil {
		values["delivered_at"] = *update.DeliveredAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryModel{}).
		Where("id = ?", deliveryID).
		Updates(values)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("status rejected by database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update delivery status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

func lockDelivery(db *gorm.DB, deliveryID uuid.UUID) (*entity.Delivery, error) {
	var deliveryM model.DeliveryModel

	if err := db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", deliveryID).
		Take(&deliveryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeliveryNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock delivery")
	}

	return toDeliveryDomain(&deliveryM), nil
}

// --- Mapper Functions ---

// toDeliveryDomain converts a GORM DeliveryModel to a domain Delivery entity.
func toDeliveryDomain(data *model.DeliveryModel) *entity.Delivery {
	if data == nil {
		return nil
	}

	return &entity.Delivery{
		ID:              data.ID,
		OrderID:         data.OrderID,
		CourierID:       data.CourierID,
		CustomerID:      data.CustomerID,
		StoreOwnerID:    data.StoreOwnerID,
		Status:          entity.DeliveryStatus(data.Status),
		PickupAddress:   data.PickupAddress,
		DeliveryAddress: data.DeliveryAddress,
		PickupLat:       data.PickupLat,
		PickupLng:       data.PickupLng,
		DropoffLat:      data.DropoffLat,
		DropoffLng:      data.DropoffLng,
		DeliveryFee:     data.DeliveryFee,
		AssignedAt:      data.AssignedAt,
		PickedUpAt:      data.PickedUpAt,
		DeliveredAt:     data.DeliveredAt,
		CreatedAt:       data.CreatedAt,
	}
}

// fromDeliveryDomain converts a domain Delivery entity to a GORM DeliveryModel.
func fromDeliveryDomain(data *entity.Delivery) *model.DeliveryModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryModel{
		ID:              data.ID,
		OrderID:         data.OrderID,
		CourierID:       data.CourierID,
		CustomerID:      data.CustomerID,
		StoreOwnerID:    data.StoreOwnerID,
		Status:          string(data.Status),
		PickupAddress:   data.PickupAddress,
		DeliveryAddress: data.DeliveryAddress,
		PickupLat:       data.PickupLat,
		PickupLng:       data.PickupLng,
		DropoffLat:      data.DropoffLat,
		DropoffLng:      data.DropoffLng,
		DeliveryFee:     data.DeliveryFee,
		AssignedAt:      data.AssignedAt,
		PickedUpAt:      data.PickedUpAt,
		DeliveredAt:     data.DeliveredAt,
		CreatedAt:       data.CreatedAt,
	}
}

func toPingDomain(data *model.LocationPingModel) *entity.LocationPing {
	return &entity.LocationPing{
		ID:         data.ID,
		DeliveryID: data.DeliveryID,
		CourierID:  data.CourierID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Heading:    data.Heading,
		Speed:      data.Speed,
		Accuracy:   data.Accuracy,
		RecordedAt: data.RecordedAt,
		IsActive:   data.IsActive,
	}
}

func fromPingDomain(data *entity.LocationPing) *model.LocationPingModel {
	return &model.LocationPingModel{
		ID:         data.ID,
		DeliveryID: data.DeliveryID,
		CourierID:  data.CourierID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Heading:    data.Heading,
		Speed:      data.Speed,
		Accuracy:   data.Accuracy,
		RecordedAt: data.RecordedAt,
		IsActive:   data.IsActive,
	}
}

func toRouteDomain(data *model.RouteModel) *entity.Route {
	return &entity.Route{
		ID:              data.ID,
		DeliveryID:      data.DeliveryID,
		PickupLat:       data.PickupLat,
		PickupLng:       data.PickupLng,
		DropoffLat:      data.DropoffLat,
		DropoffLng:      data.DropoffLng,
		Geometry:        data.Geometry,
		DistanceMeters:  data.DistanceMeters,
		DurationSeconds: data.DurationSeconds,
		TravelMode:      geo.ParseTravelMode(data.TravelMode),
		Provider:        data.Provider,
		ProviderRouteID: data.ProviderRouteID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromRouteDomain(data *entity.Route) *model.RouteModel {
	return &model.RouteModel{
		ID:              data.ID,
		DeliveryID:      data.DeliveryID,
		PickupLat:       data.PickupLat,
		PickupLng:       data.PickupLng,
		DropoffLat:      data.DropoffLat,
		DropoffLng:      data.DropoffLng,
		Geometry:        data.Geometry,
		DistanceMeters:  data.DistanceMeters,
		DurationSeconds: data.DurationSeconds,
		TravelMode:      string(data.TravelMode),
		Provider:        data.Provider,
		ProviderRouteID: data.ProviderRouteID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toStatusHistoryDomain(data *model.StatusHistoryModel) *entity.StatusHistoryEntry {
	return &entity.StatusHistoryEntry{
		ID:          data.ID,
		DeliveryID:  data.DeliveryID,
		Status:      entity.DeliveryStatus(data.Status),
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		UpdatedBy:   data.UpdatedBy,
		RecordedAt:  data.RecordedAt,
		Metadata:    data.Metadata,
	}
}

func fromStatusHistoryDomain(data *entity.StatusHistoryEntry) *model.StatusHistoryModel {
	return &model.StatusHistoryModel{
		ID:          data.ID,
		DeliveryID:  data.DeliveryID,
		Status:      string(data.Status),
		Description: data.Description,
		Latitude:    data.Latitude,
		Longitude:   data.Longitude,
		UpdatedBy:   data.UpdatedBy,
		RecordedAt:  data.RecordedAt,
		Metadata:    data.Metadata,
	}
}
