package impl

import (
	"context"
	"log/slog"
	"time"

	"tracker/config"
	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/geo"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"
	"tracker/internal/domain/statemachine"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTrailLimit = 500
	maxTrailLimit     = 5000

	defaultNotificationLogLimit = 100
	maxNotificationLogLimit     = 1000

	defaultCourierDeliveryLimit = 50
	maxCourierDeliveryLimit     = 200
)

// trackingService implements the TrackingUsecase interface.
type trackingService struct {
	txManager        repository.TransactionManager
	trackingRepo     repository.TrackingRepository
	notificationRepo repository.NotificationRepository
	routing          usecase.RoutingUsecase
	machine          *statemachine.Machine
	broadcaster      service.Broadcaster
	dispatcher       service.NotificationDispatcher
	travelMode       geo.TravelMode
	logger           *slog.Logger
	now              func() time.Time
}

// TrackingServiceParams holds dependencies for TrackingService, injected by Fx.
type TrackingServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	TrackingRepo     repository.TrackingRepository
	NotificationRepo repository.NotificationRepository
	Routing          usecase.RoutingUsecase
	Machine          *statemachine.Machine
	Broadcaster      service.Broadcaster
	Dispatcher       service.NotificationDispatcher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewTrackingService is the constructor for trackingService.
func NewTrackingService(params TrackingServiceParams) usecase.TrackingUsecase {
	mode := geo.ModeDriving
	if params.Config != nil && params.Config.Routing != nil {
		mode = geo.ParseTravelMode(params.Config.Routing.DefaultMode)
	}

	machine := params.Machine
	if machine == nil {
		machine = statemachine.New()
	}

	return &trackingService{
		txManager:        params.TxManager,
		trackingRepo:     params.TrackingRepo,
		notificationRepo: params.NotificationRepo,
		routing:          params.Routing,
		machine:          machine,
		broadcaster:      params.Broadcaster,
		dispatcher:       params.Dispatcher,
		travelMode:       mode,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *trackingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitializeTracking plans the route between pickup and dropoff, then stores it
// together with the first assigned history entry.
func (srv *trackingService) InitializeTracking(ctx context.Context, deliveryID uuid.UUID, actor usecase.Actor) (*usecase.TrackingInitialization, error) {
	delivery, err := srv.loadDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if !actor.IsDispatcher() && !delivery.IsCourier(actor.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the courier or a dispatcher may start tracking")
	}
	if delivery.Status.IsTerminal() {
		return nil, errors.Wrapf(domainerrors.ErrDeliveryTerminal, "delivery is %s", delivery.Status)
	}
	if delivery.CourierID == nil {
		return nil, errors.WithStack(domainerrors.ErrCourierNotAssigned)
	}

	pickup, dropoff, err := endpoints(delivery)
	if err != nil {
		return nil, err
	}

	if _, err := srv.trackingRepo.GetRoute(ctx, deliveryID); err == nil {
		return nil, errors.WithStack(domainerrors.ErrDeliveryAlreadyInitialized)
	} else if !errors.Is(err, repository.ErrRouteNotFound) {
		return nil, persistenceError(err, "failed to check existing route")
	}

	plan := srv.routing.CalculateRoute(ctx, pickup, dropoff, srv.travelMode)
	now := srv.now().UTC()
	route := newRoute(deliveryID, pickup, dropoff, plan, now)

	var result *statemachine.Result
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewTrackingRepository()

		if err := repo.CreateRoute(ctx, route); err != nil {
			return errors.Wrap(err, "failed to create route")
		}

		var err error
		result, err = srv.machine.Initialize(ctx, repo, statemachine.Command{
			DeliveryID:  deliveryID,
			ActorID:     &actor.UserID,
			Description: "Courier assigned, tracking started",
		})

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to initialize tracking", slog.String("delivery_id", deliveryID.String()), slog.Any("error", err))

		return nil, srv.transitionError(err, "failed to initialize tracking")
	}

	view := newRouteView(route)
	srv.log(ctx).Info("Tracking initialized",
		slog.String("delivery_id", deliveryID.String()),
		slog.Int("distance_meters", route.DistanceMeters),
		slog.String("provider", route.Provider),
		slog.Bool("fallback", plan.Fallback),
	)

	stakeholders := result.Stakeholders
	srv.broadcast(ctx, stakeholders, entity.MessageRouteUpdate, routePayload(delivery, view, now))
	if result.Changed {
		srv.broadcast(ctx, stakeholders, entity.MessageStatusUpdate, statusPayload(result.Delivery, result.Entry))
	}
	if result.Delivery.CourierID != nil {
		srv.dispatch(ctx, service.DeliveryNotification{
			Type:       entity.MessageRouteUpdate,
			Delivery:   result.Delivery,
			Status:     result.Delivery.Status,
			Recipients: []uuid.UUID{*result.Delivery.CourierID},
		})
	}

	return &usecase.TrackingInitialization{
		Delivery: result.Delivery,
		Route:    view,
		Entry:    result.Entry,
		Fallback: plan.Fallback,
	}, nil
}

// ReportLocation stores a courier ping and pushes the refreshed ETA to every stakeholder.
func (srv *trackingService) ReportLocation(ctx context.Context, update usecase.LocationUpdate) (*usecase.LocationReport, error) {
	point := geo.NewPoint(update.Latitude, update.Longitude)
	if err := validatePoints(point); err != nil {
		return nil, err
	}

	delivery, err := srv.loadDelivery(ctx, update.DeliveryID)
	if err != nil {
		return nil, err
	}
	if !delivery.IsCourier(update.CourierID) {
		return nil, errors.WithStack(domainerrors.ErrCourierMismatch)
	}
	if delivery.Status.IsTerminal() {
		return nil, errors.Wrapf(domainerrors.ErrDeliveryTerminal, "delivery is %s", delivery.Status)
	}

	recordedAt := srv.now().UTC()
	if update.RecordedAt != nil {
		recordedAt = update.RecordedAt.UTC()
	}

	ping := &entity.LocationPing{
		ID:         uuid.New(),
		DeliveryID: update.DeliveryID,
		CourierID:  update.CourierID,
		Latitude:   update.Latitude,
		Longitude:  update.Longitude,
		Heading:    update.Heading,
		Speed:      update.Speed,
		Accuracy:   update.Accuracy,
		RecordedAt: recordedAt,
		IsActive:   true,
	}
	if err := srv.trackingRepo.InsertPing(ctx, ping); err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeliveryNotFound, "failed to insert ping")
		}

		return nil, persistenceError(err, "failed to insert location ping")
	}

	// ETA always follows the newest active row, which may belong to a concurrent ping.
	active, err := srv.trackingRepo.GetActivePing(ctx, update.DeliveryID)
	switch {
	case errors.Is(err, repository.ErrPingNotFound):
		active = ping
	case err != nil:
		return nil, persistenceError(err, "failed to read active ping")
	}

	report := &usecase.LocationReport{Ping: active}
	route, err := srv.trackingRepo.GetRoute(ctx, update.DeliveryID)
	switch {
	case err == nil:
		current := active.Point()
		eta := srv.routing.RecomputeETA(route, &current)
		report.ETA = &eta
	case !errors.Is(err, repository.ErrRouteNotFound):
		srv.log(ctx).Warn("Failed to load route for ETA", slog.String("delivery_id", update.DeliveryID.String()), slog.Any("error", err))
	}

	payload := entity.LocationUpdatePayload{
		DeliveryID: delivery.ID,
		OrderID:    delivery.OrderID,
		Latitude:   active.Latitude,
		Longitude:  active.Longitude,
		Heading:    active.Heading,
		Speed:      active.Speed,
		Timestamp:  active.RecordedAt,
	}
	if report.ETA != nil {
		payload.ETAMinutes = &report.ETA.Minutes
		payload.ETAArrival = &report.ETA.Arrival
		payload.RemainingDistanceKm = &report.ETA.RemainingDistanceKm
	}
	srv.broadcast(ctx, statemachine.Stakeholders(delivery, delivery.Status), entity.MessageLocationUpdate, payload)

	return report, nil
}

// AdvanceStatus applies a status transition and notifies the stakeholders of the change.
func (srv *trackingService) AdvanceStatus(ctx context.Context, change usecase.StatusChange) (*usecase.StatusChangeResult, error) {
	if !change.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status %q", change.Status)
	}
	if (change.Latitude == nil) != (change.Longitude == nil) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "latitude and longitude must be given together")
	}
	if change.Latitude != nil {
		if err := validatePoints(geo.NewPoint(*change.Latitude, *change.Longitude)); err != nil {
			return nil, err
		}
	}

	delivery, err := srv.loadDelivery(ctx, change.DeliveryID)
	if err != nil {
		return nil, err
	}
	if !change.Actor.IsDispatcher() && !delivery.IsCourier(change.Actor.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the courier or a dispatcher may change the status")
	}

	var result *statemachine.Result
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		result, err = srv.machine.Apply(ctx, repoFactory.NewTrackingRepository(), statemachine.Command{
			DeliveryID:  change.DeliveryID,
			Target:      change.Status,
			ActorID:     &change.Actor.UserID,
			Description: change.Description,
			Latitude:    change.Latitude,
			Longitude:   change.Longitude,
			Metadata:    change.Metadata,
		})

		return err
	})
	if err != nil {
		return nil, srv.transitionError(err, "failed to advance status")
	}

	out := &usecase.StatusChangeResult{
		Delivery: result.Delivery,
		Previous: result.Previous,
		Entry:    result.Entry,
		Changed:  result.Changed,
	}
	if !result.Changed {
		srv.log(ctx).Debug("Status unchanged", slog.String("delivery_id", change.DeliveryID.String()), slog.String("status", string(change.Status)))

		return out, nil
	}

	srv.log(ctx).Info("Delivery status advanced",
		slog.String("delivery_id", change.DeliveryID.String()),
		slog.String("from", string(result.Previous)),
		slog.String("to", string(result.Delivery.Status)),
	)

	srv.broadcast(ctx, result.Stakeholders, entity.MessageStatusUpdate, statusPayload(result.Delivery, result.Entry))
	srv.dispatch(ctx, service.DeliveryNotification{
		Type:       entity.MessageStatusUpdate,
		Delivery:   result.Delivery,
		Status:     result.Delivery.Status,
		Recipients: result.Stakeholders,
	})

	return out, nil
}

// GetSnapshot returns the delivery, its active ping, route, history and current ETA.
func (srv *trackingService) GetSnapshot(ctx context.Context, deliveryID uuid.UUID, actor usecase.Actor) (*usecase.TrackingSnapshot, error) {
	delivery, err := srv.loadDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(delivery) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a stakeholder of this delivery")
	}

	snapshot := &usecase.TrackingSnapshot{Delivery: delivery}

	active, err := srv.trackingRepo.GetActivePing(ctx, deliveryID)
	switch {
	case err == nil:
		snapshot.ActivePing = active
	case !errors.Is(err, repository.ErrPingNotFound):
		return nil, persistenceError(err, "failed to read active ping")
	}

	route, err := srv.trackingRepo.GetRoute(ctx, deliveryID)
	switch {
	case err == nil:
		snapshot.Route = newRouteView(route)
	case !errors.Is(err, repository.ErrRouteNotFound):
		return nil, persistenceError(err, "failed to read route")
	}

	history, err := srv.trackingRepo.GetStatusHistory(ctx, deliveryID)
	if err != nil {
		return nil, persistenceError(err, "failed to read status history")
	}
	snapshot.StatusHistory = history

	if route != nil && !delivery.Status.IsTerminal() {
		var current *orb.Point
		if active != nil {
			p := active.Point()
			current = &p
		}
		eta := srv.routing.RecomputeETA(route, current)
		snapshot.ETA = &eta
	}

	return snapshot, nil
}

// GetLocationTrail exports the recorded path of the courier as a GeoJSON
// FeatureCollection: one LineString of the whole trail followed by one Point per ping.
func (srv *trackingService) GetLocationTrail(ctx context.Context, deliveryID uuid.UUID, actor usecase.Actor, limit int) (*geojson.FeatureCollection, error) {
	delivery, err := srv.loadDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if !actor.CanView(delivery) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a stakeholder of this delivery")
	}

	switch {
	case limit <= 0:
		limit = defaultTrailLimit
	case limit > maxTrailLimit:
		limit = maxTrailLimit
	}

	pings, err := srv.trackingRepo.ListPings(ctx, deliveryID, limit)
	if err != nil {
		return nil, persistenceError(err, "failed to list location pings")
	}

	fc := geojson.NewFeatureCollection()
	if len(pings) == 0 {
		return fc, nil
	}

	path := make(orb.LineString, 0, len(pings))
	points := make([]*geojson.Feature, 0, len(pings))
	for _, ping := range pings {
		path = append(path, ping.Point())

		f := geojson.NewFeature(ping.Point())
		f.ID = ping.ID.String()
		f.Properties["recorded_at"] = ping.RecordedAt.Format(time.RFC3339Nano)
		f.Properties["is_active"] = ping.IsActive
		if ping.Heading != nil {
			f.Properties["heading"] = *ping.Heading
		}
		if ping.Speed != nil {
			f.Properties["speed"] = *ping.Speed
		}
		if ping.Accuracy != nil {
			f.Properties["accuracy"] = *ping.Accuracy
		}
		points = append(points, f)
	}

	trail := geojson.NewFeature(path)
	trail.Properties["delivery_id"] = deliveryID.String()
	trail.Properties["ping_count"] = len(pings)
	trail.Properties["started_at"] = pings[0].RecordedAt.Format(time.RFC3339Nano)
	trail.Properties["ended_at"] = pings[len(pings)-1].RecordedAt.Format(time.RFC3339Nano)
	fc.Append(trail)
	for _, f := range points {
		fc.Append(f)
	}

	return fc, nil
}

// RecalculateRoute re-plans the route of an initialized delivery, keeping the
// id and creation time of the stored route.
func (srv *trackingService) RecalculateRoute(ctx context.Context, deliveryID uuid.UUID, actor usecase.Actor) (*usecase.RouteRecalculation, error) {
	delivery, err := srv.loadDelivery(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if !actor.IsDispatcher() && !delivery.IsCourier(actor.UserID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the courier or a dispatcher may re-plan the route")
	}
	if delivery.Status.IsTerminal() {
		return nil, errors.Wrapf(domainerrors.ErrDeliveryTerminal, "delivery is %s", delivery.Status)
	}

	pickup, dropoff, err := endpoints(delivery)
	if err != nil {
		return nil, err
	}

	existing, err := srv.trackingRepo.GetRoute(ctx, deliveryID)
	if errors.Is(err, repository.ErrRouteNotFound) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tracking has not been initialized")
	}
	if err != nil {
		return nil, persistenceError(err, "failed to read route")
	}

	plan := srv.routing.CalculateRoute(ctx, pickup, dropoff, srv.travelMode)
	now := srv.now().UTC()
	route := newRoute(deliveryID, pickup, dropoff, plan, now)
	route.ID = existing.ID
	route.CreatedAt = existing.CreatedAt

	if err := srv.trackingRepo.UpsertRoute(ctx, route); err != nil {
		if errors.Is(err, repository.ErrDeliveryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeliveryNotFound, "failed to replace route")
		}

		return nil, persistenceError(err, "failed to replace route")
	}

	view := newRouteView(route)
	srv.log(ctx).Info("Route recalculated",
		slog.String("delivery_id", deliveryID.String()),
		slog.Int("previous_distance_meters", existing.DistanceMeters),
		slog.Int("distance_meters", route.DistanceMeters),
		slog.Bool("fallback", plan.Fallback),
	)

	srv.broadcast(ctx, statemachine.Stakeholders(delivery, delivery.Status), entity.MessageRouteUpdate, routePayload(delivery, view, now))

	return &usecase.RouteRecalculation{Route: view, Fallback: plan.Fallback}, nil
}

// ListNotificationLogs is restricted to dispatchers.
func (srv *trackingService) ListNotificationLogs(ctx context.Context, deliveryID uuid.UUID, actor usecase.Actor, limit int) ([]*entity.NotificationLog, error) {
	if !actor.IsDispatcher() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only dispatchers may read notification logs")
	}
	if _, err := srv.loadDelivery(ctx, deliveryID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultNotificationLogLimit
	case limit > maxNotificationLogLimit:
		limit = maxNotificationLogLimit
	}

	logs, err := srv.notificationRepo.FindLogsByDelivery(ctx, deliveryID, limit)
	if err != nil {
		return nil, persistenceError(err, "failed to list notification logs")
	}

	return logs, nil
}

// ListCourierDeliveries is open to the courier themselves and to dispatchers.
func (srv *trackingService) ListCourierDeliveries(ctx context.Context, courierID uuid.UUID, actor usecase.Actor, limit int) ([]*entity.Delivery, error) {
	if actor.UserID != courierID && !actor.IsDispatcher() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the courier or a dispatcher may list these deliveries")
	}

	switch {
	case limit <= 0:
		limit = defaultCourierDeliveryLimit
	case limit > maxCourierDeliveryLimit:
		limit = maxCourierDeliveryLimit
	}

	deliveries, err := srv.trackingRepo.ListDeliveriesByCourier(ctx, courierID, limit)
	if err != nil {
		return nil, persistenceError(err, "failed to list courier deliveries")
	}

	return deliveries, nil
}

func (srv *trackingService) loadDelivery(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, error) {
	delivery, err := srv.trackingRepo.GetDelivery(ctx, deliveryID)
	if errors.Is(err, repository.ErrDeliveryNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrDeliveryNotFound, "delivery %s", deliveryID)
	}
	if err != nil {
		return nil, persistenceError(err, "failed to load delivery")
	}

	return delivery, nil
}

// transitionError maps state machine and transaction failures to AppErrors.
func (srv *trackingService) transitionError(err error, message string) error {
	var invalid *statemachine.InvalidTransitionError
	switch {
	case errors.As(err, &invalid):
		return errors.Wrap(domainerrors.ErrInvalidTransition.WithDetails(
			"from="+string(invalid.From)+" to="+string(invalid.To),
		), message)
	case errors.Is(err, repository.ErrDeliveryNotFound):
		return errors.Wrap(domainerrors.ErrDeliveryNotFound, message)
	case errors.Is(err, statemachine.ErrCourierNotAssigned):
		return errors.Wrap(domainerrors.ErrCourierNotAssigned, message)
	case errors.Is(err, repository.ErrRouteAlreadyExists):
		return errors.Wrap(domainerrors.ErrDeliveryAlreadyInitialized, message)
	default:
		return persistenceError(err, message)
	}
}

// broadcast pushes an event to live viewers. Send failures never fail the operation.
func (srv *trackingService) broadcast(ctx context.Context, userIDs []uuid.UUID, msgType entity.MessageType, data any) {
	if srv.broadcaster == nil || len(userIDs) == 0 {
		return
	}

	if err := srv.broadcaster.Broadcast(ctx, userIDs, entity.TrackingMessage{Type: msgType, Data: data}); err != nil {
		srv.log(ctx).Warn("Failed to broadcast tracking event", slog.String("type", string(msgType)), slog.Any("error", err))
	}
}

func (srv *trackingService) dispatch(ctx context.Context, notification service.DeliveryNotification) {
	if srv.dispatcher == nil {
		return
	}

	if err := srv.dispatcher.Dispatch(ctx, notification); err != nil {
		srv.log(ctx).Warn("Failed to dispatch notification",
			slog.String("delivery_id", notification.Delivery.ID.String()),
			slog.String("type", string(notification.Type)),
			slog.Any("error", err),
		)
	}
}

// endpoints returns the validated pickup and dropoff of a delivery.
func endpoints(delivery *entity.Delivery) (orb.Point, orb.Point, error) {
	pickup, hasPickup := delivery.PickupPoint()
	dropoff, hasDropoff := delivery.DropoffPoint()
	if !hasPickup || !hasDropoff {
		return orb.Point{}, orb.Point{}, errors.WithStack(domainerrors.ErrMissingCoordinates)
	}
	if err := validatePoints(pickup, dropoff); err != nil {
		return orb.Point{}, orb.Point{}, err
	}

	return pickup, dropoff, nil
}

func validatePoints(points ...orb.Point) error {
	for _, p := range points {
		if err := geo.Validate(p); err != nil {
			return errors.Wrap(domainerrors.ErrInvalidCoordinate.WithDetails(err.Error()), "invalid coordinate")
		}
	}

	return nil
}

// persistenceError keeps an existing persistence failure and classifies anything else as one.
func persistenceError(err error, message string) error {
	if domainerrors.IsPersistenceFailure(err) {
		return errors.Wrap(err, message)
	}

	return errors.Wrap(domainerrors.NewDatabaseExecuteError(err, message), message)
}

func newRoute(deliveryID uuid.UUID, pickup, dropoff orb.Point, plan *usecase.RoutePlan, now time.Time) *entity.Route {
	route := &entity.Route{
		ID:              uuid.New(),
		DeliveryID:      deliveryID,
		PickupLat:       pickup.Lat(),
		PickupLng:       pickup.Lon(),
		DropoffLat:      dropoff.Lat(),
		DropoffLng:      dropoff.Lon(),
		Geometry:        geo.EncodePolyline(plan.Geometry),
		DistanceMeters:  int(plan.DistanceMeters + 0.5),
		DurationSeconds: plan.DurationSeconds,
		TravelMode:      plan.TravelMode,
		Provider:        plan.Provider,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if plan.ProviderRouteID != "" {
		route.ProviderRouteID = &plan.ProviderRouteID
	}

	return route
}

func routePayload(delivery *entity.Delivery, view *usecase.RouteView, now time.Time) entity.RouteUpdatePayload {
	return entity.RouteUpdatePayload{
		DeliveryID:      delivery.ID,
		OrderID:         delivery.OrderID,
		DistanceMeters:  view.DistanceMeters,
		DurationSeconds: view.DurationSeconds,
		Geometry:        view.Geometry,
		Coordinates:     view.Coordinates,
		MapsLink:        view.MapsLink,
		Timestamp:       now,
	}
}

func newRouteView(route *entity.Route) *usecase.RouteView {
	view := &usecase.RouteView{
		Route:       route,
		Coordinates: [][2]float64{},
		MapsLink:    geo.GoogleMapsLink(route.Pickup(), route.Dropoff()),
	}

	ls, err := geo.DecodePolyline(route.Geometry)
	if err != nil || len(ls) == 0 {
		ls = geo.StraightLine(route.Pickup(), route.Dropoff())
	}
	for _, p := range ls {
		view.Coordinates = append(view.Coordinates, [2]float64{p.Lat(), p.Lon()})
	}

	return view
}

func statusPayload(delivery *entity.Delivery, entry *entity.StatusHistoryEntry) entity.StatusUpdatePayload {
	payload := entity.StatusUpdatePayload{
		DeliveryID: delivery.ID,
		OrderID:    delivery.OrderID,
		Status:     delivery.Status,
		Timestamp:  time.Now().UTC(),
	}
	if entry != nil {
		payload.Description = entry.Description
		payload.Latitude = entry.Latitude
		payload.Longitude = entry.Longitude
		payload.Timestamp = entry.RecordedAt
	}

	return payload
}
