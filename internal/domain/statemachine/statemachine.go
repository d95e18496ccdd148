// Package statemachine applies delivery status transitions and records their history.
//
// Every change goes through Machine, which takes the delivery row lock, checks the
// transition law, writes the new status and appends exactly one history entry.
// Run it inside repository.TransactionManager.Execute so both writes commit together.
package statemachine

import (
	"context"
	"fmt"
	"slices"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// historyTick is the smallest step between two history entries of one delivery.
// It matches the precision of Postgres timestamps.
const historyTick = time.Microsecond

// ErrCourierNotAssigned is returned when a delivery without a courier would move
// past order_placed. Only cancellation is allowed before assignment.
var ErrCourierNotAssigned = errors.New("delivery has no courier assigned")

// InvalidTransitionError is returned when From cannot move to To.
type InvalidTransitionError struct {
	From entity.DeliveryStatus
	To   entity.DeliveryStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid delivery status transition from %q to %q", e.From, e.To)
}

// Command requests a status change.
type Command struct {
	DeliveryID  uuid.UUID
	Target      entity.DeliveryStatus
	ActorID     *uuid.UUID
	Description string
	Latitude    *float64
	Longitude   *float64
	Metadata    string
}

// Result describes the outcome of a command.
type Result struct {
	Delivery     *entity.Delivery // State after the command.
	Previous     entity.DeliveryStatus
	Entry        *entity.StatusHistoryEntry // Nil when nothing changed.
	Changed      bool
	Stakeholders []uuid.UUID
}

// Machine validates and records delivery status transitions.
type Machine struct {
	now func() time.Time
}

// New creates a Machine using the wall clock.
func New() *Machine {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Machine with an injectable clock.
func NewWithClock(now func() time.Time) *Machine {
	return &Machine{now: now}
}

// Apply moves a delivery to cmd.Target. Repeating the current status is a no-op.
func (m *Machine) Apply(ctx context.Context, repo repository.TrackingRepository, cmd Command) (*Result, error) {
	delivery, err := repo.GetDeliveryForUpdate(ctx, cmd.DeliveryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock delivery")
	}

	if delivery.Status == cmd.Target {
		return &Result{
			Delivery:     delivery,
			Previous:     delivery.Status,
			Stakeholders: Stakeholders(delivery, delivery.Status),
		}, nil
	}

	if !delivery.Status.CanTransitionTo(cmd.Target) {
		return nil, &InvalidTransitionError{From: delivery.Status, To: cmd.Target}
	}

	return m.transition(ctx, repo, delivery, cmd)
}

// Initialize records the assignment that starts tracking. A delivery still in
// order_placed is moved to assigned. A delivery the order service already marked
// assigned gets its first history entry. Anything else is left untouched.
func (m *Machine) Initialize(ctx context.Context, repo repository.TrackingRepository, cmd Command) (*Result, error) {
	cmd.Target = entity.StatusAssigned

	delivery, err := repo.GetDeliveryForUpdate(ctx, cmd.DeliveryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock delivery")
	}

	switch delivery.Status {
	case entity.StatusOrderPlaced:
		return m.transition(ctx, repo, delivery, cmd)
	case entity.StatusAssigned:
		latest, err := repo.LatestStatusEntry(ctx, delivery.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read latest status entry")
		}
		if latest != nil {
			return &Result{
				Delivery:     delivery,
				Previous:     delivery.Status,
				Stakeholders: Stakeholders(delivery, delivery.Status),
			}, nil
		}

		return m.transition(ctx, repo, delivery, cmd)
	default:
		return nil, &InvalidTransitionError{From: delivery.Status, To: entity.StatusAssigned}
	}
}

func (m *Machine) transition(
	ctx context.Context,
	repo repository.TrackingRepository,
	delivery *entity.Delivery,
	cmd Command,
) (*Result, error) {
	if delivery.CourierID == nil && cmd.Target != entity.StatusCancelled {
		return nil, errors.WithStack(ErrCourierNotAssigned)
	}

	recordedAt, err := m.nextRecordTime(ctx, repo, delivery.ID)
	if err != nil {
		return nil, err
	}

	update := repository.DeliveryStatusUpdate{Status: cmd.Target}
	switch cmd.Target {
	case entity.StatusAssigned:
		if delivery.AssignedAt == nil {
			update.AssignedAt = &recordedAt
		}
	case entity.StatusPickedUp:
		update.PickedUpAt = &recordedAt
	case entity.StatusDelivered:
		update.DeliveredAt = &recordedAt
	}

	if err := repo.UpdateDeliveryStatus(ctx, delivery.ID, update); err != nil {
		return nil, errors.Wrap(err, "failed to update delivery status")
	}

	entry := &entity.StatusHistoryEntry{
		ID:          uuid.New(),
		DeliveryID:  delivery.ID,
		Status:      cmd.Target,
		Description: cmd.Description,
		Latitude:    cmd.Latitude,
		Longitude:   cmd.Longitude,
		UpdatedBy:   cmd.ActorID,
		RecordedAt:  recordedAt,
		Metadata:    cmd.Metadata,
	}
	if err := repo.AppendStatusHistory(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to append status history")
	}

	previous := delivery.Status
	updated := *delivery
	updated.Status = cmd.Target
	if update.AssignedAt != nil {
		updated.AssignedAt = update.AssignedAt
	}
	if update.PickedUpAt != nil {
		updated.PickedUpAt = update.PickedUpAt
	}
	if update.DeliveredAt != nil {
		updated.DeliveredAt = update.DeliveredAt
	}

	return &Result{
		Delivery:     &updated,
		Previous:     previous,
		Entry:        entry,
		Changed:      true,
		Stakeholders: Stakeholders(&updated, previous),
	}, nil
}

// nextRecordTime returns a timestamp strictly after the newest history entry.
func (m *Machine) nextRecordTime(ctx context.Context, repo repository.TrackingRepository, deliveryID uuid.UUID) (time.Time, error) {
	now := m.now().UTC().Truncate(historyTick)

	latest, err := repo.LatestStatusEntry(ctx, deliveryID)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to read latest status entry")
	}
	if latest != nil && !now.After(latest.RecordedAt) {
		return latest.RecordedAt.Add(historyTick), nil
	}

	return now, nil
}

// Stakeholders returns who should hear about a delivery in its current status.
// previous is only consulted for cancelled deliveries: the store is told about a
// cancellation as long as the goods had not left it yet.
func Stakeholders(delivery *entity.Delivery, previous entity.DeliveryStatus) []uuid.UUID {
	ids := []uuid.UUID{delivery.CustomerID}

	if delivery.CourierID != nil && *delivery.CourierID != delivery.CustomerID {
		ids = append(ids, *delivery.CourierID)
	}

	status := delivery.Status
	if status == entity.StatusCancelled {
		status = previous
	}
	if delivery.StoreOwnerID != nil && status.AtOrBefore(entity.StatusPickedUp) && !slices.Contains(ids, *delivery.StoreOwnerID) {
		ids = append(ids, *delivery.StoreOwnerID)
	}

	return ids
}
