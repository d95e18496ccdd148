package entity

// DeliveryStatus is a step of the delivery lifecycle.
type DeliveryStatus string

const (
	StatusOrderPlaced     DeliveryStatus = "order_placed"
	StatusAssigned        DeliveryStatus = "assigned"
	StatusEnRoutePickup   DeliveryStatus = "en_route_pickup"
	StatusArrivedPickup   DeliveryStatus = "arrived_pickup"
	StatusPickedUp        DeliveryStatus = "picked_up"
	StatusEnRouteDelivery DeliveryStatus = "en_route_delivery"
	StatusArrivedDelivery DeliveryStatus = "arrived_delivery"
	StatusDelivered       DeliveryStatus = "delivered"
	StatusCancelled       DeliveryStatus = "cancelled"
)

// statusSequence is the forward path; cancelled sits outside it.
var statusSequence = []DeliveryStatus{
	StatusOrderPlaced,
	StatusAssigned,
	StatusEnRoutePickup,
	StatusArrivedPickup,
	StatusPickedUp,
	StatusEnRouteDelivery,
	StatusArrivedDelivery,
	StatusDelivered,
}

// AllStatuses lists every status, forward path first.
func AllStatuses() []DeliveryStatus {
	all := make([]DeliveryStatus, 0, len(statusSequence)+1)
	all = append(all, statusSequence...)

	return append(all, StatusCancelled)
}

// String returns the string representation of the status.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the status is known.
func (s DeliveryStatus) IsValid() bool {
	return s == StatusCancelled || s.position() >= 0
}

// IsTerminal reports whether no further transitions are allowed.
func (s DeliveryStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Next returns the immediate successor on the forward path.
func (s DeliveryStatus) Next() (DeliveryStatus, bool) {
	pos := s.position()
	if pos < 0 || pos == len(statusSequence)-1 {
		return "", false
	}

	return statusSequence[pos+1], true
}

// CanTransitionTo reports whether target is a legal change from s.
// Repeating the current status is not a transition.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	if s.IsTerminal() || !s.IsValid() {
		return false
	}
	if target == StatusCancelled {
		return true
	}

	next, ok := s.Next()

	return ok && next == target
}

// AtOrBefore reports whether s comes no later than other on the forward path.
// Cancelled is never at or before anything.
func (s DeliveryStatus) AtOrBefore(other DeliveryStatus) bool {
	pos, otherPos := s.position(), other.position()

	return pos >= 0 && otherPos >= 0 && pos <= otherPos
}

func (s DeliveryStatus) position() int {
	for i, status := range statusSequence {
		if status == s {
			return i
		}
	}

	return -1
}
