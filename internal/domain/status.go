package domain

type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderPreparing OrderStatus = "preparing"
	OrderCompleted OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderNew, OrderPreparing, OrderCompleted:
		return true
	}
	return false
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}
	return false
}

// TransitionPolicy decides which status changes the services accept.
type TransitionPolicy string

const (
	// Permissive accepts any legal status regardless of the current one.
	Permissive TransitionPolicy = "permissive"
	// Strict only accepts the forward edges of the lifecycle.
	Strict TransitionPolicy = "strict"
)

func ParseTransitionPolicy(s string) TransitionPolicy {
	if TransitionPolicy(s) == Strict {
		return Strict
	}
	return Permissive
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderNew:       {OrderPreparing},
	OrderPreparing: {OrderCompleted},
}

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCancelled},
}

// OrderSources returns the statuses an order may be in for a move to target.
// A nil result means any status.
func (p TransitionPolicy) OrderSources(target OrderStatus) []OrderStatus {
	if p != Strict {
		return nil
	}
	sources := []OrderStatus{target}
	for from, tos := range orderTransitions {
		for _, to := range tos {
			if to == target {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

func (p TransitionPolicy) ReservationSources(target ReservationStatus) []ReservationStatus {
	if p != Strict {
		return nil
	}
	sources := []ReservationStatus{target}
	for from, tos := range reservationTransitions {
		for _, to := range tos {
			if to == target {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

func (p TransitionPolicy) AllowOrder(from, to OrderStatus) bool {
	sources := p.OrderSources(to)
	if sources == nil {
		return true
	}
	for _, s := range sources {
		if s == from {
			return true
		}
	}
	return false
}

func (p TransitionPolicy) AllowReservation(from, to ReservationStatus) bool {
	sources := p.ReservationSources(to)
	if sources == nil {
		return true
	}
	for _, s := range sources {
		if s == from {
			return true
		}
	}
	return false
}
