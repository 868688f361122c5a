package constant

type ReservationStatus string

const (
	ReservationStatusActive   ReservationStatus = "active"
	ReservationStatusReleased ReservationStatus = "released"
	ReservationStatusConsumed ReservationStatus = "consumed"
)

// reservationTransitions lists the allowed status transitions. Released and
// consumed are terminal.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusActive: {ReservationStatusReleased, ReservationStatusConsumed},
}

// IsValidReservationTransition reports whether a reservation may move from one
// status to another. Both the reservation application layer and the reservation
// repository consult this table.
func IsValidReservationTransition(from, to ReservationStatus) bool {
	for _, allowed := range reservationTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
