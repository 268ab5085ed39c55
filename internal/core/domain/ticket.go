package domain

// FlightTicket is one seat reservation on a flight. A ticket starts out
// unbooked and moves between the two states through Book and Cancel.
type FlightTicket struct {
	TicketID      string
	PassengerName string
	JourneyDate   string
	SeatID        string
	Price         float64
	Booked        bool
}

func NewFlightTicket(ticketID, passengerName, journeyDate, seatID string, price float64) *FlightTicket {
	return &FlightTicket{
		TicketID:      ticketID,
		PassengerName: passengerName,
		JourneyDate:   journeyDate,
		SeatID:        seatID,
		Price:         price,
	}
}

// Book marks the ticket booked and reports whether the state changed.
// Booking an already-booked ticket is a no-op.
func (t *FlightTicket) Book() bool {
	if t.Booked {
		return false
	}
	t.Booked = true
	return true
}

// Cancel is the reverse transition; cancelling an unbooked ticket is a
// no-op.
func (t *FlightTicket) Cancel() bool {
	if !t.Booked {
		return false
	}
	t.Booked = false
	return true
}
