package domain

import (
	"fmt"
	"strings"
)

// Aircraft describes the airframe assigned to a flight. Copying an
// Aircraft copies data, not identity.
type Aircraft struct {
	Model    string
	Capacity int
}

// Flight is a scheduled route instance. It owns the tickets issued
// against it; the collection only grows, cancelled tickets stay in it
// with Booked flipped off.
type Flight struct {
	Code          string
	Aircraft      Aircraft
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
	Tickets       []*FlightTicket
}

func NewFlight(code string, aircraft Aircraft, origin, destination, departureTime, arrivalTime string) *Flight {
	return &Flight{
		Code:          code,
		Aircraft:      aircraft,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
	}
}

// SeatAvailable reports whether seatID can still be booked. A seat is
// taken only when some ticket holds that exact seat and is currently
// booked; cancelled tickets for the seat do not count.
func (f *Flight) SeatAvailable(seatID string) bool {
	for _, t := range f.Tickets {
		if t.SeatID == seatID && t.Booked {
			return false
		}
	}
	return true
}

// AddTicket appends without checking the seat; callers are expected to
// check SeatAvailable first.
func (f *Flight) AddTicket(t *FlightTicket) {
	f.Tickets = append(f.Tickets, t)
}

// BookedSeats returns the seat ids currently booked, in booking order.
func (f *Flight) BookedSeats() []string {
	var seats []string
	for _, t := range f.Tickets {
		if t.Booked {
			seats = append(seats, t.SeatID)
		}
	}
	return seats
}

// Details renders the flight's metadata as a multi-line report.
func (f *Flight) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flight Code: %s\n", f.Code)
	fmt.Fprintf(&b, "Aircraft Model: %s\n", f.Aircraft.Model)
	fmt.Fprintf(&b, "Capacity: %d\n", f.Aircraft.Capacity)
	fmt.Fprintf(&b, "Origin: %s\n", f.Origin)
	fmt.Fprintf(&b, "Destination: %s\n", f.Destination)
	fmt.Fprintf(&b, "Departure: %s\n", f.DepartureTime)
	fmt.Fprintf(&b, "Arrival: %s", f.ArrivalTime)
	return b.String()
}
