package ports

import (
	"flight-ticket-manager/internal/core/domain"
)

// FlightRegistry holds every flight the manager knows, keyed by flight
// code. Add overwrites, so the last flight inserted under a code wins.
type FlightRegistry interface {
	Add(code string, flight *domain.Flight)
	Get(code string) (*domain.Flight, bool)
}

// PassengerRegistry keys passengers by passport number.
type PassengerRegistry interface {
	Add(passenger domain.Passenger)
	Get(passportNumber string) (domain.Passenger, bool)
}

// TicketIndex is the flat id-keyed index of active bookings. Entries are
// pointers into the owning flight's ticket collection; Remove drops the
// index entry only and never touches the flight. All returns tickets in
// insertion order so scans over the index print deterministically.
type TicketIndex interface {
	Put(ticket *domain.FlightTicket)
	Get(ticketID string) (*domain.FlightTicket, bool)
	Remove(ticketID string)
	All() []*domain.FlightTicket
}
