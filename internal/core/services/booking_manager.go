package services

import (
	"errors"

	"flight-ticket-manager/internal/core/domain"
	"flight-ticket-manager/internal/core/ports"
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrSeatUnavailable = errors.New("seat not available")
	ErrTicketNotFound  = errors.New("ticket not found")
)

// BookingManager owns the flight registry, the passenger registry and
// the flat index of active bookings, and runs every booking operation
// against them. Operations are synchronous and expect a single caller at
// a time; BookTicket in particular is check-then-act, so a concurrent
// front end would need its own locking around the manager.
type BookingManager struct {
	flights    ports.FlightRegistry
	passengers ports.PassengerRegistry
	tickets    ports.TicketIndex
	ticketID   TicketIDFunc
}

func NewBookingManager(
	flights ports.FlightRegistry,
	passengers ports.PassengerRegistry,
	tickets ports.TicketIndex,
	ticketID TicketIDFunc,
) *BookingManager {
	if ticketID == nil {
		ticketID = DerivedTicketID
	}
	return &BookingManager{
		flights:    flights,
		passengers: passengers,
		tickets:    tickets,
		ticketID:   ticketID,
	}
}

// AddFlight inserts or overwrites the registry entry for code. The code
// argument is the key; it is not checked against flight.Code.
func (m *BookingManager) AddFlight(code string, flight *domain.Flight) {
	m.flights.Add(code, flight)
}

func (m *BookingManager) RegisterPassenger(passenger domain.Passenger) {
	m.passengers.Add(passenger)
}

func (m *BookingManager) PassengerByPassport(passportNumber string) (domain.Passenger, bool) {
	return m.passengers.Get(passportNumber)
}

// BookTicket reserves seat on flightNo for passengerName. Journey date
// and price are not collected on this path; tickets are issued with an
// empty date and a zero price. The new ticket lands in both the flight's
// collection and the flat index.
func (m *BookingManager) BookTicket(flightNo, seat, passengerName string) (*domain.FlightTicket, error) {
	flight, ok := m.flights.Get(flightNo)
	if !ok {
		return nil, ErrFlightNotFound
	}

	if !flight.SeatAvailable(seat) {
		return nil, ErrSeatUnavailable
	}

	ticket := domain.NewFlightTicket(m.ticketID(flightNo, seat), passengerName, "", seat, 0)
	ticket.Book()
	flight.AddTicket(ticket)
	m.tickets.Put(ticket)

	return ticket, nil
}

// CancelTicket cancels the booking and drops it from the flat index.
// After cancellation the id no longer resolves, even though the ticket
// stays in the owning flight's collection; the seat itself becomes
// bookable again because availability consults the live collection.
func (m *BookingManager) CancelTicket(ticketID string) error {
	ticket, ok := m.tickets.Get(ticketID)
	if !ok {
		return ErrTicketNotFound
	}

	ticket.Cancel()
	m.tickets.Remove(ticketID)

	return nil
}

// CheckSeatAvailability resolves flightNo and reports the seat ids that
// are currently booked on it. No master seat list is modeled, so the
// open seats cannot be enumerated, only the taken ones.
func (m *BookingManager) CheckSeatAvailability(flightNo string) (*domain.Flight, []string, error) {
	flight, ok := m.flights.Get(flightNo)
	if !ok {
		return nil, nil, ErrFlightNotFound
	}
	return flight, flight.BookedSeats(), nil
}

func (m *BookingManager) ViewBookingByTicketID(ticketID string) (*domain.FlightTicket, error) {
	ticket, ok := m.tickets.Get(ticketID)
	if !ok {
		return nil, ErrTicketNotFound
	}
	return ticket, nil
}

// ViewBookingsByUsername scans the flat index for tickets whose
// passenger name equals name exactly, case sensitive, in booking order.
func (m *BookingManager) ViewBookingsByUsername(name string) []*domain.FlightTicket {
	var matches []*domain.FlightTicket
	for _, ticket := range m.tickets.All() {
		if ticket.PassengerName == name {
			matches = append(matches, ticket)
		}
	}
	return matches
}
