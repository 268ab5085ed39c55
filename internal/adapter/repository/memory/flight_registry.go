package memory

import (
	"flight-ticket-manager/internal/core/domain"
)

type FlightRegistry struct {
	flights map[string]*domain.Flight
}

func NewFlightRegistry() *FlightRegistry {
	return &FlightRegistry{flights: make(map[string]*domain.Flight)}
}

func (r *FlightRegistry) Add(code string, flight *domain.Flight) {
	r.flights[code] = flight
}

func (r *FlightRegistry) Get(code string) (*domain.Flight, bool) {
	flight, ok := r.flights[code]
	return flight, ok
}
