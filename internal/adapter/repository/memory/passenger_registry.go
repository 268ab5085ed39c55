package memory

import (
	"flight-ticket-manager/internal/core/domain"
)

type PassengerRegistry struct {
	byPassport map[string]domain.Passenger
}

func NewPassengerRegistry() *PassengerRegistry {
	return &PassengerRegistry{byPassport: make(map[string]domain.Passenger)}
}

func (r *PassengerRegistry) Add(passenger domain.Passenger) {
	r.byPassport[passenger.PassportNumber] = passenger
}

func (r *PassengerRegistry) Get(passportNumber string) (domain.Passenger, bool) {
	passenger, ok := r.byPassport[passportNumber]
	return passenger, ok
}
