package services

import (
	"github.com/google/uuid"
)

// TicketIDFunc generates the id for a new booking of seat on flightNo.
type TicketIDFunc func(flightNo, seat string) string

// DerivedTicketID concatenates flight and seat. Ids are stable and human
// readable but not collision safe: cancelling a booking and rebooking
// the same seat issues the same id again.
func DerivedTicketID(flightNo, seat string) string {
	return flightNo + "_" + seat
}

// RandomTicketID issues a fresh UUID per booking.
func RandomTicketID(flightNo, seat string) string {
	return uuid.NewString()
}
