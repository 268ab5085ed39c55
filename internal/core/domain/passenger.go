package domain

// Passenger identifies a traveller. Tickets carry a free-text passenger
// name rather than a reference to a Passenger; the registry keyed by
// passport number exists alongside the booking flow, not inside it.
type Passenger struct {
	Name                string
	PassportNumber      string
	FrequentFlyerNumber string
}
