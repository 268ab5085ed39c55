package memory

import (
	"flight-ticket-manager/internal/core/domain"
)

// TicketIndex keeps the active bookings keyed by ticket id. The stored
// values are pointers into each flight's own ticket collection, so the
// index is a locator, not a second copy of the ticket data.
type TicketIndex struct {
	byID  map[string]*domain.FlightTicket
	order []string
}

func NewTicketIndex() *TicketIndex {
	return &TicketIndex{byID: make(map[string]*domain.FlightTicket)}
}

func (i *TicketIndex) Put(ticket *domain.FlightTicket) {
	if _, ok := i.byID[ticket.TicketID]; !ok {
		i.order = append(i.order, ticket.TicketID)
	}
	i.byID[ticket.TicketID] = ticket
}

func (i *TicketIndex) Get(ticketID string) (*domain.FlightTicket, bool) {
	ticket, ok := i.byID[ticketID]
	return ticket, ok
}

func (i *TicketIndex) Remove(ticketID string) {
	if _, ok := i.byID[ticketID]; !ok {
		return
	}
	delete(i.byID, ticketID)
	for n, id := range i.order {
		if id == ticketID {
			i.order = append(i.order[:n], i.order[n+1:]...)
			break
		}
	}
}

// All returns the indexed tickets in insertion order.
func (i *TicketIndex) All() []*domain.FlightTicket {
	tickets := make([]*domain.FlightTicket, 0, len(i.order))
	for _, id := range i.order {
		tickets = append(tickets, i.byID[id])
	}
	return tickets
}
