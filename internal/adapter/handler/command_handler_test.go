package handler_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flight-ticket-manager/internal/adapter/handler"
	"flight-ticket-manager/internal/adapter/repository/memory"
	"flight-ticket-manager/internal/core/domain"
	"flight-ticket-manager/internal/core/services"
)

func newHandler(t *testing.T) (*handler.CommandHandler, *services.BookingManager, *bytes.Buffer) {
	t.Helper()
	manager := services.NewBookingManager(
		memory.NewFlightRegistry(),
		memory.NewPassengerRegistry(),
		memory.NewTicketIndex(),
		nil,
	)
	flight := domain.NewFlight("AA100", domain.Aircraft{Model: "A320", Capacity: 180}, "JFK", "LAX", "08:00", "11:30")
	manager.AddFlight("AA100", flight)

	out := &bytes.Buffer{}
	return handler.NewCommandHandler(manager, out), manager, out
}

func TestDispatch_Book_Success(t *testing.T) {
	h, _, out := newHandler(t)

	assert.True(t, h.Dispatch("book 2026-09-01 AA100 7C Alice"))
	assert.Contains(t, out.String(), "Ticket booked successfully with ID: AA100_7C")
}

func TestDispatch_Book_SeatTaken(t *testing.T) {
	h, _, out := newHandler(t)
	h.Dispatch("book 2026-09-01 AA100 7C Alice")
	out.Reset()

	h.Dispatch("book 2026-09-01 AA100 7C Bob")

	assert.Contains(t, out.String(), "The seat is not available.")
}

func TestDispatch_Book_FlightNotFound(t *testing.T) {
	h, _, out := newHandler(t)

	h.Dispatch("book 2026-09-01 ZZ999 1A Bob")

	assert.Contains(t, out.String(), "Flight not found.")
}

func TestDispatch_Return(t *testing.T) {
	h, _, out := newHandler(t)
	h.Dispatch("book 2026-09-01 AA100 7C Alice")
	out.Reset()

	h.Dispatch("return AA100_7C")
	assert.Contains(t, out.String(), "Ticket cancelled successfully.")

	out.Reset()
	h.Dispatch("return AA100_7C")
	assert.Contains(t, out.String(), "Ticket not found.")
}

func TestDispatch_Check_ReportsBookedSeats(t *testing.T) {
	h, _, out := newHandler(t)

	h.Dispatch("check 2026-09-01 AA100")
	output := out.String()
	assert.Contains(t, output, "Checking seat availability for flight AA100:")
	assert.Contains(t, output, "Flight Code: AA100")
	assert.Contains(t, output, "No seats are currently booked.")

	h.Dispatch("book 2026-09-01 AA100 7C Alice")
	out.Reset()
	h.Dispatch("check 2026-09-01 AA100")
	assert.Contains(t, out.String(), "Booked seats: 7C")
}

func TestDispatch_Check_FlightNotFound(t *testing.T) {
	h, _, out := newHandler(t)

	h.Dispatch("check 2026-09-01 ZZ999")

	assert.Contains(t, out.String(), "Flight not found.")
}

func TestDispatch_View_DigitRoutesToTicketLookup(t *testing.T) {
	h, manager, out := newHandler(t)
	flight := domain.NewFlight("100X", domain.Aircraft{Model: "A320", Capacity: 180}, "JFK", "LAX", "08:00", "11:30")
	manager.AddFlight("100X", flight)
	h.Dispatch("book 2026-09-01 100X 7C Alice")
	out.Reset()

	// The id starts with a digit, so this is a ticket-id lookup.
	h.Dispatch("view 100X_7C")

	output := out.String()
	assert.Contains(t, output, "Ticket ID: 100X_7C")
	assert.Contains(t, output, "Passenger Name: Alice")
	assert.Contains(t, output, "Seat: 7C")
	assert.NotContains(t, output, "Bookings for")
}

func TestDispatch_View_NameRoutesToUsernameScan(t *testing.T) {
	h, _, out := newHandler(t)
	h.Dispatch("book 2026-09-01 AA100 7C Alice")
	h.Dispatch("book 2026-09-01 AA100 7D alice")
	out.Reset()

	h.Dispatch("view Alice")

	output := out.String()
	assert.Contains(t, output, "Bookings for Alice:")
	assert.Contains(t, output, "Ticket ID: AA100_7C, Seat: 7C")
	assert.NotContains(t, output, "7D")
}

func TestDispatch_View_UnknownTicketID(t *testing.T) {
	h, _, out := newHandler(t)

	h.Dispatch("view 12345")

	assert.Contains(t, out.String(), "Ticket not found.")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	h, _, out := newHandler(t)

	assert.True(t, h.Dispatch("teleport AA100"))
	assert.Contains(t, out.String(), "Unknown command. Please try again.")
}

func TestDispatch_EmptyLine(t *testing.T) {
	h, _, out := newHandler(t)

	assert.True(t, h.Dispatch("   "))
	assert.Empty(t, out.String())
}

func TestDispatch_MissingArguments(t *testing.T) {
	h, _, out := newHandler(t)

	assert.True(t, h.Dispatch("book 2026-09-01 AA100"))
	assert.Contains(t, out.String(), "Usage: book")

	out.Reset()
	assert.True(t, h.Dispatch("view"))
	assert.Contains(t, out.String(), "Usage: view")
}

func TestDispatch_Exit(t *testing.T) {
	h, _, out := newHandler(t)

	assert.False(t, h.Dispatch("exit"))
	assert.Contains(t, out.String(), "Exiting the booking system.")
}

func TestRun_LoopsUntilExit(t *testing.T) {
	h, _, out := newHandler(t)
	input := strings.NewReader("book 2026-09-01 AA100 7C Alice\nexit\nbook 2026-09-01 AA100 7D Bob\n")

	h.Run(input, "> ")

	output := out.String()
	assert.Contains(t, output, "Ticket booked successfully with ID: AA100_7C")
	assert.Contains(t, output, "Exiting the booking system.")
	// Nothing after exit is processed.
	assert.NotContains(t, output, "AA100_7D")
	require.Equal(t, 2, strings.Count(output, "> "))
}

func TestRun_StopsAtEOF(t *testing.T) {
	h, _, out := newHandler(t)

	h.Run(strings.NewReader("check 2026-09-01 AA100\n"), "> ")

	assert.Contains(t, out.String(), "Checking seat availability for flight AA100:")
}
