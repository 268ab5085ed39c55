package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"flight-ticket-manager/internal/core/services"
)

// CommandHandler parses one command line at a time and drives the
// booking manager. Every failure surfaces as a message on out; nothing
// here terminates the loop except the exit command.
type CommandHandler struct {
	manager *services.BookingManager
	out     io.Writer
}

func NewCommandHandler(manager *services.BookingManager, out io.Writer) *CommandHandler {
	return &CommandHandler{manager: manager, out: out}
}

// Run reads commands from r until exit or end of input, printing prompt
// before each one.
func (h *CommandHandler) Run(r io.Reader, prompt string) {
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(h.out, prompt)
		if !scanner.Scan() {
			return
		}
		if !h.Dispatch(scanner.Text()) {
			return
		}
	}
}

// Dispatch handles a single input line and reports whether the loop
// should keep going.
func (h *CommandHandler) Dispatch(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return true
	}

	switch args[0] {
	case "exit":
		fmt.Fprintln(h.out, "Exiting the booking system.")
		return false
	case "check":
		// check <date> <flightNo>; the date is accepted but unused.
		if len(args) < 3 {
			fmt.Fprintln(h.out, "Usage: check <date> <flightNo>")
			return true
		}
		h.check(args[2])
	case "book":
		// book <date> <flightNo> <seat> <username>; the date is unused.
		if len(args) < 5 {
			fmt.Fprintln(h.out, "Usage: book <date> <flightNo> <seat> <username>")
			return true
		}
		h.book(args[2], args[3], args[4])
	case "return":
		if len(args) < 2 {
			fmt.Fprintln(h.out, "Usage: return <ticketId>")
			return true
		}
		h.cancel(args[1])
	case "view":
		if len(args) < 2 {
			fmt.Fprintln(h.out, "Usage: view <ticketId|username>")
			return true
		}
		h.view(args[1])
	default:
		fmt.Fprintln(h.out, "Unknown command. Please try again.")
	}

	return true
}

func (h *CommandHandler) check(flightNo string) {
	flight, booked, err := h.manager.CheckSeatAvailability(flightNo)
	if err != nil {
		fmt.Fprintln(h.out, "Flight not found.")
		return
	}

	fmt.Fprintf(h.out, "Checking seat availability for flight %s:\n", flightNo)
	fmt.Fprintln(h.out, flight.Details())
	if len(booked) == 0 {
		fmt.Fprintln(h.out, "No seats are currently booked.")
		return
	}
	fmt.Fprintf(h.out, "Booked seats: %s\n", strings.Join(booked, ", "))
}

func (h *CommandHandler) book(flightNo, seat, username string) {
	ticket, err := h.manager.BookTicket(flightNo, seat, username)
	switch {
	case errors.Is(err, services.ErrFlightNotFound):
		fmt.Fprintln(h.out, "Flight not found.")
	case errors.Is(err, services.ErrSeatUnavailable):
		fmt.Fprintln(h.out, "The seat is not available.")
	case err != nil:
		fmt.Fprintf(h.out, "Booking failed: %v\n", err)
	default:
		fmt.Fprintf(h.out, "Ticket booked successfully with ID: %s\n", ticket.TicketID)
	}
}

func (h *CommandHandler) cancel(ticketID string) {
	if err := h.manager.CancelTicket(ticketID); err != nil {
		fmt.Fprintln(h.out, "Ticket not found.")
		return
	}
	fmt.Fprintln(h.out, "Ticket cancelled successfully.")
}

// view treats identifiers starting with a decimal digit as ticket ids
// and everything else as passenger names.
func (h *CommandHandler) view(identifier string) {
	if unicode.IsDigit(rune(identifier[0])) {
		ticket, err := h.manager.ViewBookingByTicketID(identifier)
		if err != nil {
			fmt.Fprintln(h.out, "Ticket not found.")
			return
		}
		fmt.Fprintf(h.out, "Ticket ID: %s\n", ticket.TicketID)
		fmt.Fprintf(h.out, "Passenger Name: %s\n", ticket.PassengerName)
		fmt.Fprintf(h.out, "Seat: %s\n", ticket.SeatID)
		return
	}

	fmt.Fprintf(h.out, "Bookings for %s:\n", identifier)
	for _, ticket := range h.manager.ViewBookingsByUsername(identifier) {
		fmt.Fprintf(h.out, "Ticket ID: %s, Seat: %s\n", ticket.TicketID, ticket.SeatID)
	}
}
