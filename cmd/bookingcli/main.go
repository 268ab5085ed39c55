package main

import (
	"log"
	"os"

	"flight-ticket-manager/config"
	"flight-ticket-manager/internal/adapter/handler"
	"flight-ticket-manager/internal/adapter/repository/memory"
	"flight-ticket-manager/internal/core/services"
	"flight-ticket-manager/internal/platform/flightsfile"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ticketID := services.DerivedTicketID
	if cfg.TicketIDs == config.TicketIDsRandom {
		ticketID = services.RandomTicketID
	}

	manager := services.NewBookingManager(
		memory.NewFlightRegistry(),
		memory.NewPassengerRegistry(),
		memory.NewTicketIndex(),
		ticketID,
	)

	result, err := flightsfile.Load(cfg.FlightsFile)
	if err != nil {
		// A missing flights file is not fatal; the loop starts with an
		// empty registry.
		log.Printf("Unable to open file: %s", cfg.FlightsFile)
	} else {
		for _, flight := range result.Flights {
			manager.AddFlight(flight.Code, flight)
		}
		log.Printf("Loaded %d flights from %s (%d malformed lines skipped)",
			len(result.Flights), cfg.FlightsFile, result.Skipped)
	}

	h := handler.NewCommandHandler(manager, os.Stdout)
	h.Run(os.Stdin, cfg.Prompt)
}
