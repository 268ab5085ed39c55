package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFlightsFile = "flights.txt"
	DefaultPrompt      = "Enter command (type 'exit' to quit): "

	TicketIDsDerived = "derived"
	TicketIDsRandom  = "random"
)

type Config struct {
	FlightsFile string `yaml:"flights_file"`
	Prompt      string `yaml:"prompt"`
	TicketIDs   string `yaml:"ticket_ids"`
}

func Default() Config {
	return Config{
		FlightsFile: DefaultFlightsFile,
		Prompt:      DefaultPrompt,
		TicketIDs:   TicketIDsDerived,
	}
}

// Load reads the YAML config at path. A missing file is not an error,
// the defaults apply; keys absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.FlightsFile == "" {
		cfg.FlightsFile = DefaultFlightsFile
	}
	if cfg.TicketIDs == "" {
		cfg.TicketIDs = TicketIDsDerived
	}

	switch cfg.TicketIDs {
	case TicketIDsDerived, TicketIDsRandom:
	default:
		return cfg, fmt.Errorf("unknown ticket_ids strategy %q", cfg.TicketIDs)
	}

	return cfg, nil
}
