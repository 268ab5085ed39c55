package flightsfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"flight-ticket-manager/internal/core/domain"
)

// Record is one well-formed line of the flights file.
type Record struct {
	Code          string
	Origin        string
	Destination   string
	DepartureTime string
	ArrivalTime   string
	Model         string
	Capacity      int
}

// Result is the outcome of loading a flights file. Skipped counts the
// non-empty lines that failed to parse.
type Result struct {
	Flights []*domain.Flight
	Skipped int
}

// ParseLine splits a line into the seven flight fields: code, origin,
// destination, departure time, arrival time, aircraft model, capacity.
// Fields past the seventh are ignored. Lines with fewer fields or a
// non-integer capacity are rejected, not reported.
func ParseLine(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 7 {
		return Record{}, false
	}

	capacity, err := strconv.Atoi(fields[6])
	if err != nil {
		return Record{}, false
	}

	return Record{
		Code:          fields[0],
		Origin:        fields[1],
		Destination:   fields[2],
		DepartureTime: fields[3],
		ArrivalTime:   fields[4],
		Model:         fields[5],
		Capacity:      capacity,
	}, true
}

// Flight builds the domain flight for the record.
func (r Record) Flight() *domain.Flight {
	aircraft := domain.Aircraft{Model: r.Model, Capacity: r.Capacity}
	return domain.NewFlight(r.Code, aircraft, r.Origin, r.Destination, r.DepartureTime, r.ArrivalTime)
}

// Load reads the flights file at path. Malformed lines are counted and
// skipped, blank lines are ignored, and loading always continues to the
// end; only a file that cannot be opened or read is an error. Duplicate
// flight codes are not resolved here, every record is returned in file
// order so the registry's insert order decides which one wins.
func Load(path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", path, err)
	}
	defer file.Close()

	result := &Result{}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		record, ok := ParseLine(line)
		if !ok {
			result.Skipped++
			continue
		}
		result.Flights = append(result.Flights, record.Flight())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return result, nil
}
