// Package cru loads the parsed schedule export (course -> raw slot records)
// into a domain.Dataset. Parsing the source text format itself happens
// upstream; this adapter only consumes its JSON output.
package cru

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"campustimetable/internal/domain"
)

// Decode reads a parsed schedule export from r and validates every record:
// known day token, non-empty room, non-negative capacity, start before end.
func Decode(r io.Reader) (domain.Dataset, error) {
	var dataset domain.Dataset
	if err := json.NewDecoder(r).Decode(&dataset); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	for course, records := range dataset {
		for i, rec := range records {
			if _, err := domain.ParseDay(rec.Day); err != nil {
				return nil, fmt.Errorf("course %s record %d: %w", course, i, err)
			}
			if rec.Room == "" {
				return nil, fmt.Errorf("course %s record %d: %w: missing salle", course, i, domain.ErrInvalidArgument)
			}
			if rec.Capacity < 0 {
				return nil, fmt.Errorf("course %s record %d: %w: negative capacite", course, i, domain.ErrInvalidArgument)
			}
			if rec.Start.TotalMinutes() > rec.End.TotalMinutes() {
				return nil, fmt.Errorf("course %s record %d: %w", course, i, domain.ErrInvalidRange)
			}
		}
	}
	return dataset, nil
}

// LoadFile decodes the export at path.
func LoadFile(path string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
