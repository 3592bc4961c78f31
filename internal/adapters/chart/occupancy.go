// Package chart writes occupancy rates as the data file consumed by the
// Vega-Lite occupancy page. The page itself ships separately; only the JS
// data assignment is produced here.
package chart

import (
	"encoding/json"
	"fmt"
	"os"

	"campustimetable/internal/domain"
)

// vegaRow is one chart datum, with the field names the occupancy page binds to.
type vegaRow struct {
	Room string  `json:"nom_salle"`
	Rate float64 `json:"taux_occupation"`
}

type occupancyWriter struct{}

// NewOccupancyWriter returns the Vega-Lite OccupancyChartWriter.
func NewOccupancyWriter() domain.OccupancyChartWriter {
	return occupancyWriter{}
}

// Write renders rates as "var dataOccupation = [...];" at path.
func (occupancyWriter) Write(path string, rates []domain.RoomOccupancy) error {
	if len(rates) == 0 {
		return domain.ErrEmptyDataset
	}
	rows := make([]vegaRow, 0, len(rates))
	for _, r := range rates {
		rows = append(rows, vegaRow{Room: r.Room, Rate: r.Percentage})
	}
	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal occupancy data: %w", err)
	}
	content := fmt.Sprintf("var dataOccupation = %s;\n", payload)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write occupancy data: %w", err)
	}
	return nil
}
