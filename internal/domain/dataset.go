package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrEmptyDataset indicates that no parsed schedule has been loaded.
	ErrEmptyDataset = errors.New("no schedule dataset loaded")
	// ErrRoomNotFound indicates a room referenced by no record in the dataset.
	ErrRoomNotFound = errors.New("room not found")
	// ErrCourseNotFound indicates a course key absent from the dataset.
	ErrCourseNotFound = errors.New("course not found")
	// ErrInvalidArgument indicates a missing or malformed query parameter.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ClockTime is a time of day carried on the wire as a [hour, minute] pair,
// the shape the parsed schedule export uses for heureDebut and heureFin.
type ClockTime struct {
	Hour   int
	Minute int
}

// TotalMinutes returns the position of the time within its day.
func (t ClockTime) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

// String formats as H:MM without zero-padding the hour, matching the
// source export format.
func (t ClockTime) String() string {
	return fmt.Sprintf("%d:%02d", t.Hour, t.Minute)
}

// MarshalJSON encodes the time as the wire pair [hour, minute].
func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{t.Hour, t.Minute})
}

// UnmarshalJSON decodes a [hour, minute] pair and validates both ranges.
func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if pair[0] < 0 || pair[0] > 23 || pair[1] < 0 || pair[1] > 59 {
		return fmt.Errorf("%w: time [%d, %d] out of range", ErrInvalidArgument, pair[0], pair[1])
	}
	t.Hour, t.Minute = pair[0], pair[1]
	return nil
}

// clockRe matches H:MM and HH:MM with 0-23 hours and 0-59 minutes.
var clockRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock parses an H:MM / HH:MM query string into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, fmt.Errorf("%w: time %q must match H:MM", ErrInvalidArgument, s)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return ClockTime{Hour: hour, Minute: minute}, nil
}

// Record is one raw slot line of the parsed schedule export. It carries
// loose fields rather than a validated Creneau: analytics audit these
// records directly, whether or not they would pass aggregate insertion.
type Record struct {
	Day      string    `json:"jour"`
	Start    ClockTime `json:"heureDebut"`
	End      ClockTime `json:"heureFin"`
	Room     string    `json:"salle"`
	Capacity int       `json:"capacite"`
}

// Dataset maps each course identifier to its raw slot records. It is the
// primary external input of the system, produced by the schedule parser.
type Dataset map[string][]Record

// IsEmpty reports whether the dataset is absent or has no course at all.
func (d Dataset) IsEmpty() bool {
	return len(d) == 0
}
