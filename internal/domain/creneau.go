package domain

import "errors"

// minutesPerDay is the length of one day on the linear week timeline.
const minutesPerDay = 24 * 60

var (
	// ErrInvalidAttribution indicates a slot bound to a room but not a
	// course, or the other way around.
	ErrInvalidAttribution = errors.New("room and course must both be set or both be empty")
	// ErrInvalidRange indicates a time range whose start lies after its end.
	ErrInvalidRange = errors.New("start time must not be after end time")
)

// Creneau is a day-scoped time slot, optionally attributed to a room and a
// course, with the headcount it was booked for. An unattributed Creneau
// represents a free window. Immutable after construction; all interval
// comparisons use the derived total-minute positions on the linear
// Monday-to-Sunday timeline.
type Creneau struct {
	Day         Day    `json:"day"`
	StartHour   int    `json:"start_hour"`
	StartMinute int    `json:"start_minute"`
	EndHour     int    `json:"end_hour"`
	EndMinute   int    `json:"end_minute"`
	Room        string `json:"room,omitempty"`
	Course      string `json:"course,omitempty"`
	Headcount   int    `json:"headcount"`

	StartTotalMinutes int `json:"start_total_minutes"`
	EndTotalMinutes   int `json:"end_total_minutes"`
}

// NewCreneau builds a slot and precomputes its timeline positions.
// Returns ErrInvalidAttribution when exactly one of room/course is given,
// ErrInvalidRange when the start lies after the end.
func NewCreneau(day Day, startHour, startMinute, endHour, endMinute int, room, course string, headcount int) (*Creneau, error) {
	if (room == "") != (course == "") {
		return nil, ErrInvalidAttribution
	}
	if startHour > endHour || (startHour == endHour && startMinute > endMinute) {
		return nil, ErrInvalidRange
	}
	return &Creneau{
		Day:               day,
		StartHour:         startHour,
		StartMinute:       startMinute,
		EndHour:           endHour,
		EndMinute:         endMinute,
		Room:              room,
		Course:            course,
		Headcount:         headcount,
		StartTotalMinutes: int(day)*minutesPerDay + startHour*60 + startMinute,
		EndTotalMinutes:   int(day)*minutesPerDay + endHour*60 + endMinute,
	}, nil
}

// NewUnattributedCreneau builds a slot bound to no room and no course,
// used for free windows and placeholders.
func NewUnattributedCreneau(day Day, startHour, startMinute, endHour, endMinute, headcount int) (*Creneau, error) {
	return NewCreneau(day, startHour, startMinute, endHour, endMinute, "", "", headcount)
}

// NewAttributedCreneau builds a slot bound to a room and a course.
func NewAttributedCreneau(day Day, startHour, startMinute, endHour, endMinute int, room, course string, headcount int) (*Creneau, error) {
	return NewCreneau(day, startHour, startMinute, endHour, endMinute, room, course, headcount)
}

// IsAttributed reports whether the slot is bound to both a room and a course.
func (c *Creneau) IsAttributed() bool {
	return c.Room != "" && c.Course != ""
}

// OverlapsWith reports half-open interval intersection: a slot ending
// exactly when another begins does not overlap it.
func (c *Creneau) OverlapsWith(other *Creneau) bool {
	return !(c.EndTotalMinutes <= other.StartTotalMinutes || c.StartTotalMinutes >= other.EndTotalMinutes)
}
