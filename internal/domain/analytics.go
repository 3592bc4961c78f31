package domain

import "context"

// FreeInterval is one free sub-window of a day, formatted H:MM.
type FreeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ConflictSlot is one side of a double booking.
type ConflictSlot struct {
	Course string `json:"course"`
	Day    string `json:"day"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Conflict is a pair of overlapping bookings in the same room.
type Conflict struct {
	Room   string       `json:"room"`
	First  ConflictSlot `json:"first"`
	Second ConflictSlot `json:"second"`
}

// RoomCapacity is one entry of the capacity ranking.
type RoomCapacity struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// RoomOccupancy is one room's booked time as a percentage of the active
// week span.
type RoomOccupancy struct {
	Room       string  `json:"room"`
	Percentage float64 `json:"percentage"`
}

// ExportReport summarizes a calendar export: which requested courses were
// found, which were unknown, and how many events were rendered.
type ExportReport struct {
	EventsCount    int      `json:"events_count"`
	CoursesFound   []string `json:"courses_found"`
	CoursesMissing []string `json:"courses_missing"`
}

// AnalyticsService answers scheduling queries over the whole parsed dataset.
// Implementations are pure functions of the dataset snapshot they were built
// with; all methods are safe to call concurrently.
type AnalyticsService interface {
	RoomCapacity(ctx context.Context, roomID string) (int, error)
	RoomsForCourse(ctx context.Context, courseID string) ([]string, error)
	RoomAvailability(ctx context.Context, roomID, windowStart, windowEnd string) (map[string][]FreeInterval, error)
	FreeRoomsAt(ctx context.Context, day, windowStart, windowEnd string) ([]string, error)
	DetectConflicts(ctx context.Context) ([]Conflict, error)
	RankRoomsByCapacity(ctx context.Context) ([]RoomCapacity, error)
	OccupancyRates(ctx context.Context) ([]RoomOccupancy, error)
}

// Timetable holds the Room and Course aggregates built from one dataset.
type Timetable struct {
	Rooms   map[string]*Room
	Courses map[string]*Course
}

// TimetableService builds and queries the aggregate view of the dataset.
// Unlike AnalyticsService it goes through Room/Course insertion, so it
// rejects datasets the raw-record auditor would merely report on.
type TimetableService interface {
	Build(ctx context.Context) (*Timetable, error)
	RoomWeekAvailability(ctx context.Context, roomID, windowStart, windowEnd string) ([]*Creneau, error)
}

// CalendarExporter renders a calendar file for a set of courses over a
// date range.
type CalendarExporter interface {
	Generate(ctx context.Context, dataset Dataset, courses []string, startDate, endDate string) (string, *ExportReport, error)
}

// OccupancyChartWriter persists occupancy rates as chart data for the
// reporting page.
type OccupancyChartWriter interface {
	Write(path string, rates []RoomOccupancy) error
}
