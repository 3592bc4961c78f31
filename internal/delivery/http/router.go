package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(timetableController *TimetableController, exportController *ExportController) *http.ServeMux {
	mux := http.NewServeMux()

	// Room queries
	mux.HandleFunc("GET /rooms/free", timetableController.FreeRooms)
	mux.HandleFunc("GET /rooms/ranking", timetableController.Ranking)
	mux.HandleFunc("GET /rooms/occupancy", timetableController.Occupancy)
	mux.HandleFunc("GET /rooms/{roomID}/capacity", timetableController.RoomCapacity)
	mux.HandleFunc("GET /rooms/{roomID}/availability", timetableController.RoomAvailability)
	mux.HandleFunc("GET /rooms/{roomID}/week-availability", timetableController.RoomWeekAvailability)

	// Course queries
	mux.HandleFunc("GET /courses/{courseID}/rooms", timetableController.CourseRooms)

	// Dataset audit
	mux.HandleFunc("GET /conflicts", timetableController.Conflicts)
	mux.HandleFunc("POST /timetable/validate", timetableController.Validate)

	// Exports
	mux.HandleFunc("POST /exports/ical", exportController.ExportICal)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
