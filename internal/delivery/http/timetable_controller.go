package http

import (
	"errors"
	"log/slog"
	"net/http"

	"campustimetable/internal/domain"
)

// TimetableController serves the scheduling queries: capacity, availability,
// free rooms, conflict audit, ranking and occupancy.
type TimetableController struct {
	Logger    *slog.Logger
	Analytics domain.AnalyticsService
	Timetable domain.TimetableService

	// ChartWriter and ChartDataPath, when both set, persist occupancy
	// rates as chart data on every occupancy query.
	ChartWriter   domain.OccupancyChartWriter
	ChartDataPath string
}

// NewTimetableController wires the query services into HTTP handlers.
func NewTimetableController(logger *slog.Logger, analytics domain.AnalyticsService, timetable domain.TimetableService) *TimetableController {
	return &TimetableController{
		Logger:    logger,
		Analytics: analytics,
		Timetable: timetable,
	}
}

// writeDomainError maps the domain error taxonomy onto HTTP statuses.
// Unknown errors are logged and reported as 500.
func writeDomainError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrCourseNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrEmptyDataset):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, "no dataset loaded")
	case errors.Is(err, domain.ErrSlotConflict):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidDay),
		errors.Is(err, domain.ErrInvalidAttribution):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		logger.Error("request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
	}
}

// RoomCapacityResponse is the data payload for GET /rooms/{roomID}/capacity.
type RoomCapacityResponse struct {
	Room     string `json:"room"`
	Capacity int    `json:"capacity"`
}

// RoomCapacitySuccessResponse is the success envelope for GET /rooms/{roomID}/capacity (200).
type RoomCapacitySuccessResponse struct {
	Data  RoomCapacityResponse `json:"data"`
	Error *APIError            `json:"error"`
}

// RoomCapacity godoc
// @Summary Maximum capacity of a room
// @Description Returns the largest headcount any course ever books the room for.
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room name"
// @Success 200 {object} http.RoomCapacitySuccessResponse "data contains room and capacity"
// @Failure 404 {object} http.APIResponse "error.code: not_found"
// @Failure 409 {object} http.APIResponse "error.code: conflict (no dataset loaded)"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /rooms/{roomID}/capacity [get]
func (c *TimetableController) RoomCapacity(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	capacity, err := c.Analytics.RoomCapacity(r.Context(), roomID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	WriteJSONSuccess(w, http.StatusOK, RoomCapacityResponse{Room: roomID, Capacity: capacity})
}

// CourseRoomsSuccessResponse is the success envelope for GET /courses/{courseID}/rooms (200).
type CourseRoomsSuccessResponse struct {
	Data  []string  `json:"data"`
	Error *APIError `json:"error"`
}

// CourseRooms godoc
// @Summary Rooms used by a course
// @Description Returns the sorted, deduplicated room names the course is scheduled in.
// @Tags courses
// @Produce json
// @Param courseID path string true "Course identifier"
// @Success 200 {object} http.CourseRoomsSuccessResponse "data is an array of room names"
// @Failure 404 {object} http.APIResponse "error.code: not_found"
// @Failure 409 {object} http.APIResponse "error.code: conflict (no dataset loaded)"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /courses/{courseID}/rooms [get]
func (c *TimetableController) CourseRooms(w http.ResponseWriter, r *http.Request) {
	courseID := r.PathValue("courseID")
	rooms, err := c.Analytics.RoomsForCourse(r.Context(), courseID)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if rooms == nil {
		rooms = []string{}
	}
	WriteJSONSuccess(w, http.StatusOK, rooms)
}

// RoomAvailabilitySuccessResponse is the success envelope for GET /rooms/{roomID}/availability (200).
type RoomAvailabilitySuccessResponse struct {
	Data  map[string][]domain.FreeInterval `json:"data"`
	Error *APIError                        `json:"error"`
}

// RoomAvailability godoc
// @Summary Free intervals of a room, per day
// @Description For each canonical day, lists the free sub-intervals of the daily window not covered by any booking of the room. Defaults to 8:00-20:00.
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room name"
// @Param start query string false "Window start (H:MM, default 8:00)"
// @Param end query string false "Window end (H:MM, default 20:00)"
// @Success 200 {object} http.RoomAvailabilitySuccessResponse "data maps day token to free intervals"
// @Failure 400 {object} http.APIResponse "error.code: bad_request"
// @Failure 404 {object} http.APIResponse "error.code: not_found"
// @Failure 409 {object} http.APIResponse "error.code: conflict (no dataset loaded)"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /rooms/{roomID}/availability [get]
func (c *TimetableController) RoomAvailability(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	q := r.URL.Query()
	availability, err := c.Analytics.RoomAvailability(r.Context(), roomID, q.Get("start"), q.Get("end"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	WriteJSONSuccess(w, http.StatusOK, availability)
}

// RoomWeekAvailabilitySuccessResponse is the success envelope for GET /rooms/{roomID}/week-availability (200).
type RoomWeekAvailabilitySuccessResponse struct {
	Data  []*domain.Creneau `json:"data"`
	Error *APIError         `json:"error"`
}

// RoomWeekAvailability godoc
// @Summary Free windows of a room across the whole week
// @Description Runs the aggregate week-spanning walk: free windows in day/time order, one entry per gap, clipped to the daily window. Fails with 409 when the dataset itself has double bookings; use /conflicts to audit those.
// @Tags rooms
// @Produce json
// @Param roomID path string true "Room name"
// @Param start query string false "Daily window start (H:MM, default 8:00)"
// @Param end query string false "Daily window end (H:MM, default 20:00)"
// @Success 200 {object} http.RoomWeekAvailabilitySuccessResponse "data is an array of free slots"
// @Failure 400 {object} http.APIResponse "error.code: bad_request"
// @Failure 404 {object} http.APIResponse "error.code: not_found"
// @Failure 409 {object} http.APIResponse "error.code: conflict"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /rooms/{roomID}/week-availability [get]
func (c *TimetableController) RoomWeekAvailability(w http.ResponseWriter, r *http.Request) {
	roomID := r.PathValue("roomID")
	q := r.URL.Query()
	slots, err := c.Timetable.RoomWeekAvailability(r.Context(), roomID, q.Get("start"), q.Get("end"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if slots == nil {
		slots = []*domain.Creneau{}
	}
	WriteJSONSuccess(w, http.StatusOK, slots)
}

// FreeRoomsSuccessResponse is the success envelope for GET /rooms/free (200).
type FreeRoomsSuccessResponse struct {
	Data  []string  `json:"data"`
	Error *APIError `json:"error"`
}

// FreeRooms godoc
// @Summary Rooms free during a time window
// @Description Returns all rooms with no booking overlapping the window on the given day, sorted by name.
// @Tags rooms
// @Produce json
// @Param day query string true "Canonical day token (Lundi..Dimanche)"
// @Param start query string true "Window start (H:MM)"
// @Param end query string true "Window end (H:MM)"
// @Success 200 {object} http.FreeRoomsSuccessResponse "data is an array of room names"
// @Failure 400 {object} http.APIResponse "error.code: bad_request"
// @Failure 409 {object} http.APIResponse "error.code: conflict (no dataset loaded)"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /rooms/free [get]
func (c *TimetableController) FreeRooms(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rooms, err := c.Analytics.FreeRoomsAt(r.Context(), q.Get("day"), q.Get("start"), q.Get("end"))
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if rooms == nil {
		rooms = []string{}
	}
	WriteJSONSuccess(w, http.StatusOK, rooms)
}

// ConflictsSuccessResponse is the success envelope for GET /conflicts (200).
type ConflictsSuccessResponse struct {
	Data  []domain.Conflict `json:"data"`
	Error *APIError         `json:"error"`
}

// Conflicts godoc
// @Summary Audit the dataset for double bookings
// @Description Reports every pair of consecutive bookings (per room, sorted by start) that overlap. An empty array means a clean dataset.
// @Tags conflicts
// @Produce json
// @Success 200 {object} http.ConflictsSuccessResponse "data is an array of conflicting pairs"
// @Failure 409 {object} http.APIResponse "error.code: conflict (no dataset loaded)"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /conflicts [get]
func (c *TimetableController) Conflicts(w http.ResponseWriter, r *http.Request) {
	conflicts, err := c.Analytics.DetectConflicts(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if conflicts == nil {
		conflicts = []domain.Conflict{}
	}
	WriteJSONSuccess(w, http.StatusOK, conflicts)
}

// RankingSuccessResponse is the success envelope for GET /rooms/ranking (200).
type RankingSuccessResponse struct {
	Data  []domain.RoomCapacity `json:"data"`
	Error *APIError             `json:"error"`
}

// Ranking godoc
// @Summary Rooms ranked by capacity
// @Description Returns rooms with their maximum booked headcount, descending.
// @Tags rooms
// @Produce json
// @Success 200 {object} http.RankingSuccessResponse "data is the capacity ranking"
// @Failure 409 {object} http.APIResponse "error.code: conflict (no dataset loaded)"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /rooms/ranking [get]
func (c *TimetableController) Ranking(w http.ResponseWriter, r *http.Request) {
	ranking, err := c.Analytics.RankRoomsByCapacity(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	WriteJSONSuccess(w, http.StatusOK, ranking)
}

// OccupancySuccessResponse is the success envelope for GET /rooms/occupancy (200).
type OccupancySuccessResponse struct {
	Data  []domain.RoomOccupancy `json:"data"`
	Error *APIError              `json:"error"`
}

// Occupancy godoc
// @Summary Occupancy rate per room
// @Description Returns each room's booked minutes as a percentage of the active week span. When chart export is configured, also refreshes the chart data file.
// @Tags rooms
// @Produce json
// @Success 200 {object} http.OccupancySuccessResponse "data is an array of room percentages"
// @Failure 409 {object} http.APIResponse "error.code: conflict (no dataset loaded)"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /rooms/occupancy [get]
func (c *TimetableController) Occupancy(w http.ResponseWriter, r *http.Request) {
	rates, err := c.Analytics.OccupancyRates(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	if c.ChartWriter != nil && c.ChartDataPath != "" {
		if err := c.ChartWriter.Write(c.ChartDataPath, rates); err != nil {
			// The query result is still valid without the artifact.
			c.Logger.Warn("chart data not written", "path", c.ChartDataPath, "err", err)
		}
	}
	WriteJSONSuccess(w, http.StatusOK, rates)
}

// ValidateResponse is the data payload for POST /timetable/validate (200).
type ValidateResponse struct {
	Status  string `json:"status"`
	Rooms   int    `json:"rooms"`
	Courses int    `json:"courses"`
}

// ValidateSuccessResponse is the success envelope for POST /timetable/validate (200).
type ValidateSuccessResponse struct {
	Data  ValidateResponse `json:"data"`
	Error *APIError        `json:"error"`
}

// Validate godoc
// @Summary Validate the dataset against the aggregate invariants
// @Description Rebuilds the Room and Course aggregates from the raw records. 200 with counts when every insertion succeeds, 409 on the first overlap.
// @Tags conflicts
// @Produce json
// @Success 200 {object} http.ValidateSuccessResponse "data contains status and aggregate counts"
// @Failure 400 {object} http.APIResponse "error.code: bad_request"
// @Failure 409 {object} http.APIResponse "error.code: conflict"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /timetable/validate [post]
func (c *TimetableController) Validate(w http.ResponseWriter, r *http.Request) {
	tt, err := c.Timetable.Build(r.Context())
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	WriteJSONSuccess(w, http.StatusOK, ValidateResponse{
		Status:  "ok",
		Rooms:   len(tt.Rooms),
		Courses: len(tt.Courses),
	})
}
