package http

import (
	"log/slog"
	"net/http"

	"campustimetable/internal/domain"
)

// ExportController serves calendar exports of the loaded dataset.
type ExportController struct {
	Logger   *slog.Logger
	Exporter domain.CalendarExporter
	Dataset  domain.Dataset
}

// NewExportController wires the calendar exporter into an HTTP handler.
func NewExportController(logger *slog.Logger, exporter domain.CalendarExporter, dataset domain.Dataset) *ExportController {
	return &ExportController{
		Logger:   logger,
		Exporter: exporter,
		Dataset:  dataset,
	}
}

// ExportICalRequest is the request body for POST /exports/ical.
type ExportICalRequest struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Courses   []string `json:"courses"`
}

// Validate implements Validator.
func (e ExportICalRequest) Validate() []string {
	var errs []string
	if e.StartDate == "" {
		errs = append(errs, "start_date is required")
	}
	if e.EndDate == "" {
		errs = append(errs, "end_date is required")
	}
	if len(e.Courses) == 0 {
		errs = append(errs, "courses is required")
	}
	return errs
}

// ExportICalResponse is the data payload for POST /exports/ical (200).
type ExportICalResponse struct {
	Content string              `json:"content"`
	Report  *domain.ExportReport `json:"report"`
}

// ExportICalSuccessResponse is the success envelope for POST /exports/ical (200).
type ExportICalSuccessResponse struct {
	Data  ExportICalResponse `json:"data"`
	Error *APIError          `json:"error"`
}

// ExportICal godoc
// @Summary Export courses as an iCalendar file
// @Description Renders one weekly-recurring event per slot of each requested course, between start_date and end_date (YYYY-MM-DD). Unknown courses are listed in the report, not fatal.
// @Tags exports
// @Accept json
// @Produce json
// @Param body body ExportICalRequest true "Date range and course identifiers"
// @Success 200 {object} http.ExportICalSuccessResponse "data contains the ics content and the export report"
// @Failure 400 {object} http.APIResponse "error.code: bad_request"
// @Failure 409 {object} http.APIResponse "error.code: conflict (no dataset loaded)"
// @Failure 500 {object} http.APIResponse "error.code: internal_error"
// @Router /exports/ical [post]
func (c *ExportController) ExportICal(w http.ResponseWriter, r *http.Request) {
	var req ExportICalRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	content, report, err := c.Exporter.Generate(r.Context(), c.Dataset, req.Courses, req.StartDate, req.EndDate)
	if err != nil {
		writeDomainError(c.Logger, w, r, err)
		return
	}
	WriteJSONSuccess(w, http.StatusOK, ExportICalResponse{Content: content, Report: report})
}
