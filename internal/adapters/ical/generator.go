// Package ical renders iCalendar exports of course schedules. Each raw slot
// record becomes one weekly-recurring VEVENT over the requested date range.
package ical

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"campustimetable/internal/domain"

	"github.com/google/uuid"
)

// ErrNoEvents indicates that no slot of the requested courses falls inside
// the export date range. It wraps ErrInvalidArgument so callers map it to a
// rejected request rather than a server failure.
var ErrNoEvents = fmt.Errorf("%w: no events matched the export criteria", domain.ErrInvalidArgument)

// dateRe matches the YYYY-MM-DD date arguments of an export request.
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const (
	dateLayout  = "2006-01-02"
	stampLayout = "20060102T150405"
)

type generator struct{}

// NewGenerator returns the iCalendar CalendarExporter.
func NewGenerator() domain.CalendarExporter {
	return generator{}
}

// Generate renders a VCALENDAR with one weekly VEVENT per record of each
// requested course found in the dataset, anchored on the first occurrence of
// the record's weekday on or after startDate and repeating until endDate.
// Courses absent from the dataset are reported missing, not fatal; an export
// that yields no event at all fails with ErrNoEvents.
func (generator) Generate(ctx context.Context, dataset domain.Dataset, courses []string, startDate, endDate string) (string, *domain.ExportReport, error) {
	if dataset.IsEmpty() {
		return "", nil, domain.ErrEmptyDataset
	}
	if len(courses) == 0 || startDate == "" || endDate == "" {
		return "", nil, fmt.Errorf("%w: start date, end date and courses are required", domain.ErrInvalidArgument)
	}
	if !dateRe.MatchString(startDate) || !dateRe.MatchString(endDate) {
		return "", nil, fmt.Errorf("%w: dates must match YYYY-MM-DD", domain.ErrInvalidArgument)
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, endDate)
	}
	if start.After(end) {
		return "", nil, domain.ErrInvalidRange
	}

	report := &domain.ExportReport{}
	var events []string
	for _, course := range dedupe(courses) {
		records, ok := dataset[course]
		if !ok {
			report.CoursesMissing = append(report.CoursesMissing, course)
			continue
		}
		report.CoursesFound = append(report.CoursesFound, course)
		for _, rec := range records {
			day, err := domain.ParseDay(rec.Day)
			if err != nil {
				return "", nil, fmt.Errorf("course %s: %w", course, err)
			}
			if ev := buildEvent(course, rec, day, start, end); ev != "" {
				events = append(events, ev)
			}
		}
	}
	sort.Strings(report.CoursesMissing)

	if len(events) == 0 {
		return "", report, ErrNoEvents
	}
	report.EventsCount = len(events)

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//campustimetable//schedule export//EN\r\n")
	for _, ev := range events {
		b.WriteString(ev)
	}
	b.WriteString("END:VCALENDAR\r\n")
	return b.String(), report, nil
}

func dedupe(courses []string) []string {
	seen := make(map[string]struct{}, len(courses))
	var out []string
	for _, c := range courses {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// firstOccurrence returns the first date on or after from that falls on day.
// Day is Monday-first while time.Weekday is Sunday-first.
func firstOccurrence(from time.Time, day domain.Day) time.Time {
	want := (int(day) + 1) % 7
	delta := (want - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, delta)
}

// buildEvent renders one weekly VEVENT, or "" when the slot's weekday has no
// occurrence inside the range.
func buildEvent(course string, rec domain.Record, day domain.Day, start, end time.Time) string {
	first := firstOccurrence(start, day)
	if first.After(end) {
		return ""
	}
	dtStart := time.Date(first.Year(), first.Month(), first.Day(), rec.Start.Hour, rec.Start.Minute, 0, 0, time.UTC)
	dtEnd := time.Date(first.Year(), first.Month(), first.Day(), rec.End.Hour, rec.End.Minute, 0, 0, time.UTC)
	until := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, time.UTC)

	var b strings.Builder
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s@campustimetable\r\n", uuid.NewString())
	fmt.Fprintf(&b, "SUMMARY:%s\r\n", course)
	fmt.Fprintf(&b, "LOCATION:%s\r\n", rec.Room)
	fmt.Fprintf(&b, "DTSTART:%s\r\n", dtStart.Format(stampLayout))
	fmt.Fprintf(&b, "DTEND:%s\r\n", dtEnd.Format(stampLayout))
	fmt.Fprintf(&b, "RRULE:FREQ=WEEKLY;UNTIL=%s\r\n", until.Format(stampLayout))
	b.WriteString("END:VEVENT\r\n")
	return b.String()
}
