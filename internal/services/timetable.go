package services

import (
	"context"
	"fmt"
	"sort"

	"campustimetable/internal/domain"
)

type timetableService struct {
	dataset domain.Dataset
}

// NewTimetableService returns a TimetableService over the given dataset
// snapshot. Building goes through Room/Course insertion, so a dataset with
// double bookings fails to build; DetectConflicts is the tool to audit those.
func NewTimetableService(dataset domain.Dataset) domain.TimetableService {
	return &timetableService{dataset: dataset}
}

func (s *timetableService) Build(ctx context.Context) (*domain.Timetable, error) {
	if s.dataset.IsEmpty() {
		return nil, domain.ErrEmptyDataset
	}

	courses := make([]string, 0, len(s.dataset))
	for course := range s.dataset {
		courses = append(courses, course)
	}
	sort.Strings(courses)

	tt := &domain.Timetable{
		Rooms:   make(map[string]*domain.Room),
		Courses: make(map[string]*domain.Course, len(courses)),
	}
	for _, name := range courses {
		course := domain.NewCourse(name)
		tt.Courses[name] = course
		for _, rec := range s.dataset[name] {
			day, err := domain.ParseDay(rec.Day)
			if err != nil {
				return nil, fmt.Errorf("course %s: %w", name, err)
			}
			slot, err := domain.NewAttributedCreneau(day, rec.Start.Hour, rec.Start.Minute, rec.End.Hour, rec.End.Minute, rec.Room, name, rec.Capacity)
			if err != nil {
				return nil, fmt.Errorf("course %s: %w", name, err)
			}
			if err := course.AddSlot(slot); err != nil {
				return nil, fmt.Errorf("course %s: %w", name, err)
			}
			room, ok := tt.Rooms[rec.Room]
			if !ok {
				room = domain.NewRoom(rec.Room)
				tt.Rooms[rec.Room] = room
			}
			if err := room.AddSlot(slot); err != nil {
				return nil, fmt.Errorf("room %s: %w", rec.Room, err)
			}
		}
	}
	return tt, nil
}

// RoomWeekAvailability runs the week-spanning free-window walk of the Room
// aggregate, as opposed to AnalyticsService.RoomAvailability which works
// per day on the raw records.
func (s *timetableService) RoomWeekAvailability(ctx context.Context, roomID, windowStart, windowEnd string) ([]*domain.Creneau, error) {
	if roomID == "" {
		return nil, fmt.Errorf("%w: missing room", domain.ErrInvalidArgument)
	}
	if windowStart == "" {
		windowStart = defaultWindowStart
	}
	if windowEnd == "" {
		windowEnd = defaultWindowEnd
	}
	start, err := domain.ParseClock(windowStart)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock(windowEnd)
	if err != nil {
		return nil, err
	}

	tt, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	room, ok := tt.Rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomID)
	}
	return room.AvailableSlots(start.Hour, start.Minute, end.Hour, end.Minute)
}
