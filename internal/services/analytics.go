package services

import (
	"context"
	"fmt"
	"math"
	"sort"

	"campustimetable/internal/domain"
)

// Default daily window for availability queries, matching the teaching
// hours of the source schedules.
const (
	defaultWindowStart = "8:00"
	defaultWindowEnd   = "20:00"
)

type analyticsService struct {
	dataset domain.Dataset
}

// NewAnalyticsService returns an AnalyticsService answering queries over the
// given dataset snapshot. The snapshot must not be mutated while the service
// is in use; every method is then safe to call concurrently.
func NewAnalyticsService(dataset domain.Dataset) domain.AnalyticsService {
	return &analyticsService{dataset: dataset}
}

// formatMinutes renders a within-day minute count as H:MM.
func formatMinutes(m int) string {
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

func (s *analyticsService) roomExists(roomID string) bool {
	for _, records := range s.dataset {
		for _, rec := range records {
			if rec.Room == roomID {
				return true
			}
		}
	}
	return false
}

// sortedCourses returns the dataset's course keys in lexical order, so that
// every query walks records in a stable order.
func (s *analyticsService) sortedCourses() []string {
	courses := make([]string, 0, len(s.dataset))
	for course := range s.dataset {
		courses = append(courses, course)
	}
	sort.Strings(courses)
	return courses
}

func (s *analyticsService) RoomCapacity(ctx context.Context, roomID string) (int, error) {
	if roomID == "" {
		return 0, fmt.Errorf("%w: missing room", domain.ErrInvalidArgument)
	}
	if s.dataset.IsEmpty() {
		return 0, domain.ErrEmptyDataset
	}
	capacity, found := 0, false
	for _, records := range s.dataset {
		for _, rec := range records {
			if rec.Room != roomID {
				continue
			}
			found = true
			if rec.Capacity > capacity {
				capacity = rec.Capacity
			}
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomID)
	}
	return capacity, nil
}

func (s *analyticsService) RoomsForCourse(ctx context.Context, courseID string) ([]string, error) {
	if courseID == "" {
		return nil, fmt.Errorf("%w: missing course", domain.ErrInvalidArgument)
	}
	if s.dataset.IsEmpty() {
		return nil, domain.ErrEmptyDataset
	}
	records, ok := s.dataset[courseID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCourseNotFound, courseID)
	}
	seen := make(map[string]struct{})
	var rooms []string
	for _, rec := range records {
		if _, dup := seen[rec.Room]; dup {
			continue
		}
		seen[rec.Room] = struct{}{}
		rooms = append(rooms, rec.Room)
	}
	sort.Strings(rooms)
	return rooms, nil
}

func (s *analyticsService) RoomAvailability(ctx context.Context, roomID, windowStart, windowEnd string) (map[string][]domain.FreeInterval, error) {
	if roomID == "" {
		return nil, fmt.Errorf("%w: missing room", domain.ErrInvalidArgument)
	}
	if s.dataset.IsEmpty() {
		return nil, domain.ErrEmptyDataset
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
	if !s.roomExists(roomID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRoomNotFound, roomID)
	}
	startMin, endMin := start.TotalMinutes(), end.TotalMinutes()
	if startMin >= endMin {
		return nil, domain.ErrInvalidRange
	}

	out := make(map[string][]domain.FreeInterval, domain.NumDays)
	for d := domain.Day(0); d < domain.NumDays; d++ {
		token := d.String()
		var dayRecords []domain.Record
		for _, course := range s.sortedCourses() {
			for _, rec := range s.dataset[course] {
				if rec.Room == roomID && rec.Day == token {
					dayRecords = append(dayRecords, rec)
				}
			}
		}
		sort.SliceStable(dayRecords, func(i, j int) bool {
			return dayRecords[i].Start.TotalMinutes() < dayRecords[j].Start.TotalMinutes()
		})

		intervals := []domain.FreeInterval{}
		cur := startMin
		for _, rec := range dayRecords {
			recStart := rec.Start.TotalMinutes()
			if recStart > cur {
				gapEnd := min(recStart, endMin)
				if gapEnd > cur {
					intervals = append(intervals, domain.FreeInterval{Start: formatMinutes(cur), End: formatMinutes(gapEnd)})
				}
			}
			if rec.End.TotalMinutes() > cur {
				cur = rec.End.TotalMinutes()
			}
		}
		if cur < endMin {
			intervals = append(intervals, domain.FreeInterval{Start: formatMinutes(cur), End: formatMinutes(endMin)})
		}
		out[token] = intervals
	}
	return out, nil
}

func (s *analyticsService) FreeRoomsAt(ctx context.Context, day, windowStart, windowEnd string) ([]string, error) {
	if day == "" || windowStart == "" || windowEnd == "" {
		return nil, fmt.Errorf("%w: day, start and end are required", domain.ErrInvalidArgument)
	}
	if s.dataset.IsEmpty() {
		return nil, domain.ErrEmptyDataset
	}
	d, err := domain.ParseDay(day)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseClock(windowStart)
	if err != nil {
		return nil, err
	}
	end, err := domain.ParseClock(windowEnd)
	if err != nil {
		return nil, err
	}
	startMin, endMin := start.TotalMinutes(), end.TotalMinutes()
	if startMin >= endMin {
		return nil, domain.ErrInvalidRange
	}

	all := make(map[string]struct{})
	busy := make(map[string]struct{})
	token := d.String()
	for _, records := range s.dataset {
		for _, rec := range records {
			all[rec.Room] = struct{}{}
			if rec.Day != token {
				continue
			}
			if rec.Start.TotalMinutes() < endMin && rec.End.TotalMinutes() > startMin {
				busy[rec.Room] = struct{}{}
			}
		}
	}

	var free []string
	for room := range all {
		if _, taken := busy[room]; !taken {
			free = append(free, room)
		}
	}
	sort.Strings(free)
	return free, nil
}

// roomBooking is one raw record flattened with its course and its position
// on the linear week timeline.
type roomBooking struct {
	course string
	rec    domain.Record
	start  int
	end    int
}

func conflictSlot(b roomBooking) domain.ConflictSlot {
	return domain.ConflictSlot{
		Course: b.course,
		Day:    b.rec.Day,
		Start:  b.rec.Start.String(),
		End:    b.rec.End.String(),
	}
}

// DetectConflicts audits the raw records directly: it reports double bookings
// whether or not the offending records would ever pass aggregate insertion.
func (s *analyticsService) DetectConflicts(ctx context.Context) ([]domain.Conflict, error) {
	if s.dataset.IsEmpty() {
		return nil, domain.ErrEmptyDataset
	}

	byRoom := make(map[string][]roomBooking)
	for _, course := range s.sortedCourses() {
		for _, rec := range s.dataset[course] {
			d, err := domain.ParseDay(rec.Day)
			if err != nil {
				return nil, fmt.Errorf("course %s: %w", course, err)
			}
			weekStart := int(d)*24*60 + rec.Start.TotalMinutes()
			weekEnd := int(d)*24*60 + rec.End.TotalMinutes()
			byRoom[rec.Room] = append(byRoom[rec.Room], roomBooking{course: course, rec: rec, start: weekStart, end: weekEnd})
		}
	}

	rooms := make([]string, 0, len(byRoom))
	for room := range byRoom {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	var conflicts []domain.Conflict
	for _, room := range rooms {
		bookings := byRoom[room]
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[i].start < bookings[j].start
		})
		for i := 1; i < len(bookings); i++ {
			prev, curr := bookings[i-1], bookings[i]
			if prev.end > curr.start {
				conflicts = append(conflicts, domain.Conflict{
					Room:   room,
					First:  conflictSlot(prev),
					Second: conflictSlot(curr),
				})
			}
		}
	}
	return conflicts, nil
}

func (s *analyticsService) RankRoomsByCapacity(ctx context.Context) ([]domain.RoomCapacity, error) {
	if s.dataset.IsEmpty() {
		return nil, domain.ErrEmptyDataset
	}
	best := make(map[string]int)
	for _, records := range s.dataset {
		for _, rec := range records {
			if rec.Room == "" || rec.Capacity == 0 {
				continue
			}
			if rec.Capacity > best[rec.Room] {
				best[rec.Room] = rec.Capacity
			}
		}
	}
	ranking := make([]domain.RoomCapacity, 0, len(best))
	for room, capacity := range best {
		ranking = append(ranking, domain.RoomCapacity{Name: room, Capacity: capacity})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Capacity != ranking[j].Capacity {
			return ranking[i].Capacity > ranking[j].Capacity
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking, nil
}

// OccupancyRates relates each room's booked minutes to the active week span:
// per day, the stretch from the earliest start to the latest end seen across
// all rooms, summed over the week. The denominator is derived from the data,
// not a fixed business-hours constant.
func (s *analyticsService) OccupancyRates(ctx context.Context) ([]domain.RoomOccupancy, error) {
	if s.dataset.IsEmpty() {
		return nil, domain.ErrEmptyDataset
	}

	type span struct{ start, end int }
	booked := make(map[string]int)
	days := make(map[string]*span)
	for _, records := range s.dataset {
		for _, rec := range records {
			recStart, recEnd := rec.Start.TotalMinutes(), rec.End.TotalMinutes()
			booked[rec.Room] += recEnd - recStart
			sp, ok := days[rec.Day]
			if !ok {
				days[rec.Day] = &span{start: recStart, end: recEnd}
				continue
			}
			if recStart < sp.start {
				sp.start = recStart
			}
			if recEnd > sp.end {
				sp.end = recEnd
			}
		}
	}

	totalWeek := 0
	for _, sp := range days {
		totalWeek += sp.end - sp.start
	}

	rooms := make([]string, 0, len(booked))
	for room := range booked {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	rates := make([]domain.RoomOccupancy, 0, len(rooms))
	for _, room := range rooms {
		pct := 0.0
		if totalWeek > 0 {
			pct = float64(booked[room]) / float64(totalWeek) * 100
		}
		rates = append(rates, domain.RoomOccupancy{
			Room:       room,
			Percentage: math.Round(pct*100) / 100,
		})
	}
	return rates, nil
}
