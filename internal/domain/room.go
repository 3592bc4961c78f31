package domain

import (
	"errors"
	"sort"
)

// ErrSlotConflict indicates an insertion that overlaps an already assigned slot.
var ErrSlotConflict = errors.New("slot overlaps an existing one")

// Room owns the slots assigned to one physical room. Capacity is the largest
// headcount ever inserted and is never lowered. Assigned slots never overlap.
type Room struct {
	Name     string     `json:"name"`
	Capacity int        `json:"capacity"`
	Slots    []*Creneau `json:"slots"`
}

// NewRoom returns an empty room with capacity 0.
func NewRoom(name string) *Room {
	return &Room{Name: name}
}

// AddSlot appends the slot and raises the room capacity to the slot headcount
// if larger. Returns ErrSlotConflict when the slot overlaps any assigned slot;
// the room is left untouched on failure.
func (r *Room) AddSlot(c *Creneau) error {
	if !r.IsAvailableAt(c) {
		return ErrSlotConflict
	}
	r.Slots = append(r.Slots, c)
	if c.Headcount > r.Capacity {
		r.Capacity = c.Headcount
	}
	return nil
}

// IsAvailableAt reports whether no assigned slot overlaps c.
func (r *Room) IsAvailableAt(c *Creneau) bool {
	for _, existing := range r.Slots {
		if c.OverlapsWith(existing) {
			return false
		}
	}
	return true
}

// endOfWeekSentinel anchors the availability walk just past the last day so
// the final gap closes at the window end. Built as a literal: a 23:60 start
// would not pass NewCreneau.
func endOfWeekSentinel() *Creneau {
	return &Creneau{
		Day:               Sunday,
		StartHour:         23,
		StartMinute:       60,
		StartTotalMinutes: int(Sunday)*minutesPerDay + 23*60 + 60,
	}
}

// freeWindow builds an unattributed slot for an already validated interval.
func freeWindow(day Day, startHour, startMinute, endHour, endMinute int) *Creneau {
	return &Creneau{
		Day:               day,
		StartHour:         startHour,
		StartMinute:       startMinute,
		EndHour:           endHour,
		EndMinute:         endMinute,
		StartTotalMinutes: int(day)*minutesPerDay + startHour*60 + startMinute,
		EndTotalMinutes:   int(day)*minutesPerDay + endHour*60 + endMinute,
	}
}

// AvailableSlots returns the free windows of this room for every day of the
// week, clipped to the daily window [min, max). The walk keeps a cursor at the
// last known free-from position, emits one window per fully skipped day, and
// only ever emits intervals of strictly positive duration. Returns
// ErrInvalidRange when min >= max.
func (r *Room) AvailableSlots(minHour, minMinute, maxHour, maxMinute int) ([]*Creneau, error) {
	if minHour > maxHour || (minHour == maxHour && minMinute >= maxMinute) {
		return nil, ErrInvalidRange
	}

	sorted := make([]*Creneau, len(r.Slots), len(r.Slots)+1)
	copy(sorted, r.Slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTotalMinutes < sorted[j].StartTotalMinutes
	})
	sorted = append(sorted, endOfWeekSentinel())

	var free []*Creneau
	lastDay, lastEndHour, lastEndMinute := Monday, 0, 0

	for _, c := range sorted {
		// Close out every day the cursor has to cross before reaching
		// this slot's day.
		for lastDay < c.Day {
			startHour := max(lastEndHour, minHour)
			startMinute := max(lastEndMinute, minMinute)
			if startHour < maxHour || (startHour == maxHour && startMinute < maxMinute) {
				free = append(free, freeWindow(lastDay, startHour, startMinute, maxHour, maxMinute))
			}
			lastDay++
			lastEndHour, lastEndMinute = minHour, minMinute
		}

		startHour := max(lastEndHour, minHour)
		startMinute := lastEndMinute
		if startHour == minHour {
			startMinute = max(lastEndMinute, minMinute)
		}
		endHour := min(c.StartHour, maxHour)
		endMinute := c.StartMinute
		if endHour == maxHour {
			endMinute = min(c.StartMinute, maxMinute)
		}
		if startHour < endHour || (startHour == endHour && startMinute < endMinute) {
			free = append(free, freeWindow(lastDay, startHour, startMinute, endHour, endMinute))
		}

		lastDay, lastEndHour, lastEndMinute = c.Day, c.EndHour, c.EndMinute
	}

	return free, nil
}
