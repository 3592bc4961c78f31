package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAttributed(t *testing.T, day Day, sh, sm, eh, em int, room, course string, headcount int) *Creneau {
	t.Helper()
	c, err := NewAttributedCreneau(day, sh, sm, eh, em, room, course, headcount)
	require.NoError(t, err)
	return c
}

func TestRoom_AddSlot(t *testing.T) {
	room := NewRoom("C201")
	first := mustAttributed(t, Monday, 10, 0, 12, 0, "C201", "MM01", 36)
	second := mustAttributed(t, Monday, 14, 0, 18, 0, "C201", "MM01", 50)

	require.NoError(t, room.AddSlot(first))
	assert.Equal(t, 36, room.Capacity)

	require.NoError(t, room.AddSlot(second))
	assert.Equal(t, 50, room.Capacity)

	// A smaller headcount never lowers the capacity.
	third := mustAttributed(t, Tuesday, 8, 0, 10, 0, "C201", "LO02", 12)
	require.NoError(t, room.AddSlot(third))
	assert.Equal(t, 50, room.Capacity)
}

func TestRoom_AddSlot_ConflictLeavesRoomUntouched(t *testing.T) {
	room := NewRoom("C201")
	require.NoError(t, room.AddSlot(mustAttributed(t, Monday, 10, 0, 12, 0, "C201", "MM01", 36)))
	require.NoError(t, room.AddSlot(mustAttributed(t, Monday, 14, 0, 18, 0, "C201", "MM01", 50)))

	overlapping := mustAttributed(t, Monday, 11, 0, 15, 0, "C201", "LO02", 80)
	err := room.AddSlot(overlapping)

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, room.Slots, 2)
	assert.Equal(t, 50, room.Capacity)
}

func TestRoom_IsAvailableAt(t *testing.T) {
	room := NewRoom("C201")
	require.NoError(t, room.AddSlot(mustAttributed(t, Monday, 10, 0, 12, 0, "C201", "MM01", 36)))

	touching := mustAttributed(t, Monday, 12, 0, 14, 0, "C201", "LO02", 20)
	overlapping := mustAttributed(t, Monday, 11, 30, 13, 0, "C201", "LO02", 20)

	assert.True(t, room.IsAvailableAt(touching))
	assert.False(t, room.IsAvailableAt(overlapping))
}

func TestRoom_AvailableSlots_InvalidWindow(t *testing.T) {
	room := NewRoom("C201")

	_, err := room.AvailableSlots(17, 0, 9, 0)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = room.AvailableSlots(9, 0, 9, 0)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestRoom_AvailableSlots_EmptyRoom(t *testing.T) {
	room := NewRoom("C201")

	free, err := room.AvailableSlots(9, 0, 17, 0)
	require.NoError(t, err)

	require.Len(t, free, NumDays)
	for i, slot := range free {
		assert.Equal(t, Day(i), slot.Day)
		assert.Equal(t, 9, slot.StartHour)
		assert.Equal(t, 0, slot.StartMinute)
		assert.Equal(t, 17, slot.EndHour)
		assert.Equal(t, 0, slot.EndMinute)
		assert.False(t, slot.IsAttributed())
	}
}

func TestRoom_AvailableSlots_SplitsAroundBookings(t *testing.T) {
	room := NewRoom("C201")
	require.NoError(t, room.AddSlot(mustAttributed(t, Monday, 10, 0, 12, 0, "C201", "MM01", 36)))

	free, err := room.AvailableSlots(8, 0, 20, 0)
	require.NoError(t, err)

	// Monday splits in two, the other six days are whole windows.
	require.Len(t, free, NumDays+1)
	assert.Equal(t, Monday, free[0].Day)
	assert.Equal(t, "8:00", ClockTime{free[0].StartHour, free[0].StartMinute}.String())
	assert.Equal(t, "10:00", ClockTime{free[0].EndHour, free[0].EndMinute}.String())
	assert.Equal(t, Monday, free[1].Day)
	assert.Equal(t, "12:00", ClockTime{free[1].StartHour, free[1].StartMinute}.String())
	assert.Equal(t, "20:00", ClockTime{free[1].EndHour, free[1].EndMinute}.String())
	assert.Equal(t, Sunday, free[len(free)-1].Day)
}

func TestRoom_AvailableSlots_SkipsFullyBookedDay(t *testing.T) {
	room := NewRoom("C201")
	require.NoError(t, room.AddSlot(mustAttributed(t, Monday, 8, 0, 20, 0, "C201", "MM01", 36)))

	free, err := room.AvailableSlots(8, 0, 20, 0)
	require.NoError(t, err)

	require.Len(t, free, NumDays-1)
	for _, slot := range free {
		assert.NotEqual(t, Monday, slot.Day)
	}
}

func TestRoom_AvailableSlots_MultiDayGap(t *testing.T) {
	room := NewRoom("C201")
	require.NoError(t, room.AddSlot(mustAttributed(t, Thursday, 9, 0, 11, 0, "C201", "MM01", 36)))

	free, err := room.AvailableSlots(8, 0, 20, 0)
	require.NoError(t, err)

	// Mon..Wed whole, Thu 8-9 and 11-20, Fri..Sun whole.
	require.Len(t, free, 8)
	assert.Equal(t, Monday, free[0].Day)
	assert.Equal(t, Thursday, free[3].Day)
	assert.Equal(t, 9, free[3].EndHour)
	assert.Equal(t, Thursday, free[4].Day)
	assert.Equal(t, 11, free[4].StartHour)
}

func TestRoom_AvailableSlots_NeverEmitsEmptyIntervals(t *testing.T) {
	room := NewRoom("C201")
	require.NoError(t, room.AddSlot(mustAttributed(t, Monday, 8, 0, 12, 0, "C201", "MM01", 36)))
	require.NoError(t, room.AddSlot(mustAttributed(t, Monday, 12, 0, 20, 0, "C201", "LO02", 24)))
	require.NoError(t, room.AddSlot(mustAttributed(t, Friday, 7, 0, 9, 30, "C201", "GL02", 18)))

	free, err := room.AvailableSlots(8, 0, 20, 0)
	require.NoError(t, err)

	for _, slot := range free {
		assert.Less(t, slot.StartTotalMinutes, slot.EndTotalMinutes)
	}
}
