package services

import (
	"context"
	"testing"

	"campustimetable/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetable_Build(t *testing.T) {
	svc := NewTimetableService(sampleDataset())

	tt, err := svc.Build(context.Background())
	require.NoError(t, err)

	require.Contains(t, tt.Rooms, "C201")
	require.Contains(t, tt.Rooms, "B103")
	require.Contains(t, tt.Courses, "MM01")
	require.Contains(t, tt.Courses, "LO02")

	room := tt.Rooms["C201"]
	assert.Equal(t, 50, room.Capacity)
	assert.Len(t, room.Slots, 2)

	course := tt.Courses["MM01"]
	assert.Len(t, course.Slots, 2)
	assert.Equal(t, []string{"C201"}, course.Rooms())
}

func TestTimetable_Build_RejectsConflictingRecords(t *testing.T) {
	ds := domain.Dataset{
		"MM01": {rec("Lundi", 10, 0, 12, 0, "C201", 36)},
		"LO02": {rec("Lundi", 11, 0, 13, 0, "C201", 24)},
	}
	_, err := NewTimetableService(ds).Build(context.Background())
	require.ErrorIs(t, err, domain.ErrSlotConflict)
	assert.Contains(t, err.Error(), "C201")
}

func TestTimetable_Build_RejectsMalformedRecords(t *testing.T) {
	tests := []struct {
		name    string
		record  domain.Record
		wantErr error
	}{
		{"unknown day", rec("Monday", 10, 0, 12, 0, "C201", 36), domain.ErrInvalidDay},
		{"inverted range", rec("Lundi", 12, 0, 10, 0, "C201", 36), domain.ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := domain.Dataset{"MM01": {tt.record}}
			_, err := NewTimetableService(ds).Build(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTimetable_Build_EmptyDataset(t *testing.T) {
	_, err := NewTimetableService(domain.Dataset{}).Build(context.Background())
	require.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestTimetable_RoomWeekAvailability(t *testing.T) {
	svc := NewTimetableService(sampleDataset())
	ctx := context.Background()

	free, err := svc.RoomWeekAvailability(ctx, "C201", "8:00", "20:00")
	require.NoError(t, err)

	// Monday is split around the two bookings, the other six days are whole.
	require.Len(t, free, 9)
	assert.Equal(t, domain.Monday, free[0].Day)
	assert.Equal(t, 8, free[0].StartHour)
	assert.Equal(t, 10, free[0].EndHour)
	assert.Equal(t, domain.Monday, free[1].Day)
	assert.Equal(t, 12, free[1].StartHour)
	assert.Equal(t, 14, free[1].EndHour)
	assert.Equal(t, domain.Monday, free[2].Day)
	assert.Equal(t, 18, free[2].StartHour)
	assert.Equal(t, 20, free[2].EndHour)
	assert.Equal(t, domain.Sunday, free[8].Day)
}

func TestTimetable_RoomWeekAvailability_Errors(t *testing.T) {
	svc := NewTimetableService(sampleDataset())
	ctx := context.Background()

	_, err := svc.RoomWeekAvailability(ctx, "", "8:00", "20:00")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.RoomWeekAvailability(ctx, "Z999", "8:00", "20:00")
	require.ErrorIs(t, err, domain.ErrRoomNotFound)

	_, err = svc.RoomWeekAvailability(ctx, "C201", "20:00", "8:00")
	require.ErrorIs(t, err, domain.ErrInvalidRange)
}
