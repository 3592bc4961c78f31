package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourse_AddSlot(t *testing.T) {
	course := NewCourse("MM01")
	require.NoError(t, course.AddSlot(mustAttributed(t, Monday, 10, 0, 12, 0, "C201", "MM01", 36)))
	require.NoError(t, course.AddSlot(mustAttributed(t, Monday, 14, 0, 18, 0, "B103", "MM01", 50)))

	err := course.AddSlot(mustAttributed(t, Monday, 17, 0, 19, 0, "A001", "MM01", 20))

	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, course.Slots, 2)
}

func TestCourse_Rooms_Deduplicates(t *testing.T) {
	course := NewCourse("MM01")
	require.NoError(t, course.AddSlot(mustAttributed(t, Monday, 10, 0, 12, 0, "C201", "MM01", 36)))
	require.NoError(t, course.AddSlot(mustAttributed(t, Tuesday, 10, 0, 12, 0, "B103", "MM01", 36)))
	require.NoError(t, course.AddSlot(mustAttributed(t, Wednesday, 10, 0, 12, 0, "C201", "MM01", 36)))

	assert.Equal(t, []string{"C201", "B103"}, course.Rooms())
}

func TestCourse_Rooms_Empty(t *testing.T) {
	assert.Empty(t, NewCourse("MM01").Rooms())
}
