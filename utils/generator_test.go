package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	first := NewID()
	second := NewID()

	assert.NotEqual(t, first, second)
	_, err := uuid.Parse(first)
	assert.NoError(t, err)
}

func TestGenerateDaySlots(t *testing.T) {
	slots := GenerateDaySlots("1", "2024-03-20", "09:00", "17:00")
	require.Len(t, slots, 8)

	assert.Equal(t, "slot-9", slots[0].ID)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.Equal(t, "slot-16", slots[7].ID)
	assert.Equal(t, "16:00", slots[7].StartTime)
	assert.Equal(t, "17:00", slots[7].EndTime)

	for _, slot := range slots {
		assert.Equal(t, "1", slot.TeacherID)
		assert.Equal(t, "2024-03-20", slot.Date)
		assert.False(t, slot.IsBooked)
	}
}

func TestGenerateDaySlotsIgnoresMinutes(t *testing.T) {
	slots := GenerateDaySlots("1", "2024-03-20", "09:30", "11:45")
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "10:00", slots[1].StartTime)
}

func TestGenerateDaySlotsInvertedWindow(t *testing.T) {
	assert.Empty(t, GenerateDaySlots("1", "2024-03-20", "17:00", "09:00"))
}
