package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/linguamatch/marketplace/models"
)

func NewID() string {
	return uuid.New().String()
}

// GenerateDaySlots builds one unbooked slot per hour boundary inside the
// working-hours window. Start and end are "HH:MM"; minutes are ignored,
// matching the hourly grid the dashboard offers. An inverted window
// yields no slots.
func GenerateDaySlots(teacherID, date, start, end string) []models.TimeSlot {
	startHour := parseHour(start)
	endHour := parseHour(end)

	var slots []models.TimeSlot
	for hour := startHour; hour < endHour; hour++ {
		slots = append(slots, models.TimeSlot{
			ID:        fmt.Sprintf("slot-%d", hour),
			TeacherID: teacherID,
			Date:      date,
			StartTime: fmt.Sprintf("%02d:00", hour),
			EndTime:   fmt.Sprintf("%02d:00", hour+1),
		})
	}
	return slots
}

func parseHour(hhmm string) int {
	hour, _ := strconv.Atoi(strings.SplitN(hhmm, ":", 2)[0])
	return hour
}
