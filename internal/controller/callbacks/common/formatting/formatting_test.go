package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatCutoff(t *testing.T) {
	tests := []struct {
		name string
		tod  model.TimeOfDay
		want string
	}{
		{"noon", model.NewTimeOfDay(12, 0), "12:00 PM"},
		{"afternoon", model.NewTimeOfDay(17, 0), "5:00 PM"},
		{"morning", model.NewTimeOfDay(9, 5), "9:05 AM"},
		{"midnight", model.NewTimeOfDay(0, 30), "12:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCutoff(tt.tod))
		})
	}
}

func TestDayLabel(t *testing.T) {
	today := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", DayLabel(today, today))
	assert.Equal(t, "Yesterday", DayLabel(today.AddDate(0, 0, -1), today))
	assert.Equal(t, "Mon 08 Jan", DayLabel(today.AddDate(0, 0, -2), today))
}

func TestGetStatusDisplay(t *testing.T) {
	for _, status := range model.AttendanceStatuses {
		d := GetStatusDisplay(status)
		assert.NotEqual(t, "❓", d.Emoji, status)
		assert.Equal(t, string(status), d.Text)
	}

	assert.Equal(t, "❓", GetStatusDisplay("Late").Emoji)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatDuration(45))
	assert.Equal(t, "1 h", FormatDuration(60))
	assert.Equal(t, "1 h 5 min", FormatDuration(65))
}
