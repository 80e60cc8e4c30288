package history

import (
	"strconv"
	"testing"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func callbackData(kb *models.InlineKeyboardMarkup) []string {
	var out []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			out = append(out, btn.CallbackData)
		}
	}
	return out
}

func TestBuildCalendarScreen(t *testing.T) {
	tests := []struct {
		name      string
		offset    int
		wantFirst string
		wantLast  string
		wantLater bool
	}{
		{"first page", 0, "history_day:2024-01-10", "history_day:2024-01-04", false},
		{"second page", 7, "history_day:2024-01-03", "history_day:2023-12-28", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, kb := BuildCalendarScreen(testDate, tt.offset)

			require.GreaterOrEqual(t, len(kb.InlineKeyboard), 7)
			assert.Equal(t, tt.wantFirst, kb.InlineKeyboard[0][0].CallbackData)
			assert.Equal(t, tt.wantLast, kb.InlineKeyboard[6][0].CallbackData)

			data := callbackData(kb)
			assert.Contains(t, data, "history_calendar:"+strconv.Itoa(tt.offset+7))
			assert.Equal(t, tt.wantLater, contains(data, "history_calendar:0"))
			assert.Contains(t, data, "back_to_main")
		})
	}
}

func TestBuildDayText(t *testing.T) {
	day := &service.DayAttendance{
		Date: testDate,
		Slots: []service.SlotAttendance{
			{Meeting: model.MeetingMorning, Records: []model.AttendanceRecord{{
				FullName: "Jane & Doe",
				Status:   model.AttendanceStatusPresent,
				DateTime: testDate.Add(11*time.Hour + 5*time.Minute),
			}}},
			{Meeting: model.MeetingAfternoon},
		},
	}

	text := BuildDayText(day)
	assert.Contains(t, text, "Wed, 2024-01-10")
	assert.Contains(t, text, "11 AM meeting</b> (1)")
	assert.Contains(t, text, "Jane &amp; Doe · 11:05 · Present")
	assert.Contains(t, text, "4 PM meeting</b> (0)")
	assert.Contains(t, text, "No records")
}

func TestBuildDayKeyboard(t *testing.T) {
	rec := model.AttendanceRecord{FullName: "Jane Doe", Status: model.AttendanceStatusPresent}

	tests := []struct {
		name    string
		morning []model.AttendanceRecord
		evening []model.AttendanceRecord
		want    []string
		notWant []string
	}{
		{
			name:    "empty day",
			notWant: []string{"history_csv:2024-01-10:11am", "history_csv:2024-01-10:4pm"},
		},
		{
			name:    "only afternoon",
			evening: []model.AttendanceRecord{rec},
			want:    []string{"history_csv:2024-01-10:4pm"},
			notWant: []string{"history_csv:2024-01-10:11am"},
		},
		{
			name:    "both",
			morning: []model.AttendanceRecord{rec},
			evening: []model.AttendanceRecord{rec},
			want:    []string{"history_csv:2024-01-10:11am", "history_csv:2024-01-10:4pm"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := &service.DayAttendance{Date: testDate, Slots: []service.SlotAttendance{
				{Meeting: model.MeetingMorning, Records: tt.morning},
				{Meeting: model.MeetingAfternoon, Records: tt.evening},
			}}

			data := callbackData(BuildDayKeyboard(day))
			for _, w := range tt.want {
				assert.Contains(t, data, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, data, nw)
			}
			assert.Equal(t, len(tt.want) > 0, hasRecords(day))
		})
	}
}

func TestFileNamesAndCaptions(t *testing.T) {
	assert.Equal(t, "attendance_2024-01-10.png", imageFileName(testDate))
	assert.Equal(t, "11 AM meeting, 2024-01-10: 3 record(s)", recordsCaption(testDate, model.MeetingMorning, 3))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
