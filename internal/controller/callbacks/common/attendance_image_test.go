package common

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDayImage(t *testing.T) {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	records := make([]model.AttendanceRecord, 0, 8)
	for i := 0; i < 8; i++ {
		records = append(records, model.AttendanceRecord{
			FullName:    "Employee with a rather long full name number",
			Status:      model.AttendanceStatuses[i%len(model.AttendanceStatuses)],
			DateTime:    date.Add(11*time.Hour + time.Duration(i*5)*time.Minute),
			MeetingTime: model.MeetingMorning,
		})
	}

	tests := []struct {
		name       string
		day        *service.DayAttendance
		wantHeight int
	}{
		{
			name: "empty day",
			day: &service.DayAttendance{Date: date, Slots: []service.SlotAttendance{
				{Meeting: model.MeetingMorning},
				{Meeting: model.MeetingAfternoon},
			}},
			wantHeight: headerHeight + columnHeader + minRows*rowHeight + legendHeight,
		},
		{
			name: "grows with records",
			day: &service.DayAttendance{Date: date, Slots: []service.SlotAttendance{
				{Meeting: model.MeetingMorning, Records: records},
				{Meeting: model.MeetingAfternoon},
			}},
			wantHeight: headerHeight + columnHeader + 8*rowHeight + legendHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := GenerateDayImage(tt.day)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, imageWidth, img.Bounds().Dx())
			assert.Equal(t, tt.wantHeight, img.Bounds().Dy())
		})
	}
}

func TestGenerateDayImage_Nil(t *testing.T) {
	_, err := GenerateDayImage(nil)
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghijk", 7))
}
