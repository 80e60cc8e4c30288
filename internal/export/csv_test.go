package export

import (
	"testing"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_Empty(t *testing.T) {
	out, err := CSVBytes(nil)
	require.NoError(t, err)

	assert.Equal(t, "Name,Email,Phone,Status,Date and Time,Meeting Time\n", string(out))
}

func TestWriteCSV_Rows(t *testing.T) {
	records := []model.AttendanceRecord{
		{
			FullName:    "Jane Doe",
			Phone:       "555",
			Email:       "j@x.com",
			Status:      model.AttendanceStatusOnCall,
			DateTime:    time.Date(2024, 1, 10, 11, 15, 0, 0, time.UTC),
			MeetingTime: model.MeetingMorning,
		},
		{
			FullName:    "Doe, John",
			Status:      model.AttendanceStatusAbsent,
			DateTime:    time.Date(2024, 1, 10, 16, 5, 0, 0, time.UTC),
			MeetingTime: model.MeetingAfternoon,
		},
	}

	out, err := CSVBytes(records)
	require.NoError(t, err)

	want := "Name,Email,Phone,Status,Date and Time,Meeting Time\n" +
		"Jane Doe,j@x.com,555,On Call / Application,2024-01-10 11:15:00,11 AM\n" +
		"\"Doe, John\",,,Absent,2024-01-10 16:05:00,4 PM\n"
	assert.Equal(t, want, string(out))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "attendance.csv", FileName(""))
	assert.Equal(t, "attendance_11am.csv", FileName(model.MeetingMorning))
	assert.Equal(t, "attendance_4pm.csv", FileName(model.MeetingAfternoon))
}
