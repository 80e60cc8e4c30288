package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "11:15", want: NewTimeOfDay(11, 15)},
		{in: "1605", want: NewTimeOfDay(16, 5)},
		{in: "25:00", wantErr: true},
		{in: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	tod := NewTimeOfDay(11, 55)

	assert.Equal(t, NewTimeOfDay(12, 0), tod.Add(5*time.Minute))
	assert.True(t, tod.Before(NewTimeOfDay(12, 0)))
	assert.Equal(t, "11:55", tod.String())
	assert.Equal(t, "1155", tod.Compact())

	day := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 10, 11, 55, 0, 0, time.UTC), tod.On(day))
	assert.Equal(t, tod, Of(tod.On(day)))
}

func TestMeetingCodes(t *testing.T) {
	for _, m := range MeetingTimes {
		parsed, ok := ParseMeetingCode(m.Code())
		require.True(t, ok)
		assert.Equal(t, m, parsed)
	}

	_, ok := ParseMeetingCode("9am")
	assert.False(t, ok)
}

func TestStatusCodes(t *testing.T) {
	for _, s := range AttendanceStatuses {
		assert.True(t, s.IsValid())
		parsed, ok := ParseStatusCode(s.Code())
		require.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	assert.False(t, AttendanceStatus("Late").IsValid())
	_, ok := ParseStatusCode("x")
	assert.False(t, ok)
}
