package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRoster struct {
	employees []model.Employee
	err       error
}

func (f *fakeRoster) ListEmployees(context.Context) ([]model.Employee, error) {
	return f.employees, f.err
}

type fakeHistory struct {
	records map[model.MeetingTime][]model.AttendanceRecord
	err     error
	dates   []time.Time
}

func (f *fakeHistory) ForDate(ctx context.Context, date time.Time) (*service.DayAttendance, error) {
	f.dates = append(f.dates, date)
	if f.err != nil {
		return nil, f.err
	}
	day := &service.DayAttendance{Date: date}
	for _, m := range model.MeetingTimes {
		day.Slots = append(day.Slots, service.SlotAttendance{Meeting: m, Records: f.records[m]})
	}
	return day, nil
}

func (f *fakeHistory) ForSlot(ctx context.Context, date time.Time, meeting model.MeetingTime) ([]model.AttendanceRecord, error) {
	f.dates = append(f.dates, date)
	if f.err != nil {
		return nil, f.err
	}
	return f.records[meeting], nil
}

var testDay = time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

func newTestServer(roster *fakeRoster, history *fakeHistory) *Server {
	s := NewServer(roster, history, service.NewSlotPolicy(), time.UTC, zap.NewNop())
	s.now = func() time.Time { return testDay.Add(12*time.Hour + time.Minute) }
	return s
}

func do(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(&fakeRoster{}, &fakeHistory{}), "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListRoster(t *testing.T) {
	tests := []struct {
		name       string
		roster     *fakeRoster
		wantStatus int
		wantBody   string
	}{
		{
			name:       "employees",
			roster:     &fakeRoster{employees: []model.Employee{{ID: 1, FullName: "Jane Doe", Email: "jane@x.com", Phone: "555"}}},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":1,"fullname":"Jane Doe","phone":"555","email":"jane@x.com"}]`,
		},
		{
			name:       "empty roster is an empty array",
			roster:     &fakeRoster{},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "store error",
			roster:     &fakeRoster{err: errors.New("connection refused")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(tt.roster, &fakeHistory{}), "/api/roster")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestGetSlot(t *testing.T) {
	s := newTestServer(&fakeRoster{}, &fakeHistory{})

	t.Run("morning past cutoff", func(t *testing.T) {
		rec := do(t, s, "/api/slots/11am")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp slotResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, model.MeetingMorning, resp.MeetingTime)
		assert.Equal(t, "11:00", resp.Start)
		assert.Equal(t, "12:00", resp.Cutoff)
		assert.Len(t, resp.Options, 13)
		assert.True(t, resp.PastCutoff)
	})

	t.Run("afternoon before cutoff", func(t *testing.T) {
		rec := do(t, s, "/api/slots/4pm")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp slotResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "16:00", resp.Options[0])
		assert.Equal(t, "17:00", resp.Options[12])
		assert.False(t, resp.PastCutoff)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		rec := do(t, s, "/api/slots/9am")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAttendance(t *testing.T) {
	history := &fakeHistory{records: map[model.MeetingTime][]model.AttendanceRecord{
		model.MeetingMorning: {{ID: 7, FullName: "Jane Doe", Status: model.AttendanceStatusPresent, MeetingTime: model.MeetingMorning}},
	}}
	s := newTestServer(&fakeRoster{}, history)

	rec := do(t, s, "/api/attendance?date=2024-01-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var day service.DayAttendance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &day))
	require.Len(t, day.Slots, 2)
	assert.Len(t, day.Slots[0].Records, 1)
	assert.Equal(t, "Jane Doe", day.Slots[0].Records[0].FullName)
	assert.NotNil(t, day.Slots[1].Records)
	assert.Contains(t, rec.Body.String(), `"records":[]`)

	require.Len(t, history.dates, 1)
	assert.True(t, testDay.Equal(history.dates[0]))
}

func TestGetAttendance_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		history    *fakeHistory
		wantStatus int
	}{
		{"missing date", "/api/attendance", &fakeHistory{}, http.StatusBadRequest},
		{"bad date", "/api/attendance?date=10.01.2024", &fakeHistory{}, http.StatusBadRequest},
		{"store error", "/api/attendance?date=2024-01-10", &fakeHistory{err: errors.New("boom")}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newTestServer(&fakeRoster{}, tt.history), tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestExportAttendance(t *testing.T) {
	history := &fakeHistory{records: map[model.MeetingTime][]model.AttendanceRecord{
		model.MeetingAfternoon: {{
			FullName:    "Jane Doe",
			Email:       "jane@x.com",
			Phone:       "555",
			Status:      model.AttendanceStatusPresent,
			DateTime:    testDay.Add(16*time.Hour + 5*time.Minute),
			MeetingTime: model.MeetingAfternoon,
		}},
	}}
	s := newTestServer(&fakeRoster{}, history)

	t.Run("with records", func(t *testing.T) {
		rec := do(t, s, "/api/attendance/export?date=2024-01-10&meeting=4pm")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance_4pm.csv")
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Name,Email,Phone,Status,Date and Time,Meeting Time", strings.TrimSpace(lines[0]))
		assert.Equal(t, "Jane Doe,jane@x.com,555,Present,2024-01-10 16:05:00,4 PM", strings.TrimSpace(lines[1]))
	})

	t.Run("empty slot is header only", func(t *testing.T) {
		rec := do(t, s, "/api/attendance/export?date=2024-01-10&meeting=11am")
		require.Equal(t, http.StatusOK, rec.Code)
		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		assert.Len(t, lines, 1)
	})

	t.Run("unknown meeting", func(t *testing.T) {
		rec := do(t, s, "/api/attendance/export?date=2024-01-10&meeting=noon")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
