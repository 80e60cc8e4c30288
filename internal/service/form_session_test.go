package service

import (
	"testing"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []model.Employee {
	return []model.Employee{
		{ID: 373, FullName: "Jane Doe", Phone: "555", Email: "j@x.com"},
		{ID: 379, FullName: "John Smith", Phone: "556", Email: "s@x.com"},
	}
}

func TestNewFormSession_Defaults(t *testing.T) {
	session, err := NewFormSession(NewSlotPolicy(), model.MeetingMorning, testRoster())
	require.NoError(t, err)

	assert.Equal(t, 2, session.Len())
	entry, ok := session.Entry("Jane Doe")
	require.True(t, ok)
	assert.Equal(t, model.AttendanceStatusPresent, entry.Status)
	assert.Equal(t, model.NewTimeOfDay(11, 0), entry.Time)
}

func TestNewFormSession_DuplicateFullNames(t *testing.T) {
	roster := append(testRoster(), model.Employee{ID: 1, FullName: "Jane Doe", Phone: "000"})

	session, err := NewFormSession(NewSlotPolicy(), model.MeetingMorning, roster)
	require.NoError(t, err)

	assert.Equal(t, 2, session.Len())
	assert.Len(t, session.Roster(), 2)
}

func TestNewFormSession_UnknownMeeting(t *testing.T) {
	_, err := NewFormSession(NewSlotPolicy(), "noon", testRoster())
	assert.ErrorIs(t, err, ErrUnknownMeetingTime)
}

func TestFormSession_AddOrReplace(t *testing.T) {
	session, err := NewFormSession(NewSlotPolicy(), model.MeetingMorning, testRoster())
	require.NoError(t, err)
	jane := testRoster()[0]

	require.NoError(t, session.AddOrReplace(jane, model.AttendanceStatusOffDuty, model.NewTimeOfDay(11, 15)))
	entry, _ := session.Entry(jane.FullName)
	assert.Equal(t, model.AttendanceStatusOffDuty, entry.Status)
	assert.Equal(t, model.NewTimeOfDay(11, 15), entry.Time)
	assert.Equal(t, 2, session.Len())

	err = session.AddOrReplace(jane, "Late", model.NewTimeOfDay(11, 15))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = session.AddOrReplace(jane, model.AttendanceStatusAbsent, model.NewTimeOfDay(16, 0))
	assert.ErrorIs(t, err, ErrTimeNotAllowed)

	newcomer := model.Employee{FullName: "New Person"}
	require.NoError(t, session.AddOrReplace(newcomer, model.AttendanceStatusAbsent, model.NewTimeOfDay(12, 0)))
	assert.Equal(t, 3, session.Len())
	emp, ok := session.Employee(2)
	require.True(t, ok)
	assert.Equal(t, "New Person", emp.FullName)
}

func TestFormSession_RemoveAndReinclude(t *testing.T) {
	session, err := NewFormSession(NewSlotPolicy(), model.MeetingMorning, testRoster())
	require.NoError(t, err)
	john := testRoster()[1]

	session.Remove(john.FullName)
	assert.Equal(t, 1, session.Len())
	assert.Len(t, session.Roster(), 2)

	_, ok := session.Entry(john.FullName)
	assert.False(t, ok)

	def := session.EntryOrDefault(john)
	assert.Equal(t, model.AttendanceStatusPresent, def.Status)
	assert.Equal(t, model.NewTimeOfDay(11, 0), def.Time)

	require.NoError(t, session.AddOrReplace(john, def.Status, def.Time))
	assert.Equal(t, 2, session.Len())
}

func TestFormSession_SwitchMeeting(t *testing.T) {
	session, err := NewFormSession(NewSlotPolicy(), model.MeetingMorning, testRoster())
	require.NoError(t, err)
	jane := testRoster()[0]
	require.NoError(t, session.AddOrReplace(jane, model.AttendanceStatusAbsent, model.NewTimeOfDay(11, 30)))

	require.NoError(t, session.SwitchMeeting(model.MeetingAfternoon))

	entry, _ := session.Entry(jane.FullName)
	assert.Equal(t, model.MeetingAfternoon, session.Meeting())
	assert.Equal(t, model.AttendanceStatusAbsent, entry.Status)
	assert.Equal(t, model.NewTimeOfDay(16, 0), entry.Time)

	assert.ErrorIs(t, session.SwitchMeeting("midnight"), ErrUnknownMeetingTime)
}

func TestFormSession_Records(t *testing.T) {
	session, err := NewFormSession(NewSlotPolicy(), model.MeetingMorning, testRoster())
	require.NoError(t, err)
	jane := testRoster()[0]
	require.NoError(t, session.AddOrReplace(jane, model.AttendanceStatusPresent, model.NewTimeOfDay(11, 15)))

	day := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	records := session.Records(day)
	require.Len(t, records, 2)

	assert.Equal(t, model.AttendanceRecord{
		FullName:    "Jane Doe",
		Phone:       "555",
		Email:       "j@x.com",
		Status:      model.AttendanceStatusPresent,
		DateTime:    time.Date(2024, 1, 10, 11, 15, 0, 0, time.UTC),
		MeetingTime: model.MeetingMorning,
	}, records[0])
	assert.Equal(t, "John Smith", records[1].FullName)
}
