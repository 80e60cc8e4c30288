package state

import (
	"testing"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SessionLifecycle(t *testing.T) {
	sm := NewManager()
	const telegramID int64 = 42

	_, ok := sm.GetSession(telegramID)
	assert.False(t, ok)
	assert.Equal(t, StateNone, sm.GetState(telegramID))

	session, err := service.NewFormSession(service.NewSlotPolicy(), model.MeetingMorning, nil)
	require.NoError(t, err)

	sm.SetSession(telegramID, session)
	got, ok := sm.GetSession(telegramID)
	require.True(t, ok)
	assert.Same(t, session, got)
	assert.Equal(t, StateMarkingAttendance, sm.GetState(telegramID))

	// Сброс состояния не теряет открытую форму
	sm.SetState(telegramID, StateNone)
	_, ok = sm.GetSession(telegramID)
	assert.True(t, ok)

	sm.ClearState(telegramID)
	_, ok = sm.GetSession(telegramID)
	assert.False(t, ok)
}

func TestManager_StateWithoutSession(t *testing.T) {
	sm := NewManager()
	const telegramID int64 = 7

	sm.SetState(telegramID, StateHistoryDate)
	assert.Equal(t, StateHistoryDate, sm.GetState(telegramID))

	sm.SetState(telegramID, StateNone)
	assert.Equal(t, StateNone, sm.GetState(telegramID))
	assert.Empty(t, sm.states)
}

func TestAdapter_ConvertsStates(t *testing.T) {
	sm := NewManager()
	adapter := NewAdapter(sm)

	adapter.SetState(1, "history_date")
	assert.Equal(t, StateHistoryDate, sm.GetState(1))
	assert.Equal(t, "history_date", string(adapter.GetState(1)))
}
