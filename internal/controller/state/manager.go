package state

import (
	"sync"

	"github.com/Freeeeeet/attendance_bot/internal/service"
)

// Manager управляет состояниями пользователей
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// userData возвращает запись пользователя, создавая её при необходимости. Вызывать под mu.Lock
func (sm *Manager) userData(telegramID int64) *UserData {
	userData, exists := sm.states[telegramID]
	if !exists {
		userData = &UserData{State: StateNone}
		sm.states[telegramID] = userData
	}
	return userData
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя.
// StateNone без открытой формы удаляет запись целиком.
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		if userData, exists := sm.states[telegramID]; exists && userData.Session == nil {
			delete(sm.states, telegramID)
			return
		}
	}

	sm.userData(telegramID).State = state
}

// GetSession получает открытую форму отметок
func (sm *Manager) GetSession(telegramID int64) (*service.FormSession, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists && userData.Session != nil {
		return userData.Session, true
	}
	return nil, false
}

// SetSession сохраняет форму отметок и переводит пользователя в StateMarkingAttendance
func (sm *Manager) SetSession(telegramID int64, session *service.FormSession) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData := sm.userData(telegramID)
	userData.Session = session
	userData.State = StateMarkingAttendance
}

// ClearState очищает состояние и форму пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}
