package callbacktypes

import (
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone        UserState = ""
	StateHistoryDate UserState = "history_date"
)

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	GetSession(telegramID int64) (*service.FormSession, bool)
	SetSession(telegramID int64, session *service.FormSession)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	AttendanceService *service.AttendanceService
	HistoryService    *service.HistoryService
	StateManager      StateManager
	Logger            *zap.Logger
}
