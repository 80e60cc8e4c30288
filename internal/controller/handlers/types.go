package handlers

import (
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/attendance_bot/internal/controller/state"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	attendanceService *service.AttendanceService
	stateManager      *state.Manager
	logger            *zap.Logger

	// зависимости для общих экранов callbacks (история по введённой дате)
	deps *callbacktypes.Handler
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	attendanceService *service.AttendanceService,
	historyService *service.HistoryService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handlers {
	h := &Handlers{
		attendanceService: attendanceService,
		stateManager:      stateManager,
		logger:            logger,
	}
	h.deps = &callbacktypes.Handler{
		AttendanceService: attendanceService,
		HistoryService:    historyService,
		StateManager:      state.NewAdapter(stateManager),
		Logger:            logger,
	}
	return h
}
