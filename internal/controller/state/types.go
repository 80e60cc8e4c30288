package state

import "github.com/Freeeeeet/attendance_bot/internal/service"

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Пользователь заполняет форму отметок
	StateMarkingAttendance UserState = "marking_attendance"

	// Ждём дату для истории текстом (YYYY-MM-DD)
	StateHistoryDate UserState = "history_date"
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State   UserState
	Session *service.FormSession // Несохранённые отметки, nil если форма не открыта
}
