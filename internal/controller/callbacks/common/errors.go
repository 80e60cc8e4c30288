package common

import (
	"errors"

	"github.com/Freeeeeet/attendance_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage        = errors.New("no message in callback")
	ErrInvalidFormat    = errors.New("invalid callback format")
	ErrSessionExpired   = errors.New("attendance form is not open")
	ErrEmployeeNotFound = errors.New("employee not found in form")
	ErrInvalidDate      = errors.New("invalid date")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoMessage):
		return "❌ Could not process the message"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Invalid data format"
	case errors.Is(err, ErrSessionExpired):
		return "⌛ The attendance form is closed. Start again with /mark"
	case errors.Is(err, ErrEmployeeNotFound):
		return "❌ Employee not found. Reopen the form with /mark"
	case errors.Is(err, ErrInvalidDate):
		return "❌ Invalid date. Use the format YYYY-MM-DD, e.g. 2024-01-10"
	case errors.Is(err, service.ErrNothingToSubmit):
		return "⚠️ No attendance selected. Please select an employee's status."
	case errors.Is(err, service.ErrUnknownMeetingTime):
		return "❌ Unknown meeting time"
	case errors.Is(err, service.ErrInvalidStatus):
		return "❌ Unknown status"
	case errors.Is(err, service.ErrTimeNotAllowed):
		return "❌ This time is outside of the meeting window"
	default:
		return "❌ Something went wrong. Please try again later."
	}
}
