package formatting

import "github.com/Freeeeeet/attendance_bot/internal/model"

// StatusDisplay представляет отображение статуса посещаемости
type StatusDisplay struct {
	Emoji string
	Text  string
}

// Label emoji и текст одной строкой
func (d StatusDisplay) Label() string {
	return d.Emoji + " " + d.Text
}

// GetStatusDisplay возвращает emoji и текст для статуса посещаемости
func GetStatusDisplay(status model.AttendanceStatus) StatusDisplay {
	displays := map[model.AttendanceStatus]StatusDisplay{
		model.AttendanceStatusPresent: {"✅", string(model.AttendanceStatusPresent)},
		model.AttendanceStatusAbsent:  {"❌", string(model.AttendanceStatusAbsent)},
		model.AttendanceStatusOffDuty: {"💤", string(model.AttendanceStatusOffDuty)},
		model.AttendanceStatusOnCall:  {"📞", string(model.AttendanceStatusOnCall)},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"❓", string(status)}
}

// MeetingEmoji значок встречи
func MeetingEmoji(meeting model.MeetingTime) string {
	switch meeting {
	case model.MeetingMorning:
		return "🌅"
	case model.MeetingAfternoon:
		return "🌇"
	default:
		return "🕒"
	}
}
