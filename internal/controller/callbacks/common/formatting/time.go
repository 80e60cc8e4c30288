package formatting

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
)

// FormatDate форматирует дату в ISO виде
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateWithWeekday форматирует дату с днём недели
func FormatDateWithWeekday(t time.Time) string {
	return t.Format("Mon, 2006-01-02")
}

// FormatShortDay короткая подпись дня для кнопок календаря
func FormatShortDay(t time.Time) string {
	return t.Format("Mon 02 Jan")
}

// FormatDateTime форматирует отметку посещаемости так же, как в CSV
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// FormatClock время в 24-часовом формате
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatCutoff время отсечки в 12-часовом формате: 12:00 -> "12:00 PM", 17:00 -> "5:00 PM"
func FormatCutoff(tod model.TimeOfDay) string {
	hour := tod.Hour % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if tod.Hour >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, tod.Minute, suffix)
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d h", hours)
	}
	return fmt.Sprintf("%d h %d min", hours, mins)
}

// DayLabel "Today", "Yesterday" или дата с днём недели
func DayLabel(day, today time.Time) string {
	switch {
	case sameDay(day, today):
		return "Today"
	case sameDay(day, today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return FormatShortDay(day)
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
