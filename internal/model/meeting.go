package model

import (
	"fmt"
	"time"
)

// MeetingTime одна из двух ежедневных встреч
type MeetingTime string

const (
	MeetingMorning   MeetingTime = "11 AM"
	MeetingAfternoon MeetingTime = "4 PM"
)

// MeetingTimes все встречи дня в порядке отображения
var MeetingTimes = []MeetingTime{MeetingMorning, MeetingAfternoon}

// Code короткий код для callback data и URL ("11am", "4pm")
func (m MeetingTime) Code() string {
	switch m {
	case MeetingMorning:
		return "11am"
	case MeetingAfternoon:
		return "4pm"
	default:
		return ""
	}
}

// ParseMeetingCode обратное преобразование для Code
func ParseMeetingCode(code string) (MeetingTime, bool) {
	for _, m := range MeetingTimes {
		if m.Code() == code {
			return m, true
		}
	}
	return "", false
}

// TimeOfDay время суток с точностью до минуты
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// NewTimeOfDay создаёт время суток из часов и минут
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// ParseTimeOfDay разбирает "HH:MM" или "HHMM"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	layouts := []string{"15:04", "1504"}
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

// Minutes минуты от полуночи
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Add сдвигает время на d (в пределах суток)
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	total := t.Minutes() + int(d/time.Minute)
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// Before сравнивает два времени суток
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}

// On комбинирует время суток с датой day в её часовом поясе
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Of извлекает время суток из момента времени
func Of(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Compact формат "HHMM" для callback data
func (t TimeOfDay) Compact() string {
	return fmt.Sprintf("%02d%02d", t.Hour, t.Minute)
}
