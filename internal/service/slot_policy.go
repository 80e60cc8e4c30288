package service

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
)

// SlotStep шаг выбора времени внутри окна встречи
const SlotStep = 5 * time.Minute

// Window окно встречи: время можно выбрать от Start до End включительно,
// после Cutoff показывается предупреждение
type Window struct {
	Start  model.TimeOfDay `json:"start"`
	End    model.TimeOfDay `json:"end"`
	Cutoff model.TimeOfDay `json:"cutoff"`
}

// SlotPolicy правила выбора времени для каждой встречи
type SlotPolicy struct {
	windows map[model.MeetingTime]Window
	step    time.Duration
}

// NewSlotPolicy создаёт политику с окнами по часу от начала встречи
func NewSlotPolicy() *SlotPolicy {
	return &SlotPolicy{
		windows: map[model.MeetingTime]Window{
			model.MeetingMorning:   hourWindow(model.NewTimeOfDay(11, 0)),
			model.MeetingAfternoon: hourWindow(model.NewTimeOfDay(16, 0)),
		},
		step: SlotStep,
	}
}

func hourWindow(start model.TimeOfDay) Window {
	end := start.Add(time.Hour)
	return Window{Start: start, End: end, Cutoff: end}
}

// WindowFor возвращает окно встречи
func (p *SlotPolicy) WindowFor(meeting model.MeetingTime) (Window, error) {
	w, ok := p.windows[meeting]
	if !ok {
		return Window{}, fmt.Errorf("%w: %q", ErrUnknownMeetingTime, meeting)
	}
	return w, nil
}

// Options возвращает все допустимые значения времени для встречи (концы окна включены)
func (p *SlotPolicy) Options(meeting model.MeetingTime) ([]model.TimeOfDay, error) {
	w, err := p.WindowFor(meeting)
	if err != nil {
		return nil, err
	}

	var options []model.TimeOfDay
	for t := w.Start; !w.End.Before(t); t = t.Add(p.step) {
		options = append(options, t)
	}
	return options, nil
}

// Allows проверяет что время входит в варианты встречи
func (p *SlotPolicy) Allows(meeting model.MeetingTime, tod model.TimeOfDay) bool {
	options, err := p.Options(meeting)
	if err != nil {
		return false
	}
	for _, o := range options {
		if o == tod {
			return true
		}
	}
	return false
}

// IsPastCutoff true если now строго позже отсечки встречи в тот же день.
// Только предупреждение: выбор и отправку это не блокирует.
func (p *SlotPolicy) IsPastCutoff(meeting model.MeetingTime, now time.Time) bool {
	w, err := p.WindowFor(meeting)
	if err != nil {
		return false
	}
	return now.After(w.Cutoff.On(now))
}
