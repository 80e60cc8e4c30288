package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
)

// PendingEntry выбор для одного сотрудника до отправки
type PendingEntry struct {
	Employee model.Employee
	Status   model.AttendanceStatus
	Time     model.TimeOfDay
}

// FormSession несохранённые отметки по одной встрече.
// Ключ - fullname сотрудника, поэтому однофамильцы с одинаковым fullname схлопываются в одну строку.
type FormSession struct {
	mu      sync.Mutex
	policy  *SlotPolicy
	meeting model.MeetingTime
	roster  []model.Employee
	pending map[string]PendingEntry
}

// NewFormSession создаёт сессию, где каждому сотруднику выбран первый статус и первое время окна
func NewFormSession(policy *SlotPolicy, meeting model.MeetingTime, roster []model.Employee) (*FormSession, error) {
	options, err := policy.Options(meeting)
	if err != nil {
		return nil, err
	}

	s := &FormSession{
		policy:  policy,
		meeting: meeting,
		pending: make(map[string]PendingEntry, len(roster)),
	}

	for _, emp := range roster {
		if _, exists := s.pending[emp.FullName]; exists {
			continue
		}
		s.roster = append(s.roster, emp)
		s.pending[emp.FullName] = PendingEntry{
			Employee: emp,
			Status:   model.AttendanceStatuses[0],
			Time:     options[0],
		}
	}

	return s, nil
}

// Meeting текущая встреча сессии
func (s *FormSession) Meeting() model.MeetingTime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meeting
}

// Roster сотрудники сессии в порядке отображения, включая пропущенных
func (s *FormSession) Roster() []model.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Employee(nil), s.roster...)
}

// Employee сотрудник по индексу в Roster
func (s *FormSession) Employee(idx int) (model.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.roster) {
		return model.Employee{}, false
	}
	return s.roster[idx], true
}

// Entry текущий выбор для сотрудника; false если сотрудник пропущен
func (s *FormSession) Entry(fullname string) (PendingEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pending[fullname]
	return entry, ok
}

// EntryOrDefault текущий выбор или выбор по умолчанию для пропущенного сотрудника
func (s *FormSession) EntryOrDefault(emp model.Employee) PendingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.pending[emp.FullName]; ok {
		return entry
	}
	w, _ := s.policy.WindowFor(s.meeting)
	return PendingEntry{Employee: emp, Status: model.AttendanceStatuses[0], Time: w.Start}
}

// AddOrReplace заменяет выбор для сотрудника (по fullname).
// Сотрудник не из списка добавляется в конец.
func (s *FormSession) AddOrReplace(emp model.Employee, status model.AttendanceStatus, tod model.TimeOfDay) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if !s.policy.Allows(s.meeting, tod) {
		return fmt.Errorf("%w: %s for %s", ErrTimeNotAllowed, tod, s.meeting)
	}

	if !s.inRoster(emp.FullName) {
		s.roster = append(s.roster, emp)
	}
	s.pending[emp.FullName] = PendingEntry{Employee: emp, Status: status, Time: tod}
	return nil
}

// Remove исключает сотрудника из отправки; в Roster он остаётся
func (s *FormSession) Remove(fullname string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, fullname)
}

// Len количество отметок к отправке
func (s *FormSession) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// SwitchMeeting меняет встречу. Статусы сохраняются, время вне нового окна
// сбрасывается на первое значение окна.
func (s *FormSession) SwitchMeeting(meeting model.MeetingTime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.policy.WindowFor(meeting)
	if err != nil {
		return err
	}

	s.meeting = meeting
	for name, entry := range s.pending {
		if !s.policy.Allows(meeting, entry.Time) {
			entry.Time = w.Start
			s.pending[name] = entry
		}
	}
	return nil
}

// Records строит записи к отправке: дата берётся из day, время - из выбора
func (s *FormSession) Records(day time.Time) []model.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]model.AttendanceRecord, 0, len(s.pending))
	for _, emp := range s.roster {
		entry, ok := s.pending[emp.FullName]
		if !ok {
			continue
		}
		records = append(records, model.AttendanceRecord{
			FullName:    entry.Employee.FullName,
			Phone:       entry.Employee.Phone,
			Email:       entry.Employee.Email,
			Status:      entry.Status,
			DateTime:    entry.Time.On(day),
			MeetingTime: s.meeting,
		})
	}
	return records
}

func (s *FormSession) inRoster(fullname string) bool {
	for _, emp := range s.roster {
		if emp.FullName == fullname {
			return true
		}
	}
	return false
}
