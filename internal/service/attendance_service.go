package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttendanceStore хранилище отметок (repository.AttendanceRepository)
type AttendanceStore interface {
	Insert(ctx context.Context, record *model.AttendanceRecord) error
	ListByDateAndSlot(ctx context.Context, date time.Time, meeting model.MeetingTime) ([]model.AttendanceRecord, error)
}

// AttendanceService сессии отметок и их отправка в хранилище
type AttendanceService struct {
	store  AttendanceStore
	roster *RosterService
	policy *SlotPolicy
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewAttendanceService(
	store AttendanceStore,
	roster *RosterService,
	policy *SlotPolicy,
	loc *time.Location,
	logger *zap.Logger,
) *AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceService{
		store:  store,
		roster: roster,
		policy: policy,
		loc:    loc,
		now:    time.Now,
		logger: logger,
	}
}

// Policy политика окон встреч
func (s *AttendanceService) Policy() *SlotPolicy {
	return s.policy
}

// Location часовой пояс, в котором считается "сегодня"
func (s *AttendanceService) Location() *time.Location {
	return s.loc
}

// Now текущее время в часовом поясе сервиса
func (s *AttendanceService) Now() time.Time {
	return s.now().In(s.loc)
}

// StartSession загружает список сотрудников и создаёт новую сессию для встречи
func (s *AttendanceService) StartSession(ctx context.Context, meeting model.MeetingTime) (*FormSession, error) {
	employees, err := s.roster.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	session, err := NewFormSession(s.policy, meeting, employees)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Attendance session started",
		zap.String("meeting_time", string(meeting)),
		zap.Int("employees", len(employees)))

	return session, nil
}

// IsPastCutoff проверяет отсечку встречи на текущий момент
func (s *AttendanceService) IsPastCutoff(meeting model.MeetingTime) bool {
	return s.policy.IsPastCutoff(meeting, s.Now())
}

// Preview записи сессии с сегодняшней датой, без сохранения
func (s *AttendanceService) Preview(session *FormSession) []model.AttendanceRecord {
	return session.Records(s.Now())
}

// Submit сохраняет все отметки сессии по одной записи за вызов.
// Возвращает число сохранённых записей. При ошибке на k-й записи первые k-1 остаются в базе.
func (s *AttendanceService) Submit(ctx context.Context, session *FormSession) (int, error) {
	if session == nil || session.Len() == 0 {
		return 0, ErrNothingToSubmit
	}

	records := session.Records(s.Now())
	submissionID := uuid.New()

	written := 0
	for i := range records {
		record := &records[i]
		record.SubmissionID = submissionID

		if err := s.store.Insert(ctx, record); err != nil {
			s.logger.Error("Attendance submit interrupted",
				zap.String("submission_id", submissionID.String()),
				zap.Int("written", written),
				zap.Int("total", len(records)),
				zap.Error(err))
			return written, fmt.Errorf("submit attendance (%d of %d written): %w", written, len(records), err)
		}
		written++
	}

	s.logger.Info("Attendance submitted",
		zap.String("submission_id", submissionID.String()),
		zap.String("meeting_time", string(session.Meeting())),
		zap.Int("records", written))

	return written, nil
}
