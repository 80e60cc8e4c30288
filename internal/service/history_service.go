package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"go.uber.org/zap"
)

// SlotAttendance отметки одной встречи
type SlotAttendance struct {
	Meeting model.MeetingTime        `json:"meeting_time"`
	Records []model.AttendanceRecord `json:"records"`
}

// DayAttendance отметки за день по всем встречам
type DayAttendance struct {
	Date  time.Time        `json:"date"`
	Slots []SlotAttendance `json:"slots"`
}

// Slot отметки конкретной встречи дня
func (d *DayAttendance) Slot(meeting model.MeetingTime) []model.AttendanceRecord {
	for _, slot := range d.Slots {
		if slot.Meeting == meeting {
			return slot.Records
		}
	}
	return nil
}

// HistoryService просмотр отметок за прошедшие даты
type HistoryService struct {
	store  AttendanceStore
	logger *zap.Logger
}

func NewHistoryService(store AttendanceStore, logger *zap.Logger) *HistoryService {
	return &HistoryService{store: store, logger: logger}
}

// ForDate запрашивает отметки за дату отдельно по каждой встрече. Без кеша.
func (s *HistoryService) ForDate(ctx context.Context, date time.Time) (*DayAttendance, error) {
	day := &DayAttendance{Date: date}

	for _, meeting := range model.MeetingTimes {
		records, err := s.store.ListByDateAndSlot(ctx, date, meeting)
		if err != nil {
			return nil, fmt.Errorf("history for %s %s: %w", date.Format("2006-01-02"), meeting, err)
		}
		day.Slots = append(day.Slots, SlotAttendance{Meeting: meeting, Records: records})
	}

	s.logger.Debug("History loaded",
		zap.String("date", date.Format("2006-01-02")),
		zap.Int("slots", len(day.Slots)))

	return day, nil
}

// ForSlot отметки одной встречи за дату
func (s *HistoryService) ForSlot(ctx context.Context, date time.Time, meeting model.MeetingTime) ([]model.AttendanceRecord, error) {
	records, err := s.store.ListByDateAndSlot(ctx, date, meeting)
	if err != nil {
		return nil, fmt.Errorf("history for %s %s: %w", date.Format("2006-01-02"), meeting, err)
	}
	return records, nil
}
