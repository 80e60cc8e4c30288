package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AttendanceRepository хранит отметки посещаемости (employee_attendance)
type AttendanceRepository struct {
	*base.Repository
	loc *time.Location
}

// NewAttendanceRepository создаёт репозиторий.
// date_time хранится без часового пояса, при чтении к нему прикрепляется loc.
func NewAttendanceRepository(pool *pgxpool.Pool, loc *time.Location) *AttendanceRepository {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceRepository{Repository: base.NewRepository(pool), loc: loc}
}

// Insert сохраняет одну отметку. Одна запись - один INSERT, без общей транзакции.
func (r *AttendanceRepository) Insert(ctx context.Context, record *model.AttendanceRecord) error {
	query := `
		INSERT INTO employee_attendance (fullname, phone, email, employee_status, date_time, meeting_time, submission_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.WithConn(ctx, func(conn *pgxpool.Conn) error {
		return conn.QueryRow(
			ctx, query,
			record.FullName,
			record.Phone,
			record.Email,
			string(record.Status),
			wallClock(record.DateTime),
			string(record.MeetingTime),
			record.SubmissionID,
		).Scan(&record.ID, &record.CreatedAt)
	})
	if err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}

	return nil
}

// ListByDateAndSlot получает отметки за дату и встречу.
// meeting_time сравнивается как строка без нормализации.
func (r *AttendanceRepository) ListByDateAndSlot(ctx context.Context, date time.Time, meeting model.MeetingTime) ([]model.AttendanceRecord, error) {
	query := `
		SELECT id, fullname, phone, email, employee_status, date_time, meeting_time, submission_id, created_at
		FROM employee_attendance
		WHERE date(date_time) = $1::date AND meeting_time = $2
		ORDER BY id
	`

	records := make([]model.AttendanceRecord, 0)
	err := r.WithConn(ctx, func(conn *pgxpool.Conn) error {
		rows, err := conn.Query(ctx, query, date.Format("2006-01-02"), string(meeting))
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				rec        model.AttendanceRecord
				status     string
				meetingStr string
			)
			err := rows.Scan(
				&rec.ID,
				&rec.FullName,
				&rec.Phone,
				&rec.Email,
				&status,
				&rec.DateTime,
				&meetingStr,
				&rec.SubmissionID,
				&rec.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("scan attendance: %w", err)
			}
			rec.Status = model.AttendanceStatus(status)
			rec.MeetingTime = model.MeetingTime(meetingStr)
			rec.DateTime = r.inLocation(rec.DateTime)
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list attendance by date and slot: %w", err)
	}

	return records, nil
}

// wallClock отбрасывает часовой пояс, сохраняя локальное время (колонка TIMESTAMP)
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// inLocation возвращает время из TIMESTAMP в настроенный часовой пояс
func (r *AttendanceRepository) inLocation(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), r.loc)
}
