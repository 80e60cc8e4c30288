// Package export выгружает отметки посещаемости в CSV
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Freeeeeet/attendance_bot/internal/model"
)

// DateTimeLayout формат колонки "Date and Time"
const DateTimeLayout = "2006-01-02 15:04:05"

// Header заголовок выгрузки
var Header = []string{"Name", "Email", "Phone", "Status", "Date and Time", "Meeting Time"}

// WriteCSV пишет заголовок и по строке на запись. Пустой список даёт только заголовок.
func WriteCSV(w io.Writer, records []model.AttendanceRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.FullName,
			r.Email,
			r.Phone,
			string(r.Status),
			r.DateTime.Format(DateTimeLayout),
			string(r.MeetingTime),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVBytes то же что WriteCSV, но в память
func CSVBytes(records []model.AttendanceRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName имя файла выгрузки: attendance.csv для предпросмотра, attendance_11am.csv для встречи
func FileName(meeting model.MeetingTime) string {
	if meeting == "" {
		return "attendance.csv"
	}
	return fmt.Sprintf("attendance_%s.csv", meeting.Code())
}
