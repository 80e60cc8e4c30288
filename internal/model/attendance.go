package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
	AttendanceStatusOffDuty AttendanceStatus = "Off Duty"
	AttendanceStatusOnCall  AttendanceStatus = "On Call / Application"
)

// AttendanceStatuses закрытый набор статусов в порядке отображения
var AttendanceStatuses = []AttendanceStatus{
	AttendanceStatusPresent,
	AttendanceStatusAbsent,
	AttendanceStatusOffDuty,
	AttendanceStatusOnCall,
}

// IsValid проверяет что статус входит в закрытый набор
func (s AttendanceStatus) IsValid() bool {
	for _, known := range AttendanceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Code короткий код статуса для callback data
func (s AttendanceStatus) Code() string {
	switch s {
	case AttendanceStatusPresent:
		return "p"
	case AttendanceStatusAbsent:
		return "a"
	case AttendanceStatusOffDuty:
		return "o"
	case AttendanceStatusOnCall:
		return "c"
	default:
		return ""
	}
}

// ParseStatusCode обратное преобразование для Code
func ParseStatusCode(code string) (AttendanceStatus, bool) {
	for _, s := range AttendanceStatuses {
		if s.Code() == code {
			return s, true
		}
	}
	return "", false
}

// AttendanceRecord одна строка employee_attendance.
// Данные сотрудника копируются на момент отправки и потом не меняются.
type AttendanceRecord struct {
	ID           int64            `json:"id,omitempty"`
	FullName     string           `json:"fullname"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	Status       AttendanceStatus `json:"status"`
	DateTime     time.Time        `json:"date_time"`
	MeetingTime  MeetingTime      `json:"meeting_time"`
	SubmissionID uuid.UUID        `json:"submission_id"`
	CreatedAt    time.Time        `json:"created_at"`
}
