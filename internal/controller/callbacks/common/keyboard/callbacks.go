package keyboard

import (
	"fmt"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
)

// Префиксы callback data. Значения после префикса разделяются двоеточием.
const (
	MarkMenu     = "mark_menu"
	MarkForm     = "mark_form"
	MarkSubmit   = "mark_submit"
	MarkCSV      = "mark_csv"
	MarkSlot     = "mark_slot:"    // mark_slot:11am
	MarkEmployee = "mark_emp:"     // mark_emp:3
	MarkStatus   = "mark_status:"  // mark_status:3:p
	MarkTime     = "mark_time:"    // mark_time:3:1115
	MarkSkip     = "mark_skip:"    // mark_skip:3

	HistoryCalendarPrefix = "history_calendar:" // history_calendar:7
	HistoryDayPrefix      = "history_day:"      // history_day:2024-01-10
	HistoryCSVPrefix      = "history_csv:"      // history_csv:2024-01-10:11am
)

const dateLayout = "2006-01-02"

func MarkSlotData(meeting model.MeetingTime) string {
	return MarkSlot + meeting.Code()
}

func MarkEmployeeData(idx int) string {
	return fmt.Sprintf("%s%d", MarkEmployee, idx)
}

func MarkStatusData(idx int, status model.AttendanceStatus) string {
	return fmt.Sprintf("%s%d:%s", MarkStatus, idx, status.Code())
}

func MarkTimeData(idx int, tod model.TimeOfDay) string {
	return fmt.Sprintf("%s%d:%s", MarkTime, idx, tod.Compact())
}

func MarkSkipData(idx int) string {
	return fmt.Sprintf("%s%d", MarkSkip, idx)
}

// HistoryCalendar страница выбора даты; offset - на сколько дней назад от сегодня начинается страница
func HistoryCalendar(offset int) string {
	return fmt.Sprintf("%s%d", HistoryCalendarPrefix, offset)
}

func HistoryDay(date time.Time) string {
	return HistoryDayPrefix + date.Format(dateLayout)
}

func HistoryCSV(date time.Time, meeting model.MeetingTime) string {
	return fmt.Sprintf("%s%s:%s", HistoryCSVPrefix, date.Format(dateLayout), meeting.Code())
}
