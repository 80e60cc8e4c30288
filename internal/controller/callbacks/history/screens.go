package history

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

// BuildCalendarScreen выбор даты: DaysPerPage дней, начиная с today-offset и назад
func BuildCalendarScreen(today time.Time, offset int) (string, *models.InlineKeyboardMarkup) {
	text := "📅 <b>Attendance history</b>\n\n" +
		"Select a date or type it as YYYY-MM-DD:"

	kb := keyboard.NewBuilder()
	for i := 0; i < keyboard.DaysPerPage; i++ {
		day := today.AddDate(0, 0, -(offset + i))
		kb.Row(keyboard.Button(formatting.DayLabel(day, today), keyboard.HistoryDay(day)))
	}
	kb.AddDayPagination(offset)
	kb.AddBackToMainButton()

	return text, kb.Build()
}

// BuildDayText отметки за день по встречам
func BuildDayText(day *service.DayAttendance) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📅 <b>%s</b>\n", formatting.FormatDateWithWeekday(day.Date))

	for _, slot := range day.Slots {
		fmt.Fprintf(&sb, "\n%s <b>%s meeting</b> (%d)\n",
			formatting.MeetingEmoji(slot.Meeting), slot.Meeting, len(slot.Records))

		if len(slot.Records) == 0 {
			sb.WriteString("<i>No records</i>\n")
			continue
		}

		for _, rec := range slot.Records {
			fmt.Fprintf(&sb, "%s %s · %s · %s\n",
				formatting.GetStatusDisplay(rec.Status).Emoji,
				html.EscapeString(rec.FullName),
				formatting.FormatClock(rec.DateTime),
				html.EscapeString(string(rec.Status)))
		}
	}

	return sb.String()
}

// BuildDayKeyboard кнопки CSV только для встреч с отметками
func BuildDayKeyboard(day *service.DayAttendance) *models.InlineKeyboardMarkup {
	kb := keyboard.NewBuilder()

	for _, slot := range day.Slots {
		if len(slot.Records) == 0 {
			continue
		}
		kb.Row(keyboard.Button(
			fmt.Sprintf("📄 CSV %s", slot.Meeting),
			keyboard.HistoryCSV(day.Date, slot.Meeting),
		))
	}

	kb.Row(keyboard.Button("📅 Another date", keyboard.HistoryCalendar(0)))
	kb.AddBackToMainButton()

	return kb.Build()
}

// hasRecords есть ли отметки хотя бы по одной встрече
func hasRecords(day *service.DayAttendance) bool {
	for _, slot := range day.Slots {
		if len(slot.Records) > 0 {
			return true
		}
	}
	return false
}

// imageFileName имя PNG для дня
func imageFileName(date time.Time) string {
	return fmt.Sprintf("attendance_%s.png", date.Format("2006-01-02"))
}

// recordsCaption подпись к CSV встречи
func recordsCaption(date time.Time, meeting model.MeetingTime, count int) string {
	return fmt.Sprintf("%s meeting, %s: %d record(s)", meeting, formatting.FormatDate(date), count)
}
