package attendance

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/go-telegram/bot/models"
)

const (
	timeButtonsPerRow = 4
	maxButtonName     = 24
	previewNameWidth  = 20
)

// FormView всё, что нужно для экрана формы
type FormView struct {
	Meeting    model.MeetingTime
	Roster     []model.Employee
	Pending    map[string]service.PendingEntry
	Preview    []model.AttendanceRecord
	PastCutoff bool
	Cutoff     model.TimeOfDay
}

// NewFormView снимок сессии для отрисовки
func NewFormView(session *service.FormSession, preview []model.AttendanceRecord, pastCutoff bool, cutoff model.TimeOfDay) FormView {
	roster := session.Roster()
	pending := make(map[string]service.PendingEntry, len(roster))
	for _, emp := range roster {
		if entry, ok := session.Entry(emp.FullName); ok {
			pending[emp.FullName] = entry
		}
	}

	return FormView{
		Meeting:    session.Meeting(),
		Roster:     roster,
		Pending:    pending,
		Preview:    preview,
		PastCutoff: pastCutoff,
		Cutoff:     cutoff,
	}
}

// CutoffWarning текст предупреждения об отсечке
func CutoffWarning(meeting model.MeetingTime, cutoff model.TimeOfDay) string {
	return fmt.Sprintf("Time limit exceeded. You can only select a time until %s for %s meeting.",
		formatting.FormatCutoff(cutoff), meeting)
}

// BuildSlotScreen выбор встречи. current пустой, если форма ещё не открыта
func BuildSlotScreen(current model.MeetingTime) (string, *models.InlineKeyboardMarkup) {
	text := "📝 <b>Mark attendance</b>\n\nSelect the meeting:"

	kb := keyboard.NewBuilder()
	for _, meeting := range model.MeetingTimes {
		label := fmt.Sprintf("%s %s meeting", formatting.MeetingEmoji(meeting), meeting)
		if meeting == current {
			label = "✔️ " + label
		}
		kb.Row(keyboard.Button(label, keyboard.MarkSlotData(meeting)))
	}
	if current != "" {
		kb.Row(keyboard.BackButton(keyboard.MarkForm))
	}
	kb.AddBackToMainButton()

	return text, kb.Build()
}

// BuildFormScreen экран формы: предпросмотр и кнопка на каждого сотрудника
func BuildFormScreen(v FormView) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s <b>%s meeting</b>\n\n", formatting.MeetingEmoji(v.Meeting), v.Meeting)
	if v.PastCutoff {
		fmt.Fprintf(&sb, "⚠️ %s\n\n", html.EscapeString(CutoffWarning(v.Meeting, v.Cutoff)))
	}

	if len(v.Roster) == 0 {
		sb.WriteString("No employees found in the roster.\n")
	} else {
		sb.WriteString("Tap an employee to change the status or time.\n\n")
	}

	if len(v.Preview) > 0 {
		sb.WriteString("<pre>")
		sb.WriteString(html.EscapeString(PreviewTable(v.Preview)))
		sb.WriteString("</pre>\n")
	} else {
		sb.WriteString("<i>Nothing selected yet.</i>\n")
	}
	fmt.Fprintf(&sb, "\nTo submit: %d of %d", len(v.Pending), len(v.Roster))

	kb := keyboard.NewBuilder()
	for idx, emp := range v.Roster {
		kb.Row(keyboard.Button(employeeButtonLabel(emp, v.Pending), keyboard.MarkEmployeeData(idx)))
	}
	kb.Row(
		keyboard.Button("✅ Submit", keyboard.MarkSubmit),
		keyboard.Button("📄 CSV", keyboard.MarkCSV),
	)
	kb.Row(keyboard.Button("🔁 Change meeting", keyboard.MarkMenu))
	kb.AddBackToMainButton()

	return sb.String(), kb.Build()
}

func employeeButtonLabel(emp model.Employee, pending map[string]service.PendingEntry) string {
	name := shorten(emp.FullName, maxButtonName)
	entry, ok := pending[emp.FullName]
	if !ok {
		return "⏭ " + name + " · skipped"
	}
	return fmt.Sprintf("%s %s · %s", formatting.GetStatusDisplay(entry.Status).Emoji, name, entry.Time)
}

// BuildEmployeeScreen выбор статуса и времени для одного сотрудника
func BuildEmployeeScreen(idx int, emp model.Employee, entry service.PendingEntry, skipped bool, meeting model.MeetingTime, options []model.TimeOfDay) (string, *models.InlineKeyboardMarkup) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "👤 <b>%s</b>\n", html.EscapeString(emp.FullName))
	if emp.Email != "" {
		fmt.Fprintf(&sb, "✉️ %s\n", html.EscapeString(emp.Email))
	}
	if emp.Phone != "" {
		fmt.Fprintf(&sb, "📞 %s\n", html.EscapeString(emp.Phone))
	}
	fmt.Fprintf(&sb, "\n%s meeting\n", meeting)
	if skipped {
		sb.WriteString("Currently <b>skipped</b>. Pick a status to include again.\n")
	} else {
		fmt.Fprintf(&sb, "Status: <b>%s</b>\nTime: <b>%s</b>\n",
			html.EscapeString(string(entry.Status)), entry.Time)
	}

	kb := keyboard.NewBuilder()

	for _, status := range model.AttendanceStatuses {
		label := formatting.GetStatusDisplay(status).Label()
		if !skipped && status == entry.Status {
			label = "• " + label
		}
		kb.Row(keyboard.Button(label, keyboard.MarkStatusData(idx, status)))
	}

	timeButtons := make([]models.InlineKeyboardButton, 0, len(options))
	for _, tod := range options {
		label := tod.String()
		if !skipped && tod == entry.Time {
			label = "• " + label
		}
		timeButtons = append(timeButtons, keyboard.Button(label, keyboard.MarkTimeData(idx, tod)))
	}
	kb.Grid(timeButtonsPerRow, timeButtons...)

	if !skipped {
		kb.Row(keyboard.Button("⏭ Skip", keyboard.MarkSkipData(idx)))
	}
	kb.AddBackButton(keyboard.MarkForm)

	return sb.String(), kb.Build()
}

// PreviewTable таблица предпросмотра фиксированной ширины для <pre>
func PreviewTable(records []model.AttendanceRecord) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%-*s %-6s %s\n", previewNameWidth, "Name", "Time", "Status")
	for _, rec := range records {
		fmt.Fprintf(&sb, "%s %-6s %s\n",
			padRight(shorten(rec.FullName, previewNameWidth), previewNameWidth),
			formatting.FormatClock(rec.DateTime),
			rec.Status)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}

// padRight дополняет пробелами по числу символов, а не байт
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
