package keyboard

import "github.com/go-telegram/bot/models"

// DaysPerPage сколько дней показывает одна страница календаря истории
const DaysPerPage = 7

// DayPagination кнопки листания календаря истории.
// offset растёт в прошлое, поэтому "раньше" - это offset+DaysPerPage
func DayPagination(offset int) []models.InlineKeyboardButton {
	buttons := []models.InlineKeyboardButton{
		Button("⬅️ Earlier", HistoryCalendar(offset+DaysPerPage)),
	}

	if offset > 0 {
		next := offset - DaysPerPage
		if next < 0 {
			next = 0
		}
		buttons = append(buttons, Button("Later ➡️", HistoryCalendar(next)))
	}

	return buttons
}

// AddDayPagination добавляет пагинацию календаря к builder
func (b *Builder) AddDayPagination(offset int) *Builder {
	return b.Row(DayPagination(offset)...)
}
