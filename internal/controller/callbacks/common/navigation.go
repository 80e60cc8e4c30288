package common

import (
	"context"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common/keyboard"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Callback data общей навигации
const (
	BackToMain = "back_to_main"
	Noop       = "noop"
)

// BuildMainMenuScreen формирует главное меню
func BuildMainMenuScreen() (string, *models.InlineKeyboardMarkup) {
	text := "📋 <b>Meeting attendance</b>\n\n" +
		"Mark attendance for the 11 AM and 4 PM meetings or look up previous days.\n\n" +
		"/mark - Mark attendance\n" +
		"/history - Attendance by date\n" +
		"/help - Help"

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📝 Mark attendance", keyboard.MarkMenu)).
		Row(keyboard.Button("📅 History", keyboard.HistoryCalendar(0))).
		Build()

	return text, kb
}

// HandleBackToMain возвращает пользователя к главному меню.
// Открытая форма отметок сохраняется, сбрасывается только ожидание ввода.
func HandleBackToMain(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	WithContext(ctx, b, callback, h, func(hc *HandlerContext) {
		if h.StateManager.GetState(hc.TelegramID) == callbacktypes.StateHistoryDate {
			hc.SetState(callbacktypes.StateNone)
		}

		text, kb := BuildMainMenuScreen()
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show main menu", zap.Error(err))
		}
		hc.Answer("")
	})
}
