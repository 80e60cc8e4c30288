package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/attendance"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/history"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	switch {
	// ===== Common Navigation =====
	case data == common.BackToMain:
		common.HandleBackToMain(ctx, b, callback, h)
	case data == common.Noop:
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Attendance form =====
	case data == keyboard.MarkMenu:
		attendance.HandleMarkMenu(ctx, b, callback, h)
	case data == keyboard.MarkForm:
		attendance.HandleForm(ctx, b, callback, h)
	case data == keyboard.MarkSubmit:
		attendance.HandleSubmit(ctx, b, callback, h)
	case data == keyboard.MarkCSV:
		attendance.HandleCSV(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.MarkSlot):
		attendance.HandleSlot(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.MarkEmployee):
		attendance.HandleEmployee(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.MarkStatus):
		attendance.HandleStatus(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.MarkTime):
		attendance.HandleTime(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.MarkSkip):
		attendance.HandleSkip(ctx, b, callback, h)

	// ===== History =====
	case strings.HasPrefix(data, keyboard.HistoryCalendarPrefix):
		history.HandleCalendar(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.HistoryDayPrefix):
		history.HandleDay(ctx, b, callback, h)
	case strings.HasPrefix(data, keyboard.HistoryCSVPrefix):
		history.HandleCSV(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Unknown command")
	}
}
