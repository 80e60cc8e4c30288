package common

import (
	"context"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/callbacktypes"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// WithContext создаёт HandlerContext без дополнительных проверок
func WithContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	hc := NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		h.Logger.Warn("Callback without accessible message", zap.Int64("telegram_id", hc.TelegramID))
		hc.AnswerAlert(ErrorMessage(ErrNoMessage))
		return
	}

	handler(hc)
}

// WithSession создаёт HandlerContext и загружает открытую форму отметок
// При ошибке автоматически отвечает пользователю и не вызывает handler
func WithSession(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
	handler func(*HandlerContext),
) {
	WithContext(ctx, b, callback, h, func(hc *HandlerContext) {
		if err := hc.LoadSession(); err != nil {
			h.Logger.Info("Attendance form is not open",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.String("data", callback.Data))
			hc.AnswerAlert(ErrorMessage(err))
			return
		}

		handler(hc)
	})
}

// HandleError обрабатывает ошибку и отправляет ответ пользователю
func HandleError(hc *HandlerContext, err error, operation string) {
	hc.Handler.Logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("telegram_id", hc.TelegramID),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}
