package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// LogUpdates middleware логирует входящие сообщения
func (h *Handlers) LogUpdates(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message != nil && update.Message.From != nil {
			h.logger.Debug("Message received",
				zap.Int64("telegram_id", update.Message.From.ID),
				zap.Int64("chat_id", update.Message.Chat.ID),
				zap.Int("length", len(update.Message.Text)))
		}
		next(ctx, b, update)
	}
}

// HandleDefault отвечает на всё, что не подошло ни под один handler
func (h *Handlers) HandleDefault(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendError(ctx, b, update.Message.Chat.ID, "🤔 Unknown command. Use /help to see what I can do.")
}
