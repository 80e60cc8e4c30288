package handlers

import (
	"context"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/attendance"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/history"
	"github.com/Freeeeeet/attendance_bot/internal/controller/state"
	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 <b>Help</b>\n\n" +
	"/mark - Mark attendance for the 11 AM or 4 PM meeting\n" +
	"/history - Attendance by date (tap a day or type YYYY-MM-DD)\n" +
	"/cancel - Cancel the current form or date input\n" +
	"/help - Show this help\n\n" +
	"Every employee starts as Present at the meeting start time. " +
	"Tap an employee to change the status or time, or skip them. " +
	"Nothing is saved until you press Submit."

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.logger.Info("Start",
		zap.Int64("telegram_id", update.Message.From.ID),
		zap.String("username", update.Message.From.Username))

	text, kb := common.BuildMainMenuScreen()
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendScreen(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleMark обрабатывает команду /mark - выбор встречи
func (h *Handlers) HandleMark(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateHistoryDate {
		h.stateManager.SetState(telegramID, state.StateNone)
	}

	var current model.MeetingTime
	if session, ok := h.stateManager.GetSession(telegramID); ok {
		current = session.Meeting()
	}

	text, kb := attendance.BuildSlotScreen(current)
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleHistory обрабатывает команду /history - выбор даты
func (h *Handlers) HandleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.stateManager.SetState(update.Message.From.ID, state.StateHistoryDate)

	text, kb := history.BuildCalendarScreen(history.Today(h.deps), 0)
	h.sendScreen(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	_, hasSession := h.stateManager.GetSession(telegramID)

	if h.stateManager.GetState(telegramID) == state.StateNone && !hasSession {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Nothing to cancel.")
		return
	}

	h.stateManager.ClearState(telegramID)

	h.sendScreen(ctx, b, update.Message.Chat.ID,
		"✅ Cancelled. Unsaved selections were discarded.\n\nUse /help to see the available commands.", nil)
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Игнорируем команды (они обрабатываются другими handlers)
	if isCommand(update.Message.Text) {
		return
	}

	telegramID := update.Message.From.ID
	chatID := update.Message.Chat.ID

	switch h.stateManager.GetState(telegramID) {
	case state.StateHistoryDate:
		date, err := parseHistoryInput(update.Message.Text, h.attendanceService.Location())
		if err != nil {
			h.sendError(ctx, b, chatID, common.ErrorMessage(err))
			return
		}

		h.stateManager.SetState(telegramID, state.StateNone)
		history.ShowDay(ctx, b, chatID, h.deps, date)
	default:
		h.sendError(ctx, b, chatID, "Use /mark to mark attendance or /history to look up a date.")
	}
}
