package history

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/attendance_bot/internal/export"
	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleCalendar показывает страницу выбора даты и ждёт ввод даты текстом
func HandleCalendar(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		parts, err := common.SplitCallback(callback.Data, 1)
		if err != nil {
			common.HandleError(hc, err, "parse calendar offset")
			return
		}
		offset, err := strconv.Atoi(parts[0])
		if err != nil || offset < 0 {
			common.HandleError(hc, fmt.Errorf("%w: %q", common.ErrInvalidFormat, callback.Data), "parse calendar offset")
			return
		}

		hc.SetState(callbacktypes.StateHistoryDate)

		text, kb := BuildCalendarScreen(Today(h), offset)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show history calendar", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleDay показывает отметки за выбранную дату
func HandleDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		parts, err := common.SplitCallback(callback.Data, 1)
		if err != nil {
			common.HandleError(hc, err, "parse history date")
			return
		}
		date, err := common.ParseDate(parts[0], h.AttendanceService.Location())
		if err != nil {
			common.HandleError(hc, err, "parse history date")
			return
		}

		if h.StateManager.GetState(hc.TelegramID) == callbacktypes.StateHistoryDate {
			hc.SetState(callbacktypes.StateNone)
		}
		hc.Answer("")

		ShowDay(ctx, b, hc.ChatID, h, date)
	})
}

// HandleCSV отправляет CSV одной встречи за дату
func HandleCSV(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		parts, err := common.SplitCallback(callback.Data, 2)
		if err != nil {
			common.HandleError(hc, err, "parse history csv")
			return
		}
		date, err := common.ParseDate(parts[0], h.AttendanceService.Location())
		if err != nil {
			common.HandleError(hc, err, "parse history csv")
			return
		}
		meeting, ok := model.ParseMeetingCode(parts[1])
		if !ok {
			common.HandleError(hc, fmt.Errorf("%w: %q", service.ErrUnknownMeetingTime, parts[1]), "parse history csv")
			return
		}

		records, err := h.HistoryService.ForSlot(ctx, date, meeting)
		if err != nil {
			common.HandleError(hc, err, "load attendance")
			return
		}
		data, err := export.CSVBytes(records)
		if err != nil {
			common.HandleError(hc, err, "build csv")
			return
		}

		if err := hc.SendDocument(export.FileName(meeting), data, recordsCaption(date, meeting, len(records))); err != nil {
			common.HandleError(hc, err, "send csv")
			return
		}
		hc.Answer("")
	})
}

// ShowDay отправляет отметки за дату новыми сообщениями: картинку (если есть отметки) и текст с кнопками.
// Используется и из callback, и при вводе даты текстом.
func ShowDay(ctx context.Context, b *bot.Bot, chatID int64, h *callbacktypes.Handler, date time.Time) {
	day, err := h.HistoryService.ForDate(ctx, date)
	if err != nil {
		h.Logger.Error("Failed to load attendance history",
			zap.String("date", date.Format(common.DateLayout)),
			zap.Error(err))
		if sendErr := common.SendMessage(ctx, b, chatID, common.ErrorMessage(err), nil); sendErr != nil {
			h.Logger.Error("Failed to send message", zap.Error(sendErr))
		}
		return
	}

	if hasRecords(day) {
		img, err := common.GenerateDayImage(day)
		if err != nil {
			h.Logger.Error("Failed to render attendance image", zap.Error(err))
		} else if err := common.SendPhoto(ctx, b, chatID, imageFileName(day.Date), img, ""); err != nil {
			h.Logger.Error("Failed to send attendance image", zap.Error(err))
		}
	}

	if err := common.SendMessage(ctx, b, chatID, BuildDayText(day), BuildDayKeyboard(day)); err != nil {
		h.Logger.Error("Failed to send attendance history", zap.Error(err))
	}
}

// Today начало текущего дня в часовом поясе сервиса
func Today(h *callbacktypes.Handler) time.Time {
	now := h.AttendanceService.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
