package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/attendance_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/attendance_bot/internal/export"
	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// SuccessText сообщение после успешной отправки
const SuccessText = "✅ Attendance has been successfully recorded!"

// HandleMarkMenu показывает выбор встречи
func HandleMarkMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		var current model.MeetingTime
		if session, ok := h.StateManager.GetSession(hc.TelegramID); ok {
			current = session.Meeting()
		}

		text, kb := BuildSlotScreen(current)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show meeting chooser", zap.Error(err))
		}
		hc.Answer("")
	})
}

// HandleSlot открывает форму для встречи или переключает встречу открытой формы
func HandleSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithContext(ctx, b, callback, h, func(hc *common.HandlerContext) {
		parts, err := common.SplitCallback(callback.Data, 1)
		if err != nil {
			common.HandleError(hc, err, "parse meeting")
			return
		}
		meeting, ok := model.ParseMeetingCode(parts[0])
		if !ok {
			common.HandleError(hc, fmt.Errorf("%w: %q", service.ErrUnknownMeetingTime, parts[0]), "parse meeting")
			return
		}

		if session, ok := h.StateManager.GetSession(hc.TelegramID); ok {
			if err := session.SwitchMeeting(meeting); err != nil {
				common.HandleError(hc, err, "switch meeting")
				return
			}
			hc.Session = session
		} else {
			session, err := h.AttendanceService.StartSession(ctx, meeting)
			if err != nil {
				common.HandleError(hc, err, "start attendance session")
				return
			}
			h.StateManager.SetSession(hc.TelegramID, session)
			hc.Session = session
		}

		showForm(hc)
		if h.AttendanceService.IsPastCutoff(meeting) {
			hc.Answer("⚠️ Time limit exceeded")
			return
		}
		hc.Answer("")
	})
}

// HandleForm возвращает к экрану формы
func HandleForm(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		showForm(hc)
		hc.Answer("")
	})
}

// HandleEmployee показывает выбор статуса и времени для сотрудника
func HandleEmployee(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndexFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "parse employee index")
			return
		}
		if err := showEmployee(hc, idx); err != nil {
			common.HandleError(hc, err, "show employee")
			return
		}
		hc.Answer("")
	})
}

// HandleStatus выбирает статус сотрудника; время остаётся прежним
func HandleStatus(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, arg, err := parseIndexAndArg(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "parse status")
			return
		}
		status, ok := model.ParseStatusCode(arg)
		if !ok {
			common.HandleError(hc, fmt.Errorf("%w: %q", service.ErrInvalidStatus, arg), "parse status")
			return
		}
		emp, ok := hc.Session.Employee(idx)
		if !ok {
			common.HandleError(hc, common.ErrEmployeeNotFound, "select status")
			return
		}

		entry := hc.Session.EntryOrDefault(emp)
		if err := hc.Session.AddOrReplace(emp, status, entry.Time); err != nil {
			common.HandleError(hc, err, "select status")
			return
		}

		if err := showEmployee(hc, idx); err != nil {
			h.Logger.Error("Failed to refresh employee screen", zap.Error(err))
		}
		hc.Answer(formatting.GetStatusDisplay(status).Label())
	})
}

// HandleTime выбирает время сотрудника и возвращает к форме
func HandleTime(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, arg, err := parseIndexAndArg(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "parse time")
			return
		}
		tod, err := model.ParseTimeOfDay(arg)
		if err != nil {
			common.HandleError(hc, fmt.Errorf("%w: %v", common.ErrInvalidFormat, err), "parse time")
			return
		}
		emp, ok := hc.Session.Employee(idx)
		if !ok {
			common.HandleError(hc, common.ErrEmployeeNotFound, "select time")
			return
		}

		entry := hc.Session.EntryOrDefault(emp)
		if err := hc.Session.AddOrReplace(emp, entry.Status, tod); err != nil {
			common.HandleError(hc, err, "select time")
			return
		}

		showForm(hc)
		hc.Answer(fmt.Sprintf("%s · %s", emp.FullName, tod))
	})
}

// HandleSkip исключает сотрудника из отправки
func HandleSkip(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		idx, err := common.ParseIndexFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "parse employee index")
			return
		}
		emp, ok := hc.Session.Employee(idx)
		if !ok {
			common.HandleError(hc, common.ErrEmployeeNotFound, "skip employee")
			return
		}

		hc.Session.Remove(emp.FullName)
		showForm(hc)
		hc.Answer("⏭ Skipped")
	})
}

// HandleSubmit сохраняет отметки формы
func HandleSubmit(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		meeting := hc.Session.Meeting()
		written, err := h.AttendanceService.Submit(ctx, hc.Session)

		switch {
		case errors.Is(err, service.ErrNothingToSubmit):
			hc.AnswerAlert(common.ErrorMessage(err))
			return
		case err != nil:
			h.Logger.Error("Failed to submit attendance",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Int("written", written),
				zap.Error(err))
			hc.ClearState()

			text := fmt.Sprintf("❌ Failed to record attendance. %d record(s) were saved before the error.\n\nPlease check the history and try again with /mark.", written)
			if editErr := hc.EditMessage(text, keyboard.NewBuilder().AddBackToMainButton().Build()); editErr != nil {
				h.Logger.Error("Failed to show submit error", zap.Error(editErr))
			}
			hc.Answer("")
			return
		}

		hc.ClearState()

		text := fmt.Sprintf("%s\n\n%s meeting, %s\nRecords: %d",
			SuccessText, meeting, formatting.FormatDate(h.AttendanceService.Now()), written)
		kb := keyboard.NewBuilder().
			Row(keyboard.Button("📅 View history", keyboard.HistoryDay(h.AttendanceService.Now()))).
			AddBackToMainButton().
			Build()
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to show submit result", zap.Error(err))
		}
		hc.Answer("✅ Saved")
	})
}

// HandleCSV отправляет предпросмотр формы файлом attendance.csv
func HandleCSV(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithSession(ctx, b, callback, h, func(hc *common.HandlerContext) {
		data, err := export.CSVBytes(h.AttendanceService.Preview(hc.Session))
		if err != nil {
			common.HandleError(hc, err, "build csv")
			return
		}

		caption := fmt.Sprintf("Preview for %s meeting (not submitted)", hc.Session.Meeting())
		if err := hc.SendDocument(export.FileName(""), data, caption); err != nil {
			common.HandleError(hc, err, "send csv")
			return
		}
		hc.Answer("")
	})
}

// showForm перерисовывает экран формы в текущем сообщении
func showForm(hc *common.HandlerContext) {
	svc := hc.Handler.AttendanceService
	meeting := hc.Session.Meeting()

	var cutoff model.TimeOfDay
	if w, err := svc.Policy().WindowFor(meeting); err == nil {
		cutoff = w.Cutoff
	}

	view := NewFormView(hc.Session, svc.Preview(hc.Session), svc.IsPastCutoff(meeting), cutoff)
	text, kb := BuildFormScreen(view)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to show attendance form", zap.Error(err))
	}
}

// showEmployee перерисовывает экран сотрудника
func showEmployee(hc *common.HandlerContext, idx int) error {
	emp, ok := hc.Session.Employee(idx)
	if !ok {
		return common.ErrEmployeeNotFound
	}

	meeting := hc.Session.Meeting()
	options, err := hc.Handler.AttendanceService.Policy().Options(meeting)
	if err != nil {
		return err
	}

	_, included := hc.Session.Entry(emp.FullName)
	entry := hc.Session.EntryOrDefault(emp)

	text, kb := BuildEmployeeScreen(idx, emp, entry, !included, meeting, options)
	return hc.EditMessage(text, kb)
}

// parseIndexAndArg "mark_time:3:1115" -> 3, "1115"
func parseIndexAndArg(data string) (int, string, error) {
	parts, err := common.SplitCallback(data, 2)
	if err != nil {
		return 0, "", err
	}
	idx, err := common.ParseIndexFromCallback("x:" + parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", common.ErrInvalidFormat, data)
	}
	return idx, parts[1], nil
}
