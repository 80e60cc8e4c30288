package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/export"
	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type errorResponse struct {
	Error string `json:"error"`
}

type slotResponse struct {
	MeetingTime model.MeetingTime `json:"meeting_time"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Cutoff      string            `json:"cutoff"`
	Options     []string          `json:"options"`
	PastCutoff  bool              `json:"past_cutoff"`
}

// GET /health
func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// GET /api/roster
func (s *Server) listRoster(c echo.Context) error {
	employees, err := s.roster.ListEmployees(c.Request().Context())
	if err != nil {
		return s.internalError(c, "list roster", err)
	}
	if employees == nil {
		employees = []model.Employee{}
	}
	return c.JSON(http.StatusOK, employees)
}

// GET /api/slots/:code  (code = 11am | 4pm)
func (s *Server) getSlot(c echo.Context) error {
	meeting, ok := model.ParseMeetingCode(c.Param("code"))
	if !ok {
		return badRequest(c, fmt.Sprintf("unknown meeting %q, use 11am or 4pm", c.Param("code")))
	}

	w, err := s.policy.WindowFor(meeting)
	if err != nil {
		return badRequest(c, err.Error())
	}
	options, err := s.policy.Options(meeting)
	if err != nil {
		return badRequest(c, err.Error())
	}

	resp := slotResponse{
		MeetingTime: meeting,
		Start:       w.Start.String(),
		End:         w.End.String(),
		Cutoff:      w.Cutoff.String(),
		Options:     make([]string, 0, len(options)),
		PastCutoff:  s.policy.IsPastCutoff(meeting, s.now().In(s.loc)),
	}
	for _, o := range options {
		resp.Options = append(resp.Options, o.String())
	}

	return c.JSON(http.StatusOK, resp)
}

// GET /api/attendance?date=YYYY-MM-DD
func (s *Server) getAttendance(c echo.Context) error {
	date, err := s.parseDate(c.QueryParam("date"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	day, err := s.history.ForDate(c.Request().Context(), date)
	if err != nil {
		return s.internalError(c, "load attendance", err)
	}
	for i := range day.Slots {
		if day.Slots[i].Records == nil {
			day.Slots[i].Records = []model.AttendanceRecord{}
		}
	}

	return c.JSON(http.StatusOK, day)
}

// GET /api/attendance/export?date=YYYY-MM-DD&meeting=11am
func (s *Server) exportAttendance(c echo.Context) error {
	date, err := s.parseDate(c.QueryParam("date"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	meeting, ok := model.ParseMeetingCode(strings.TrimSpace(c.QueryParam("meeting")))
	if !ok {
		return badRequest(c, "meeting must be 11am or 4pm")
	}

	records, err := s.history.ForSlot(c.Request().Context(), date, meeting)
	if err != nil {
		return s.internalError(c, "load attendance", err)
	}

	data, err := export.CSVBytes(records)
	if err != nil {
		return s.internalError(c, "build csv", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, export.FileName(meeting)))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (s *Server) parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required (YYYY-MM-DD)")
	}
	date, err := time.ParseInLocation(dateLayout, raw, s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", raw)
	}
	return date, nil
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func (s *Server) internalError(c echo.Context, op string, err error) error {
	s.logger.Error("HTTP handler failed", zap.String("operation", op), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
