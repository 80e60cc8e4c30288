package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Freeeeeet/attendance_bot/internal/model"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// RosterLister источник списка сотрудников (service.RosterService)
type RosterLister interface {
	ListEmployees(ctx context.Context) ([]model.Employee, error)
}

// HistoryReader чтение отметок (service.HistoryService)
type HistoryReader interface {
	ForDate(ctx context.Context, date time.Time) (*service.DayAttendance, error)
	ForSlot(ctx context.Context, date time.Time, meeting model.MeetingTime) ([]model.AttendanceRecord, error)
}

// Server HTTP API только для чтения поверх тех же сервисов, что и бот
type Server struct {
	echo    *echo.Echo
	roster  RosterLister
	history HistoryReader
	policy  *service.SlotPolicy
	loc     *time.Location
	now     func() time.Time
	logger  *zap.Logger
}

func NewServer(
	roster RosterLister,
	history HistoryReader,
	policy *service.SlotPolicy,
	loc *time.Location,
	logger *zap.Logger,
) *Server {
	if loc == nil {
		loc = time.Local
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:    e,
		roster:  roster,
		history: history,
		policy:  policy,
		loc:     loc,
		now:     time.Now,
		logger:  logger,
	}

	e.Use(middleware.Recover())
	e.Use(s.requestLogger())
	e.Use(middleware.CORS())

	s.registerRoutes()
	return s
}

// Handler http.Handler сервера, нужен в тестах
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start слушает addr до отмены ctx, затем плавно останавливается
func (s *Server) Start(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP API listening", zap.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Stopping HTTP API")
	return s.echo.Shutdown(shutdownCtx)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				s.logger.Error("HTTP request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			s.logger.Info("HTTP request", fields...)
			return nil
		},
	})
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.health)

	api := s.echo.Group("/api")
	api.GET("/roster", s.listRoster)
	api.GET("/slots/:code", s.getSlot)
	api.GET("/attendance", s.getAttendance)
	api.GET("/attendance/export", s.exportAttendance)
}
