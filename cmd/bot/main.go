package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/attendance_bot/internal/app"
	"github.com/Freeeeeet/attendance_bot/internal/config"
	"github.com/Freeeeeet/attendance_bot/internal/controller"
	"github.com/Freeeeeet/attendance_bot/internal/controller/handlers"
	"github.com/Freeeeeet/attendance_bot/internal/controller/state"
	"github.com/Freeeeeet/attendance_bot/internal/httpapi"
	"github.com/Freeeeeet/attendance_bot/internal/migrations"
	"github.com/Freeeeeet/attendance_bot/internal/repository"
	"github.com/Freeeeeet/attendance_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("Attendance bot stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logger.Info("Starting attendance bot",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", loc.String()),
		zap.Int("roster_size", len(cfg.RosterIDs)),
		zap.Bool("http_api", cfg.HTTPAddr != ""))

	// База данных
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDBDSN())
	if err != nil {
		return err
	}
	poolCfg.MaxConns = cfg.DBMaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("✅ Connected to database")

	migrator, err := app.NewMigrator(pool, migrations.FS)
	if err != nil {
		return err
	}
	if err := migrator.Run(ctx); err != nil {
		migrator.Close()
		return err
	}
	if version, err := migrator.Version(ctx); err == nil {
		logger.Info("Database schema version", zap.Int64("version", version))
	}
	migrator.Close()

	// Репозитории и сервисы
	employeeRepo := repository.NewEmployeeRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool, loc)

	policy := service.NewSlotPolicy()
	rosterService := service.NewRosterService(employeeRepo, cfg.RosterIDs, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, rosterService, policy, loc, logger)
	historyService := service.NewHistoryService(attendanceRepo, logger)

	// Telegram
	stateManager := state.NewManager()
	cmdHandlers := handlers.NewHandlers(attendanceService, historyService, stateManager, logger)

	b, err := bot.New(cfg.TelegramToken,
		bot.WithDefaultHandler(cmdHandlers.HandleDefault),
		bot.WithMiddlewares(cmdHandlers.LogUpdates),
	)
	if err != nil {
		return err
	}

	botController := controller.NewBotController(b, cmdHandlers, attendanceService, historyService, stateManager, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu was not updated", zap.Error(err))
	}

	// HTTP API
	if cfg.HTTPAddr != "" {
		server := httpapi.NewServer(rosterService, historyService, policy, loc, logger)
		go func() {
			if err := server.Start(ctx, cfg.HTTPAddr); err != nil {
				logger.Error("HTTP API failed", zap.Error(err))
				stop()
			}
		}()
	}

	if err := botController.Start(ctx); err != nil {
		return err
	}

	logger.Info("Attendance bot stopped")
	return nil
}
