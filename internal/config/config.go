package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvironment = "development"
	defaultTimezone    = "Local"
	defaultDBMaxConns  = 4
)

type Config struct {
	TelegramToken string
	DBDSN         string
	Environment   string

	// RosterIDs список id сотрудников из таблицы employee, которых можно отмечать
	RosterIDs []int64
	Timezone  string
	// HTTPAddr адрес HTTP API, пустая строка - API выключен
	HTTPAddr   string
	DBMaxConns int32
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}

	log.Printf("Config loaded: %d employees in roster, timezone %s\n", len(cfg.RosterIDs), cfg.Timezone)

	return cfg, nil
}

// FromEnv собирает конфиг из функции чтения переменных окружения
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		TelegramToken: getenv("TELEGRAM_TOKEN"),
		DBDSN:         getenv("DB_DSN"),
		Environment:   getenv("ENV"),
		Timezone:      getenv("TIMEZONE"),
		HTTPAddr:      getenv("HTTP_ADDR"),
		DBMaxConns:    defaultDBMaxConns,
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required but not set")
	}

	ids, err := ParseRosterIDs(getenv("ROSTER_IDS"))
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("ROSTER_IDS is required but not set")
	}
	cfg.RosterIDs = ids

	if raw := getenv("DB_MAX_CONNS"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("DB_MAX_CONNS must be a positive integer, got %q", raw)
		}
		cfg.DBMaxConns = int32(n)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseRosterIDs разбирает список id через запятую ("373, 379,403")
func ParseRosterIDs(raw string) ([]int64, error) {
	var ids []int64
	seen := make(map[int64]bool)

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ROSTER_IDS entry %q: %w", part, err)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	return ids, nil
}

// Location возвращает часовой пояс, в котором считается "сегодня"
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}
