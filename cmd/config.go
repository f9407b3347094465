package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	LogLevel           string
	MenuFile           string
	KitchenJobEnabled  bool
	KitchenJobSchedule string
	OrderIDPrefix      string
	OrderIDOffset      int64
}

// LoadConfig reads the dotenv file at path, when it exists, into the process
// environment and builds the configuration from it. Variables already set in
// the environment win over the file.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	jobEnabled, err := strconv.ParseBool(env("KITCHEN_JOB_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("KITCHEN_JOB_ENABLED: %w", err)
	}
	offset, err := strconv.ParseInt(env("ORDER_ID_OFFSET", strconv.FormatInt(kernel.DefaultOrderNumberOffset, 10)), 10, 64)
	if err != nil || offset < 0 {
		return Config{}, fmt.Errorf("ORDER_ID_OFFSET must be a non-negative integer: %q", os.Getenv("ORDER_ID_OFFSET"))
	}

	return Config{
		HTTPPort:           env("HTTP_PORT", "8080"),
		DBHost:             env("DB_HOST", "localhost"),
		DBPort:             env("DB_PORT", "5432"),
		DBUser:             env("DB_USER", "postgres"),
		DBPassword:         env("DB_PASSWORD", ""),
		DBName:             env("DB_NAME", "pizzeria"),
		DBSslMode:          env("DB_SSLMODE", "disable"),
		LogLevel:           strings.ToLower(env("LOG_LEVEL", "info")),
		MenuFile:           env("MENU_FILE", ""),
		KitchenJobEnabled:  jobEnabled,
		KitchenJobSchedule: env("KITCHEN_JOB_SCHEDULE", jobs.DefaultKitchenSchedule),
		OrderIDPrefix:      env("ORDER_ID_PREFIX", kernel.DefaultOrderNumberPrefix),
		OrderIDOffset:      offset,
	}, nil
}

// DSN is the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
