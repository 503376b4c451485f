package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string // Адрес и порт запуска сервиса
	BackendAddress string // Адрес API калькулятора: скидки, каталог, цены, заказы
	DatabaseURI    string // URI журнала заявок, пустой отключает журнал
	LogLevel       string // Уровень логирования

	WhatsAppNumber string // Номер получателя заявок
	MessagingHost  string // Хост ссылок мессенджера
	Locale         string // Язык интерфейса: ru или en
	Timezone       string // Часовой пояс календаря

	SessionSecret  string        // Ключ подписи токенов сессий
	SessionTTL     time.Duration // Время жизни неактивной сессии
	RecalcDebounce time.Duration // Задержка пересчета при вводе площади

	BackendTimeout  time.Duration // Таймаут запроса к API
	BackendRetryMax int           // Количество повторов запроса к API

	// Worker Pool конфигурация
	WorkerPoolSize      int           // Количество воркеров доставки
	WorkerQueueSize     int           // Размер очереди заявок
	WorkerScanInterval  time.Duration // Интервал сканирования недоставленных заявок
	DeliveryMaxAttempts int           // Попыток доставки до перевода в FAILED
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		RunAddress:          ":8080",
		LogLevel:            "info",
		MessagingHost:       "wa.me",
		Locale:              "ru",
		Timezone:            "Local",
		SessionSecret:       "default-secret-key-change-in-production",
		SessionTTL:          2 * time.Hour,
		RecalcDebounce:      300 * time.Millisecond,
		BackendTimeout:      10 * time.Second,
		BackendRetryMax:     2,
		WorkerPoolSize:      3,
		WorkerQueueSize:     100,
		WorkerScanInterval:  30 * time.Second,
		DeliveryMaxAttempts: 5,
	}
}

// Load загружает конфигурацию из .env, флагов и переменных окружения
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	// .env не перекрывает уже заданные переменные окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return load(flag.CommandLine, os.Args[1:])
}

func load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.BackendAddress, "b", cfg.BackendAddress, "calculator backend address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	envString("RUN_ADDRESS", &cfg.RunAddress)
	envString("BACKEND_ADDRESS", &cfg.BackendAddress)
	envString("DATABASE_URI", &cfg.DatabaseURI)
	envString("LOG_LEVEL", &cfg.LogLevel)
	envString("WHATSAPP_NUMBER", &cfg.WhatsAppNumber)
	envString("MESSAGING_HOST", &cfg.MessagingHost)
	envString("LOCALE", &cfg.Locale)
	envString("TIMEZONE", &cfg.Timezone)

	// Секрет только из env
	envString("SESSION_SECRET", &cfg.SessionSecret)

	envDuration("SESSION_TTL", &cfg.SessionTTL)
	envDuration("RECALC_DEBOUNCE", &cfg.RecalcDebounce)
	envDuration("BACKEND_TIMEOUT", &cfg.BackendTimeout)
	envDuration("WORKER_SCAN_INTERVAL", &cfg.WorkerScanInterval)

	envInt("WORKER_POOL_SIZE", &cfg.WorkerPoolSize)
	envInt("WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize)
	envInt("DELIVERY_MAX_ATTEMPTS", &cfg.DeliveryMaxAttempts)

	// Ноль повторов допустим
	if v, ok := os.LookupEnv("BACKEND_RETRY_MAX"); ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.BackendRetryMax = n
		}
	}

	// Валидация обязательных параметров
	if cfg.BackendAddress == "" {
		return nil, fmt.Errorf("backend address is required (use -b flag or BACKEND_ADDRESS env)")
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

// envInt принимает только положительные значения, остальные игнорирует
func envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

func envDuration(key string, dst *time.Duration) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}

// Location возвращает часовой пояс календаря
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
