package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Scan     ScanConfig
	Storage  StorageConfig
	Queue    QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds text-extraction configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxOCRPages   int
}

// ScanConfig holds invoice drop-directory configuration
type ScanConfig struct {
	Roots        []string
	WatchEnabled bool
	InitialScan  bool
	Debounce     time.Duration
}

// StorageConfig holds blob storage configuration
type StorageConfig struct {
	Root string
}

// QueueConfig holds async worker configuration
type QueueConfig struct {
	Workers        int
	Size           int
	ProcessTimeout time.Duration
	StaleTimeout   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "por"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxOCRPages:   getEnvAsInt("OCR_MAX_PAGES", 2),
		},
		Scan: ScanConfig{
			Roots:        splitNonEmpty(getEnv("SCAN_ROOTS", "")),
			WatchEnabled: getEnv("SCAN_WATCH", "") == "1",
			InitialScan:  getEnv("SCAN_INITIAL", "") == "1",
			Debounce:     getEnvAsDuration("SCAN_DEBOUNCE", 500*time.Millisecond),
		},
		Storage: StorageConfig{
			Root: getEnv("STORAGE_ROOT", "./data/invoices"),
		},
		Queue: QueueConfig{
			Workers:        getEnvAsInt("QUEUE_WORKERS", 4),
			Size:           getEnvAsInt("QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", 3*time.Minute),
			StaleTimeout:   getEnvAsDuration("QUEUE_STALE_TIMEOUT", 5*time.Minute),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitNonEmpty(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if part := s[start:i]; part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	return out
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.OCR.MaxOCRPages <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_MAX_PAGES must be positive", ErrInvalidInput)
	}
	return nil
}
