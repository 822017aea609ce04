package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	Addr              string
	JwtSecret         string
	JwtSessionHours   int
	SpreadsheetID     string
	SummarySheet      string
	CalendarSheet     string
	OffSheet          string
	SummaryGID        string
	CalendarGID       string
	OffGID            string
	OffSheetGID       int64
	SheetYear         int
	AdminEmailsRaw    string
	AllowedOriginsRaw string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:            getEnv("APP_ENV", "local"),
		Addr:              getEnv("APP_ADDR", ":8080"),
		JwtSecret:         os.Getenv("JWT_SECRET"),
		JwtSessionHours:   getEnvInt("JWT_SESSION_HOURS", 12),
		SpreadsheetID:     os.Getenv("GOOGLE_SHEET_ID"),
		SummarySheet:      getEnv("SHEET_SUMMARY", "연차계산"),
		CalendarSheet:     getEnv("SHEET_CALENDAR", "2026년"),
		OffSheet:          getEnv("SHEET_OFF", "2026년_오프"),
		SummaryGID:        getEnv("SHEET_SUMMARY_GID", "0"),
		CalendarGID:       getEnv("SHEET_CALENDAR_GID", "191374435"),
		OffGID:            getEnv("SHEET_OFF_GID", "1135506325"),
		OffSheetGID:       getEnvInt64("SHEET_OFF_GID", 1135506325),
		SheetYear:         getEnvInt("SHEET_YEAR", 2026),
		AdminEmailsRaw:    os.Getenv("ADMIN_EMAILS"),
		AllowedOriginsRaw: getEnv("ALLOWED_ORIGINS", ""),
	}

	missing := []string{}
	if cfg.JwtSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.SpreadsheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}

	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

// AdminEmails returns the lowercase admin allowlist. Only these Google
// accounts get write access to the sheet through the app.
func (c Config) AdminEmails() []string {
	emails := []string{}
	for _, email := range strings.Split(c.AdminEmailsRaw, ",") {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

// CSVGIDs maps sheet names to their public CSV export GIDs.
func (c Config) CSVGIDs() map[string]string {
	return map[string]string{
		c.SummarySheet:  c.SummaryGID,
		c.CalendarSheet: c.CalendarGID,
		c.OffSheet:      c.OffGID,
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
