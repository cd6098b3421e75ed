package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Inference service (OpenAI-compatible; Groq works out of the box).
	OpenAIKey          string
	OpenAIBaseURL      string
	ChatModel          string
	TranscriptionModel string
	RequestTimeout     time.Duration
	MaxRetries         int

	// CRM flat store.
	CRMDataPath string

	// Log sinks.
	GoogleCredentialsFile string
	SheetID               string
	CRMSheetID            string
	SheetRange            string
	MirrorWorkbookPath    string
	CRMMirrorWorkbookPath string

	// Optional S3 archive for uploaded audio.
	S3Bucket string
	S3Region string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		OpenAIKey:             getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:         getEnv("OPENAI_BASE_URL", "https://api.groq.com/openai/v1"),
		ChatModel:             getEnv("CHAT_MODEL", "llama-3.1-8b-instant"),
		TranscriptionModel:    getEnv("TRANSCRIPTION_MODEL", "whisper-large-v3"),
		RequestTimeout:        getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		MaxRetries:            getEnvInt("MAX_RETRIES", 3),
		CRMDataPath:           getEnv("CRM_DATA_PATH", "crm_data.xlsx"),
		GoogleCredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", ""),
		SheetID:               getEnv("SHEET_ID", ""),
		CRMSheetID:            getEnv("CRM_SHEET_ID", ""),
		SheetRange:            getEnv("SHEET_RANGE", "Sheet1!A1"),
		MirrorWorkbookPath:    getEnv("MIRROR_WORKBOOK_PATH", ""),
		CRMMirrorWorkbookPath: getEnv("CRM_MIRROR_WORKBOOK_PATH", ""),
		S3Bucket:              getEnv("S3_BUCKET", ""),
		S3Region:              getEnv("S3_REGION", "us-east-1"),
	}

	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
