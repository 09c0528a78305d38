package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	STTAssemblyAI = "assemblyai"
	STTWhisper    = "whisper"

	LLMGemini = "gemini"
	LLMOpenAI = "openai"

	UploadLocal = "local"
	UploadS3    = "s3"
)

// Config holds everything read from the environment at startup.
// Provider keys may be empty: only the dependent endpoints degrade.
type Config struct {
	Port string

	MurfAPIKey       string
	AssemblyAIAPIKey string
	GeminiAPIKey     string
	OpenAIAPIKey     string

	STTProvider string
	LLMProvider string

	MurfBaseURL       string
	AssemblyAIBaseURL string
	GeminiBaseURL     string
	GeminiModel       string
	OpenAIBaseURL     string
	OpenAIModel       string

	ProviderTimeout time.Duration
	PollInterval    time.Duration

	StaticDir      string
	UploadDir      string
	UploadBackend  string
	MaxUploadBytes int64

	S3 S3Config

	TelegramBotToken     string
	TelegramAdminChatIDs []int64
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Secure    bool
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		MurfAPIKey:       os.Getenv("MURF_API_KEY"),
		AssemblyAIAPIKey: os.Getenv("ASSEMBLYAI_API_KEY"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),

		STTProvider: strings.ToLower(getEnv("STT_PROVIDER", STTAssemblyAI)),
		LLMProvider: strings.ToLower(getEnv("LLM_PROVIDER", LLMGemini)),

		MurfBaseURL:       getEnv("MURF_BASE_URL", "https://api.murf.ai"),
		AssemblyAIBaseURL: getEnv("ASSEMBLYAI_BASE_URL", "https://api.assemblyai.com"),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIBaseURL:     os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		ProviderTimeout: getEnvDuration("PROVIDER_TIMEOUT", 90*time.Second),
		PollInterval:    getEnvDuration("ASSEMBLYAI_POLL_INTERVAL", 3*time.Second),

		StaticDir:      getEnv("STATIC_DIR", "static"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		UploadBackend:  strings.ToLower(getEnv("UPLOAD_BACKEND", UploadLocal)),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 25<<20),

		S3: S3Config{
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Bucket:    os.Getenv("S3_BUCKET"),
			Region:    os.Getenv("S3_REGION"),
			Secure:    getEnvBool("S3_SECURE", true),
		},

		TelegramBotToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramAdminChatIDs: getEnvInt64List("TELEGRAM_ADMIN_CHAT_IDS"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt64(key string, def int64) int64 {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}

// getEnvInt64List parses "1,2, 3"; malformed entries are skipped.
func getEnvInt64List(key string) []int64 {
	var out []int64
	for _, part := range strings.Split(os.Getenv(key), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			out = append(out, id)
		}
	}
	return out
}
