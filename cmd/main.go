package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/voice_agent/internal/ai"
	"github.com/Vovarama1992/voice_agent/internal/config"
	"github.com/Vovarama1992/voice_agent/internal/delivery"
	"github.com/Vovarama1992/voice_agent/internal/domain"
	"github.com/Vovarama1992/voice_agent/internal/error_notificator"
	"github.com/Vovarama1992/voice_agent/internal/infra"
	"github.com/Vovarama1992/voice_agent/internal/ports"
	"github.com/Vovarama1992/voice_agent/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

const serviceName = "voice_agent"

func main() {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	cfg := config.Load()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	info := func(msg string) {
		zl.Log(logger.LogEntry{Level: "info", Message: msg, Service: serviceName})
	}

	info(fmt.Sprintf("Loaded Murf API Key: %t", cfg.MurfAPIKey != ""))
	info(fmt.Sprintf("Loaded AssemblyAI Key: %t", cfg.AssemblyAIAPIKey != ""))
	info(fmt.Sprintf("Loaded Gemini API Key: %t", cfg.GeminiAPIKey != ""))
	info(fmt.Sprintf("Loaded OpenAI API Key: %t", cfg.OpenAIAPIKey != ""))

	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var errInfra error_notificator.Notificator = error_notificator.NopInfra{}
	if cfg.TelegramBotToken != "" && len(cfg.TelegramAdminChatIDs) > 0 {
		tg, err := error_notificator.NewTelegramInfraFromToken(cfg.TelegramBotToken, cfg.TelegramAdminChatIDs)
		if err != nil {
			log.Fatalf("failed to init telegram notifier: %v", err)
		}
		errInfra = tg
	}
	errService := error_notificator.NewService(errInfra, zl)

	// =========================================================================
	// UPLOAD STORAGE
	// =========================================================================

	var uploadStore ports.UploadStore
	switch cfg.UploadBackend {
	case config.UploadS3:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		s3Client, err := infra.NewS3Client(ctx, cfg.S3)
		cancel()
		if err != nil {
			log.Fatalf("failed to init s3: %v", err)
		}
		uploadStore = domain.NewS3UploadStore(s3Client)
	case config.UploadLocal:
		fs, err := infra.NewFileStore(cfg.UploadDir)
		if err != nil {
			log.Fatalf("failed to init upload dir: %v", err)
		}
		uploadStore = fs
	default:
		log.Fatalf("unknown UPLOAD_BACKEND %q", cfg.UploadBackend)
	}

	// =========================================================================
	// CLIENTS (STT / TTS / LLM)
	// =========================================================================

	openAIClient := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, httpClient)
	ttsClient := speech.NewMurfClient(cfg.MurfAPIKey, cfg.MurfBaseURL, httpClient)

	var sttClient speech.STTClient
	switch cfg.STTProvider {
	case config.STTWhisper:
		sttClient = openAIClient
	case config.STTAssemblyAI:
		sttClient = speech.NewAssemblyAIClient(cfg.AssemblyAIAPIKey, cfg.AssemblyAIBaseURL, cfg.PollInterval, httpClient)
	default:
		log.Fatalf("unknown STT_PROVIDER %q", cfg.STTProvider)
	}

	var llmClient ai.Completer
	switch cfg.LLMProvider {
	case config.LLMOpenAI:
		llmClient = openAIClient
	case config.LLMGemini:
		llmClient = ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, httpClient)
	default:
		log.Fatalf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	speechService := speech.NewService(
		sttClient, // AssemblyAI / Whisper
		ttsClient, // Murf
		errService,
		zl,
	)

	aiService := ai.NewAiService(llmClient, cfg.LLMProvider, errService, zl)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(
		r,
		delivery.NewSpeechHandler(speechService, zl, cfg.MaxUploadBytes),
		delivery.NewUploadHandler(uploadStore, zl, cfg.MaxUploadBytes),
		delivery.NewLLMHandler(aiService),
		delivery.NewStaticHandler(cfg.StaticDir),
	)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	info("listening at " + addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
