package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hSpeech *SpeechHandler,
	hUpload *UploadHandler,
	hLLM *LLMHandler,
	hStatic *StaticHandler,
) {
	r.Group(func(pr chi.Router) {
		pr.Use(httputil.RecoverMiddleware)

		// --- фронтенд ---
		pr.Get("/", hStatic.Index())
		pr.Get("/logo/start", hStatic.StartLogo())
		pr.Get("/logo/microphone", hStatic.MicrophoneLogo())
		pr.Handle("/static/*", hStatic.Files())

		// --- речь ---
		pr.Post("/generate", hSpeech.Generate)
		pr.Post("/upload", hUpload.Upload)
		pr.Post("/transcribe/file", hSpeech.TranscribeFile)
		pr.Post("/voice-reply", hSpeech.VoiceReply)
		pr.Post("/murf-tts", hSpeech.VoiceReply)
		pr.Post("/murf-tts-json", hSpeech.SpeakJSON)

		// --- llm ---
		pr.Post("/llm/query", hLLM.Query)

		pr.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("pong"))
		})
	})
}
