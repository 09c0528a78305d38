package delivery

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_agent/internal/speech"
)

type SpeechHandler struct {
	svc      SpeechService
	log      *logger.ZapLogger
	maxBytes int64
}

func NewSpeechHandler(svc SpeechService, log *logger.ZapLogger, maxUploadBytes int64) *SpeechHandler {
	return &SpeechHandler{svc: svc, log: log, maxBytes: maxUploadBytes}
}

type ttsRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

func decodeTTSRequest(r *http.Request) (ttsRequest, error) {
	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	if req.Voice == "" {
		req.Voice = speech.DefaultStyle
	}
	return req, nil
}

// POST /generate
func (h *SpeechHandler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTTSRequest(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	audioURL, err := h.svc.Generate(r.Context(), req.Text, req.Voice)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"audio_url": audioURL})
}

// POST /transcribe/file
func (h *SpeechHandler) TranscribeFile(w http.ResponseWriter, r *http.Request) {
	audio, filename, err := h.readAudio(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	text, err := h.svc.Transcribe(r.Context(), audio, filename)
	if err != nil {
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"transcription": text,
		"status":        "🔊 Transcription complete!",
		"icon":          "🔊",
	})
}

// POST /voice-reply, POST /murf-tts
func (h *SpeechHandler) VoiceReply(w http.ResponseWriter, r *http.Request) {
	audio, filename, err := h.readAudio(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	voice := r.FormValue("voice")
	if voice == "" {
		voice = speech.DefaultStyle
	}

	out, err := h.svc.VoiceReply(r.Context(), audio, filename, voice)
	if err != nil {
		writeError(w, err)
		return
	}

	h.stream(w, out)
}

// POST /murf-tts-json
func (h *SpeechHandler) SpeakJSON(w http.ResponseWriter, r *http.Request) {
	req, err := decodeTTSRequest(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	out, err := h.svc.Speak(r.Context(), req.Text, req.Voice)
	if err != nil {
		writeError(w, err)
		return
	}

	h.stream(w, out)
}

// readAudio reads the "file" part of a multipart upload fully into memory.
func (h *SpeechHandler) readAudio(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	if err := parseUpload(w, r, h.maxBytes); err != nil {
		return nil, "", err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", badRequest("missing file", err)
	}
	defer file.Close()

	if err := checkFileSize(header, h.maxBytes); err != nil {
		return nil, "", err
	}

	audio, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	return audio, header.Filename, nil
}

func (h *SpeechHandler) stream(w http.ResponseWriter, audio *speech.Audio) {
	defer audio.Body.Close()

	w.Header().Set("Content-Type", audio.ContentType)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, audio.Body); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "audio stream interrupted", Error: err})
	}
}
