package delivery

import (
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voice_agent/internal/ports"
	"github.com/dustin/go-humanize"
)

type UploadHandler struct {
	store    ports.UploadStore
	log      *logger.ZapLogger
	maxBytes int64
}

func NewUploadHandler(store ports.UploadStore, log *logger.ZapLogger, maxUploadBytes int64) *UploadHandler {
	return &UploadHandler{store: store, log: log, maxBytes: maxUploadBytes}
}

// POST /upload
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := parseUpload(w, r, h.maxBytes); err != nil {
		writeError(w, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "missing file: "+err.Error())
		return
	}
	defer file.Close()

	if err := checkFileSize(header, h.maxBytes); err != nil {
		writeError(w, err)
		return
	}

	contentType := header.Header.Get("Content-Type")

	stored, err := h.store.Save(r.Context(), header.Filename, file, contentType)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "failed to store upload " + header.Filename, Error: err})
		writeErrorMessage(w, http.StatusInternalServerError, "failed to store upload: "+err.Error())
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("stored upload %s (%s) at %s", stored.Name, humanize.Bytes(uint64(stored.Size)), stored.Location),
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"filename":     stored.Name,
		"content_type": contentType,
		"size_bytes":   stored.Size,
		"message":      "🎤 Recording uploaded successfully!",
		"icon":         "🎤",
	})
}
