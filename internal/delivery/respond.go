package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/Vovarama1992/voice_agent/internal/ai"
	"github.com/Vovarama1992/voice_agent/internal/ports"
	"github.com/Vovarama1992/voice_agent/internal/speech"
)

// badRequestError marks errors caused by the caller's payload.
type badRequestError struct{ err error }

func (e *badRequestError) Error() string { return e.err.Error() }
func (e *badRequestError) Unwrap() error { return e.err }

func badRequest(format string, err error) error {
	return &badRequestError{err: fmt.Errorf(format+": %w", err)}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps service errors onto HTTP:
// provider non-success → same status and body, bad input → 400, everything else → 500.
func writeError(w http.ResponseWriter, err error) {
	var pe *ports.ProviderError
	var tooBig *http.MaxBytesError
	var bad *badRequestError

	switch {
	case errors.As(err, &pe):
		writeErrorMessage(w, pe.StatusCode, pe.Body)
	case errors.As(err, &tooBig):
		writeErrorMessage(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.As(err, &bad):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, speech.ErrAudioDownload):
		writeErrorMessage(w, http.StatusInternalServerError, speech.ErrAudioDownload.Error())
	case errors.Is(err, ai.ErrEmptyPrompt):
		writeErrorMessage(w, http.StatusBadRequest, err.Error())
	default:
		writeErrorMessage(w, http.StatusInternalServerError, err.Error())
	}
}

const (
	multipartMemory = 32 << 20
	// multipartOverhead leaves room for boundaries, part headers and form fields.
	multipartOverhead = 64 << 10
)

// parseUpload caps the request at maxBytes of file plus the multipart
// envelope and parses the form. The file itself is checked by checkFileSize.
func parseUpload(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	if maxBytes > 0 {
		limit := maxBytes + multipartOverhead
		if r.ContentLength > limit {
			return &http.MaxBytesError{Limit: maxBytes}
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return &http.MaxBytesError{Limit: maxBytes}
		}
		return badRequest("invalid multipart", err)
	}
	return nil
}

func checkFileSize(header *multipart.FileHeader, maxBytes int64) error {
	if maxBytes > 0 && header.Size > maxBytes {
		return &http.MaxBytesError{Limit: maxBytes}
	}
	return nil
}
