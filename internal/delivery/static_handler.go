package delivery

import (
	"net/http"
	"path/filepath"
)

// StaticHandler serves the bundled browser frontend.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

func (h *StaticHandler) file(rel string) http.HandlerFunc {
	path := filepath.Join(h.dir, rel)
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}

// GET /
func (h *StaticHandler) Index() http.HandlerFunc { return h.file("index.html") }

// GET /logo/start
func (h *StaticHandler) StartLogo() http.HandlerFunc {
	return h.file(filepath.Join("logos", "start_recording.png"))
}

// GET /logo/microphone
func (h *StaticHandler) MicrophoneLogo() http.HandlerFunc {
	return h.file(filepath.Join("logos", "microphone.png"))
}

// GET /static/*
func (h *StaticHandler) Files() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.Dir(h.dir)))
}
