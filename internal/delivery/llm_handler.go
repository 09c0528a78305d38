package delivery

import (
	"encoding/json"
	"net/http"
)

type LLMHandler struct {
	svc LLMService
}

func NewLLMHandler(svc LLMService) *LLMHandler {
	return &LLMHandler{svc: svc}
}

// POST /llm/query
func (h *LLMHandler) Query(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	reply, err := h.svc.Query(r.Context(), req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}
