package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/askdoc/internal/document"
)

// handleQuestions returns the parsed document. With ?render=html each
// question additionally carries its description rendered to HTML.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	text, err := s.store.Read()
	if err != nil {
		jsonError(w, "failed to read document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	doc := document.Parse(text)
	if r.URL.Query().Get("render") == "html" {
		if err := doc.RenderHTML(); err != nil {
			jsonError(w, "failed to render document: "+err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc)
}

// handleSaveAnswers writes the posted answers into their slots and persists
// the result. The payload maps answer keys ("<questionId>_<slotIndex>") to
// answer text; slots without a key, or with blank text, are cleared.
func (s *Server) handleSaveAnswers(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)

	var answers map[string]string
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		jsonError(w, "invalid answers payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	text, err := s.store.Read()
	if err != nil {
		jsonError(w, "failed to read document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	updated := document.Rewrite(text, answers)
	if err := s.store.Write(updated); err != nil {
		jsonError(w, "failed to write document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "saved",
		"answers": len(answers),
	})
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
