package delivery

import (
	"encoding/json"
	"net/http"

	"github.com/Vovarama1992/voxboard/internal/models"
)

const (
	msgNoAudio          = "No audio file provided"
	msgConversionFailed = "Audio conversion failed"
	msgServerError      = "Server error"
)

// OutcomeResponse maps an outcome to the status code and JSON body the
// whiteboard front-end expects.
func OutcomeResponse(out models.Outcome) (int, map[string]any) {
	switch out.Kind {
	case models.OutcomeCommand:
		return http.StatusOK, map[string]any{
			"action":     out.Action,
			"transcript": out.Transcript,
		}
	case models.OutcomeNoSpeech:
		return http.StatusOK, map[string]any{
			"action":     models.UnknownCommand,
			"transcript": "",
		}
	case models.OutcomeNoAudio:
		return http.StatusBadRequest, map[string]any{"error": msgNoAudio}
	case models.OutcomeConversionFailed:
		return http.StatusInternalServerError, map[string]any{"error": msgConversionFailed}
	default:
		details := "unknown error"
		if out.Err != nil {
			details = out.Err.Error()
		}
		return http.StatusInternalServerError, map[string]any{
			"error":   msgServerError,
			"details": details,
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
