package delivery

import (
	"errors"
	"net/http"
	"testing"

	"github.com/Vovarama1992/voxboard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOutcomeResponse(t *testing.T) {
	tests := []struct {
		name       string
		out        models.Outcome
		wantStatus int
		wantBody   map[string]any
	}{
		{
			name:       "command",
			out:        models.Outcome{Kind: models.OutcomeCommand, Action: "undo", Transcript: "Undo."},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"action": "undo", "transcript": "Undo."},
		},
		{
			name:       "no speech",
			out:        models.Outcome{Kind: models.OutcomeNoSpeech},
			wantStatus: http.StatusOK,
			wantBody:   map[string]any{"action": "unknown_command", "transcript": ""},
		},
		{
			name:       "no audio",
			out:        models.Outcome{Kind: models.OutcomeNoAudio},
			wantStatus: http.StatusBadRequest,
			wantBody:   map[string]any{"error": "No audio file provided"},
		},
		{
			name:       "conversion failed hides cause",
			out:        models.Outcome{Kind: models.OutcomeConversionFailed, Err: errors.New("ffmpeg exit 1")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "Audio conversion failed"},
		},
		{
			name:       "server error exposes details",
			out:        models.Outcome{Kind: models.OutcomeServerError, Err: errors.New("disk full")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   map[string]any{"error": "Server error", "details": "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := OutcomeResponse(tt.out)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
