package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/models"
	"github.com/Vovarama1992/voxboard/internal/ports"
)

type CommandHandler struct {
	svc       ports.CommandProcessor
	maxUpload int64
	log       *logger.ZapLogger
}

func NewCommandHandler(svc ports.CommandProcessor, maxUpload int64, log *logger.ZapLogger) *CommandHandler {
	return &CommandHandler{
		svc:       svc,
		maxUpload: maxUpload,
		log:       log,
	}
}

// POST /process-command
func (h *CommandHandler) ProcessCommand(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile("audio")
	if err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "no 'audio' file found in request",
			Error:   err,
		})
		status, body := OutcomeResponse(models.Outcome{Kind: models.OutcomeNoAudio})
		writeJSON(w, status, body)
		return
	}
	defer file.Close()
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "audio received",
		Fields: map[string]any{
			"filename": header.Filename,
			"size":     header.Size,
		},
	})

	out := h.svc.Process(r.Context(), file)

	status, body := OutcomeResponse(out)
	writeJSON(w, status, body)
}

// GET /commands
func (h *CommandHandler) ListCommands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"commands": h.svc.Commands(),
	})
}

// GET /
func (h *CommandHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "VoxBoard backend is up and running!",
	})
}
