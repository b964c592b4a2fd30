package infra

import (
	"fmt"
	"net/http"

	"github.com/Vovarama1992/voxboard/internal/config"
	"github.com/Vovarama1992/voxboard/internal/ports"
)

// NewSTTService builds the recognizer selected by stt.backend. The caller owns
// the returned handle and must Close it at shutdown.
func NewSTTService(cfg config.STTConfig) (ports.STTService, error) {
	switch cfg.Backend {
	case config.BackendHTTP:
		return NewWhisperHTTPService(cfg, &http.Client{}), nil
	case config.BackendWhisper:
		return newWhisperCppService(cfg)
	default:
		return nil, fmt.Errorf("unknown stt backend %q", cfg.Backend)
	}
}

// WhisperCppSupported reports whether this binary was built with -tags whisper.
func WhisperCppSupported() bool { return whisperCppSupported }
