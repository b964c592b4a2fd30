//go:build !whisper

package infra

import (
	"fmt"

	"github.com/Vovarama1992/voxboard/internal/config"
	"github.com/Vovarama1992/voxboard/internal/ports"
)

const whisperCppSupported = false

func newWhisperCppService(cfg config.STTConfig) (ports.STTService, error) {
	return nil, fmt.Errorf("whisper backend not compiled in (build with: go build -tags whisper), model %s", cfg.ModelPath)
}
