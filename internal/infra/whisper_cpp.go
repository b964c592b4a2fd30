//go:build whisper

package infra

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Vovarama1992/voxboard/internal/config"
	"github.com/Vovarama1992/voxboard/internal/ports"
	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
)

const whisperCppSupported = true

// WhisperCppService runs a whisper.cpp model inside the process. The model is
// loaded once; every call gets its own context.
type WhisperCppService struct {
	model    whisper.Model
	language string

	// ggml whisper is not thread safe
	inferenceMu sync.Mutex
}

func newWhisperCppService(cfg config.STTConfig) (ports.STTService, error) {
	model, err := whisper.New(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("load whisper model %s: %w", cfg.ModelPath, err)
	}
	return &WhisperCppService{model: model, language: cfg.Language}, nil
}

func (s *WhisperCppService) Recognize(ctx context.Context, wav []byte) (string, error) {
	pcm, err := WAVData(wav)
	if err != nil {
		return "", err
	}

	// cpu bound, done outside the lock
	samples, err := BytesToFloat32(pcm)
	if err != nil {
		return "", fmt.Errorf("audio conversion: %w", err)
	}

	wctx, err := s.model.NewContext()
	if err != nil {
		return "", fmt.Errorf("whisper context: %w", err)
	}

	lang := s.language
	if lang == "" {
		lang = "auto"
	}
	if err := wctx.SetLanguage(lang); err != nil {
		return "", fmt.Errorf("whisper language %q: %w", lang, err)
	}
	wctx.SetTranslate(false)

	var result strings.Builder
	segmentCallback := func(segment whisper.Segment) {
		result.WriteString(segment.Text)
	}

	s.inferenceMu.Lock()
	err = wctx.Process(samples, nil, segmentCallback, nil)
	s.inferenceMu.Unlock()

	if err != nil {
		return "", fmt.Errorf("whisper process: %w", err)
	}

	text := strings.TrimSpace(result.String())
	if text == "[BLANK_AUDIO]" || text == "BLANK_AUDIO" {
		return "", nil
	}
	return text, nil
}

func (s *WhisperCppService) Close() error {
	return s.model.Close()
}
