package stations

import (
	"context"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/ports"
	"github.com/Vovarama1992/voxboard/internal/textutil"
)

type S4WAVtoText struct {
	stt ports.STTService
	log *logger.ZapLogger
}

func NewS4WAVtoText(stt ports.STTService, log *logger.ZapLogger) *S4WAVtoText {
	return &S4WAVtoText{stt: stt, log: log}
}

// Run never fails: a recognizer error or a blank result both come back as "".
func (s *S4WAVtoText) Run(ctx context.Context, wav []byte) string {
	if len(wav) <= wavHeaderSize {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "[S4][EMPTY] no samples, skipping recognition"})
		return ""
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S4][START]",
		Fields:  map[string]any{"wav_bytes": len(wav)},
	})

	txt, err := s.stt.Recognize(ctx, wav)
	if err != nil {
		s.log.Log(logger.LogEntry{Level: "error", Message: "[S4][ERR] recognition failed", Error: err})
		return ""
	}

	txt = strings.TrimSpace(txt)
	if txt == "" {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "[S4][EMPTY] recognizer returned no text"})
		return ""
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S4][OK]",
		Fields:  map[string]any{"transcript": textutil.Trim(txt, 180)},
	})
	return txt
}
