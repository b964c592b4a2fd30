package stations

import (
	"fmt"
	"io"
	"os"

	"github.com/Vovarama1992/go-utils/logger"
)

type S1SaveUpload struct {
	log *logger.ZapLogger
}

func NewS1SaveUpload(log *logger.ZapLogger) *S1SaveUpload {
	return &S1SaveUpload{log: log}
}

// Run writes the upload to path. The file must not exist yet.
func (s *S1SaveUpload) Run(audio io.Reader, path string) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("[S1] create: %w", err)
	}

	n, err := io.Copy(f, audio)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("[S1] write: %w", err)
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S1][OK] audio saved",
		Fields:  map[string]any{"path": path, "bytes": n},
	})
	return n, nil
}
