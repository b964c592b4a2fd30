package infra

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/voxboard/internal/models"
	"github.com/Vovarama1992/voxboard/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/multierr"
)

// ScratchDir is the local directory shared by all requests. Every request
// gets its own <uuid>.<format> and <uuid>.wav pair.
type ScratchDir struct {
	dir string
}

func NewScratchDir(dir string) (ports.ScratchStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &ScratchDir{dir: dir}, nil
}

func (s *ScratchDir) Allocate(format string) models.ScratchFiles {
	id := uuid.New().String()
	return models.ScratchFiles{
		ID:        id,
		InputPath: filepath.Join(s.dir, id+"."+format),
		WavPath:   filepath.Join(s.dir, id+".wav"),
	}
}

func (s *ScratchDir) Cleanup(files models.ScratchFiles) error {
	var err error
	for _, p := range []string{files.InputPath, files.WavPath} {
		if p == "" {
			continue
		}
		if rmErr := os.Remove(p); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = multierr.Append(err, fmt.Errorf("remove %s: %w", p, rmErr))
		}
	}
	return err
}
