package ports

import "github.com/Vovarama1992/voxboard/internal/models"

type ScratchStore interface {
	// Allocate reserves paths under a fresh identifier. Nothing is written.
	Allocate(format string) models.ScratchFiles
	// Cleanup removes both artifacts. Missing files are not an error.
	Cleanup(files models.ScratchFiles) error
}
