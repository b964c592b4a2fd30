package ports

import (
	"context"
	"io"

	"github.com/Vovarama1992/voxboard/internal/models"
)

type CommandProcessor interface {
	Process(ctx context.Context, audio io.Reader) models.Outcome
	Commands() []models.Command
}
