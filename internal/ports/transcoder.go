package ports

import "context"

// Transcoder decodes an audio file of the given container format into
// signed 16-bit little-endian PCM.
type Transcoder interface {
	Decode(ctx context.Context, inputPath, format string) ([]byte, error)
}
