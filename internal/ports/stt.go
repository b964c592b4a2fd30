package ports

import "context"

// STTService turns a WAV recording into text. Implementations are built once
// at startup and shared by all requests.
type STTService interface {
	Recognize(ctx context.Context, wav []byte) (string, error)
	Close() error
}
