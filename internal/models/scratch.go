package models

// ScratchFiles are the two ephemeral artifacts owned by one request.
type ScratchFiles struct {
	ID        string
	InputPath string
	WavPath   string
}
