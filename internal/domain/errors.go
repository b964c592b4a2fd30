package domain

import "errors"

var (
	ErrNoAudio    = errors.New("no audio file provided")
	ErrConversion = errors.New("audio conversion failed")
)
