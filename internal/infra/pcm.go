package infra

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// BytesToFloat32 converts s16le PCM to the [-1, 1) floats whisper expects.
func BytesToFloat32(data []byte) ([]float32, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("data length must be even for 16-bit audio")
	}
	floats := make([]float32, len(data)/2)
	for i := range floats {
		sample := int16(data[i*2]) | int16(data[i*2+1])<<8
		floats[i] = float32(sample) / 32768.0
	}
	return floats, nil
}

// WAVData returns the payload of the "data" chunk of a RIFF/WAVE file.
func WAVData(wav []byte) ([]byte, error) {
	if len(wav) < 12 || !bytes.Equal(wav[0:4], []byte("RIFF")) || !bytes.Equal(wav[8:12], []byte("WAVE")) {
		return nil, fmt.Errorf("not a wav file")
	}

	off := 12
	for off+8 <= len(wav) {
		id := wav[off : off+4]
		size := int(binary.LittleEndian.Uint32(wav[off+4 : off+8]))
		body := off + 8

		if bytes.Equal(id, []byte("data")) {
			end := body + size
			if end > len(wav) {
				end = len(wav)
			}
			return wav[body:end], nil
		}

		// chunks are word aligned
		off = body + size + size%2
	}

	return nil, fmt.Errorf("wav has no data chunk")
}
