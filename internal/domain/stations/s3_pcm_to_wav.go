package stations

import (
	"bytes"
	"encoding/binary"
)

const (
	wavHeaderSize = 44
	bitsPerSample = 16
)

type S3PCMtoWAV struct {
	sampleRate int
	channels   int
}

func NewS3PCMtoWAV(sampleRate, channels int) *S3PCMtoWAV {
	return &S3PCMtoWAV{sampleRate: sampleRate, channels: channels}
}

// Run prepends a canonical 44-byte PCM WAVE header.
func (s *S3PCMtoWAV) Run(pcm []byte) []byte {
	const bytesPerSample = bitsPerSample / 8

	dataSize := len(pcm)
	byteRate := s.sampleRate * s.channels * bytesPerSample
	blockAlign := s.channels * bytesPerSample

	buf := bytes.NewBuffer(make([]byte, 0, wavHeaderSize+dataSize))

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint16(s.channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(s.sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	_, _ = buf.Write(pcm)

	return buf.Bytes()
}
