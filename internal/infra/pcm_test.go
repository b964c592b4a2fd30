package infra

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToFloat32(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    []float32
		wantErr bool
	}{
		{name: "even length", input: []byte{0x00, 0x00, 0x00, 0x80}, want: []float32{0, -1}},
		{name: "odd length", input: []byte{0x00, 0x00, 0x01}, wantErr: true},
		{name: "empty", input: nil, want: []float32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BytesToFloat32(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func wavWithChunks(chunks ...[]byte) []byte {
	body := []byte("WAVE")
	for _, c := range chunks {
		body = append(body, c...)
	}
	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	return append(out, body...)
}

func chunk(id string, payload []byte) []byte {
	out := []byte(id)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	if len(payload)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

func TestWAVData(t *testing.T) {
	fmtChunk := chunk("fmt ", make([]byte, 16))

	data, err := WAVData(wavWithChunks(fmtChunk, chunk("data", []byte{1, 2, 3, 4})))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)

	// odd-sized LIST chunk before data is padded
	data, err = WAVData(wavWithChunks(fmtChunk, chunk("LIST", []byte{9, 9, 9}), chunk("data", []byte{5, 6})))
	require.NoError(t, err)
	assert.Equal(t, []byte{5, 6}, data)

	_, err = WAVData([]byte("not a wav at all"))
	assert.Error(t, err)

	_, err = WAVData(wavWithChunks(fmtChunk))
	assert.Error(t, err)
}
