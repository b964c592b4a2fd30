package stations

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/textutil"
)

const maxS2ErrPreview = 180

// S2DecodePCM shells out to ffmpeg: any container in, mono s16le PCM out,
// with a fixed gain boost for quiet microphones.
type S2DecodePCM struct {
	ffmpegPath string
	sampleRate int
	channels   int
	gainDB     float64
	log        *logger.ZapLogger
}

func NewS2DecodePCM(ffmpegPath string, sampleRate, channels int, gainDB float64, log *logger.ZapLogger) *S2DecodePCM {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &S2DecodePCM{
		ffmpegPath: ffmpegPath,
		sampleRate: sampleRate,
		channels:   channels,
		gainDB:     gainDB,
		log:        log,
	}
}

func (s *S2DecodePCM) args(inputPath, format string) []string {
	args := []string{"-nostdin", "-loglevel", "error"}
	if format != "" {
		args = append(args, "-f", format)
	}
	return append(args,
		"-i", inputPath,
		"-vn",
		"-ac", strconv.Itoa(s.channels),
		"-ar", strconv.Itoa(s.sampleRate),
		"-af", "volume="+strconv.FormatFloat(s.gainDB, 'f', -1, 64)+"dB",
		"-f", "s16le",
		"pipe:1",
	)
}

func (s *S2DecodePCM) Decode(ctx context.Context, inputPath, format string) ([]byte, error) {
	start := time.Now()
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S2][START]",
		Fields:  map[string]any{"input": inputPath, "format": format},
	})

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.ffmpegPath, s.args(inputPath, format)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("[S2] ffmpeg: %w: %s", err, textutil.Trim(stderr.String(), maxS2ErrPreview))
	}

	pcm := stdout.Bytes()
	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S2][OK]",
		Fields: map[string]any{
			"bytes":      len(pcm),
			"approx_sec": float64(len(pcm)) / 2 / float64(s.sampleRate*s.channels),
			"dur":        time.Since(start).String(),
		},
	})
	return pcm, nil
}
