package domain

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/domain/stations"
	"github.com/Vovarama1992/voxboard/internal/models"
	"github.com/Vovarama1992/voxboard/internal/ports"
	"github.com/Vovarama1992/voxboard/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

// CommandService runs one recording through the stations:
// S1 save -> S2 decode -> S3 wav -> S4 recognize -> S5 map.
type CommandService struct {
	scratch ports.ScratchStore
	format  string

	s1 *stations.S1SaveUpload
	s2 ports.Transcoder
	s3 *stations.S3PCMtoWAV
	s4 *stations.S4WAVtoText
	s5 *stations.S5MapCommand

	log *logger.ZapLogger
}

func NewCommandService(
	scratch ports.ScratchStore,
	format string,
	s1 *stations.S1SaveUpload,
	s2 ports.Transcoder,
	s3 *stations.S3PCMtoWAV,
	s4 *stations.S4WAVtoText,
	s5 *stations.S5MapCommand,
	log *logger.ZapLogger,
) *CommandService {
	return &CommandService{
		scratch: scratch,
		format:  format,
		s1:      s1,
		s2:      s2,
		s3:      s3,
		s4:      s4,
		s5:      s5,
		log:     log,
	}
}

func (m *CommandService) Commands() []models.Command {
	return m.s5.Table().Entries()
}

// ========================================================================
// PROCESS
// ========================================================================
// Process is not cancellable: a client that hangs up does not kill ffmpeg or
// the recognizer halfway through.
func (m *CommandService) Process(ctx context.Context, audio io.Reader) (out models.Outcome) {
	start := time.Now()
	ctx = context.WithoutCancel(ctx)

	if audio == nil {
		out = models.Outcome{Kind: models.OutcomeNoAudio, Action: models.UnknownCommand, Err: ErrNoAudio}
		m.record(out, start)
		return out
	}

	files := m.scratch.Allocate(m.format)
	out.ID = files.ID

	defer func() {
		m.cleanup(files)
		m.record(out, start)
	}()

	defer func() {
		if r := recover(); r != nil {
			out = m.serverError(files.ID, "panic", fmt.Errorf("%v", r))
		}
	}()

	return m.run(ctx, audio, files)
}

func (m *CommandService) run(ctx context.Context, audio io.Reader, files models.ScratchFiles) models.Outcome {
	// S1
	stop := stageTimer("save")
	_, err := m.s1.Run(audio, files.InputPath)
	stop()
	if err != nil {
		return m.serverError(files.ID, "S1", err)
	}

	// S2
	stop = stageTimer("decode")
	pcm, err := m.s2.Decode(ctx, files.InputPath, m.format)
	stop()
	if err != nil {
		m.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "[S2][FAIL] conversion failed",
			Error:   err,
			Fields:  map[string]any{"id": files.ID},
		})
		return models.Outcome{
			ID:     files.ID,
			Kind:   models.OutcomeConversionFailed,
			Action: models.UnknownCommand,
			Err:    fmt.Errorf("%w: %v", ErrConversion, err),
		}
	}

	// S3
	stop = stageTimer("wav")
	wav := m.s3.Run(pcm)
	err = os.WriteFile(files.WavPath, wav, 0644)
	stop()
	if err != nil {
		return m.serverError(files.ID, "S3", fmt.Errorf("write wav: %w", err))
	}

	// S4 reads the artifact back, as an external recognizer would
	wav, err = os.ReadFile(files.WavPath)
	if err != nil {
		return m.serverError(files.ID, "S4", fmt.Errorf("read wav: %w", err))
	}

	stop = stageTimer("recognize")
	transcript := m.s4.Run(ctx, wav)
	stop()
	if transcript == "" {
		return models.Outcome{
			ID:     files.ID,
			Kind:   models.OutcomeNoSpeech,
			Action: models.UnknownCommand,
		}
	}

	// S5
	action := m.s5.Run(transcript)

	return models.Outcome{
		ID:         files.ID,
		Kind:       models.OutcomeCommand,
		Action:     action,
		Transcript: transcript,
	}
}

func (m *CommandService) serverError(id, stage string, err error) models.Outcome {
	m.log.Log(logger.LogEntry{
		Level:   "error",
		Message: "error processing command",
		Error:   err,
		Fields:  map[string]any{"id": id, "stage": stage},
	})
	return models.Outcome{
		ID:     id,
		Kind:   models.OutcomeServerError,
		Action: models.UnknownCommand,
		Err:    err,
	}
}

func (m *CommandService) cleanup(files models.ScratchFiles) {
	if err := m.scratch.Cleanup(files); err != nil {
		telemetry.ScratchCleanupFailures.Inc()
		m.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "scratch cleanup failed",
			Error:   err,
			Fields:  map[string]any{"id": files.ID},
		})
		return
	}

	m.log.Log(logger.LogEntry{
		Level:   "debug",
		Message: "scratch files removed",
		Fields:  map[string]any{"id": files.ID},
	})
}

func (m *CommandService) record(out models.Outcome, start time.Time) {
	action := out.Action
	if out.Kind != models.OutcomeCommand {
		action = "none"
	}
	telemetry.CommandsTotal.WithLabelValues(string(out.Kind), action).Inc()

	m.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[DONE]",
		Fields: map[string]any{
			"id":     out.ID,
			"kind":   string(out.Kind),
			"action": out.Action,
			"dur":    time.Since(start).String(),
		},
	})
}

func stageTimer(stage string) func() {
	t := prometheus.NewTimer(telemetry.StageDuration.WithLabelValues(stage))
	return func() { t.ObserveDuration() }
}
