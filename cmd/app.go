package main

import (
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/config"
	"github.com/Vovarama1992/voxboard/internal/domain"
	"github.com/Vovarama1992/voxboard/internal/domain/commands"
	"github.com/Vovarama1992/voxboard/internal/domain/stations"
	"github.com/Vovarama1992/voxboard/internal/infra"
	"github.com/Vovarama1992/voxboard/internal/ports"
)

// app holds everything one process needs. close releases the recognizer and
// flushes the logger.
type app struct {
	cfg     *config.Config
	log     *logger.ZapLogger
	stt     ports.STTService
	service *domain.CommandService

	closeLog func()
}

func loadTable(cfg *config.Config) (*commands.Table, error) {
	if cfg.Commands.File == "" {
		return commands.Default(), nil
	}

	entries, err := infra.LoadCommandsFile(cfg.Commands.File)
	if err != nil {
		return nil, err
	}
	return commands.New(entries)
}

// buildApp wires config -> logger -> recognizer -> stations -> service.
// format overrides audio.source_format when non-empty.
func buildApp(format string) (*app, error) {

	// CONFIG
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = cfg.Audio.SourceFormat
	}

	// LOGGER
	zl, closeLog, err := infra.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	// COMMAND TABLE
	table, err := loadTable(cfg)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("command table: %w", err)
	}

	// SCRATCH
	scratch, err := infra.NewScratchDir(cfg.Scratch.Dir)
	if err != nil {
		closeLog()
		return nil, err
	}

	// STT
	stt, err := infra.NewSTTService(cfg.STT)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("stt: %w", err)
	}

	// STATIONS
	s1 := stations.NewS1SaveUpload(zl)
	s2 := stations.NewS2DecodePCM(cfg.Audio.FFmpegPath, cfg.Audio.SampleRate, cfg.Audio.Channels, cfg.Audio.GainDB, zl)
	s3 := stations.NewS3PCMtoWAV(cfg.Audio.SampleRate, cfg.Audio.Channels)
	s4 := stations.NewS4WAVtoText(stt, zl)
	s5 := stations.NewS5MapCommand(table, zl)

	// COMMAND SERVICE (оркестратор)
	service := domain.NewCommandService(scratch, format, s1, s2, s3, s4, s5, zl)

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "app ready",
		Fields: map[string]any{
			"stt_backend": cfg.STT.Backend,
			"commands":    table.Len(),
			"scratch":     cfg.Scratch.Dir,
			"format":      format,
		},
	})

	return &app{
		cfg:      cfg,
		log:      zl,
		stt:      stt,
		service:  service,
		closeLog: closeLog,
	}, nil
}

func (a *app) close() {
	if err := a.stt.Close(); err != nil {
		a.log.Log(logger.LogEntry{Level: "warn", Message: "stt close failed", Error: err})
	}
	a.closeLog()
}
