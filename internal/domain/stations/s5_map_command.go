package stations

import (
	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/voxboard/internal/domain/commands"
	"github.com/Vovarama1992/voxboard/internal/textutil"
)

type S5MapCommand struct {
	table *commands.Table
	log   *logger.ZapLogger
}

func NewS5MapCommand(table *commands.Table, log *logger.ZapLogger) *S5MapCommand {
	return &S5MapCommand{table: table, log: log}
}

func (s *S5MapCommand) Run(transcript string) string {
	action := s.table.Match(transcript)

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "[S5][MAP]",
		Fields: map[string]any{
			"transcript": textutil.Trim(transcript, 180),
			"action":     action,
		},
	})
	return action
}

func (s *S5MapCommand) Table() *commands.Table { return s.table }
