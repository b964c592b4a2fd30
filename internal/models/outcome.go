package models

type OutcomeKind string

const (
	OutcomeCommand          OutcomeKind = "command"
	OutcomeNoSpeech         OutcomeKind = "no_speech"
	OutcomeNoAudio          OutcomeKind = "no_audio"
	OutcomeConversionFailed OutcomeKind = "conversion_failed"
	OutcomeServerError      OutcomeKind = "server_error"
)

// UnknownCommand is returned when nothing in the table matches or no speech was heard.
const UnknownCommand = "unknown_command"

// Outcome is the result of interpreting one recording. Err is set only for
// the failure kinds.
type Outcome struct {
	ID         string
	Kind       OutcomeKind
	Action     string
	Transcript string
	Err        error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}
