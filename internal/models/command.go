package models

// Command is one row of the phrase -> action table.
type Command struct {
	Phrase string `json:"phrase" yaml:"phrase"`
	Action string `json:"action" yaml:"action"`
}
