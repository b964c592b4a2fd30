// Package commands holds the phrase -> action table used to turn a transcript
// into a whiteboard command.
package commands

import (
	"fmt"
	"strings"

	"github.com/Vovarama1992/voxboard/internal/models"
)

// Table is an ordered, read-only list of phrases. Order decides ties: the
// first phrase contained in the transcript wins, not the longest one.
type Table struct {
	entries []models.Command
}

// Default is the built-in whiteboard vocabulary.
func Default() *Table {
	t, err := New([]models.Command{
		{Phrase: "circle", Action: "draw_circle"},
		{Phrase: "rectangle", Action: "draw_rectangle"},
		{Phrase: "square", Action: "draw_square"},
		{Phrase: "triangle", Action: "draw_triangle"},
		{Phrase: "line", Action: "draw_line"},
		{Phrase: "arrow", Action: "draw_arrow"},
		{Phrase: "text", Action: "add_text"},
		{Phrase: "clear", Action: "clear_canvas"},
		{Phrase: "undo", Action: "undo"},
		{Phrase: "redo", Action: "redo"},
		{Phrase: "download", Action: "save"},
		{Phrase: "zoom in", Action: "zoom_in"},
		{Phrase: "zoom out", Action: "zoom_out"},
		{Phrase: "delete", Action: "delete_selected"},
	})
	if err != nil {
		panic("default command table: " + err.Error())
	}
	return t
}

// New copies entries into a table. Phrases must be lowercase, trimmed,
// non-empty and unique; actions must be non-empty.
func New(entries []models.Command) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("command table is empty")
	}

	seen := make(map[string]struct{}, len(entries))
	out := make([]models.Command, 0, len(entries))

	for i, e := range entries {
		switch {
		case e.Phrase == "":
			return nil, fmt.Errorf("command %d: empty phrase", i)
		case e.Phrase != strings.TrimSpace(e.Phrase):
			return nil, fmt.Errorf("command %d: phrase %q has surrounding whitespace", i, e.Phrase)
		case e.Phrase != strings.ToLower(e.Phrase):
			return nil, fmt.Errorf("command %d: phrase %q is not lowercase", i, e.Phrase)
		case e.Action == "":
			return nil, fmt.Errorf("command %d: phrase %q has no action", i, e.Phrase)
		}

		if _, dup := seen[e.Phrase]; dup {
			return nil, fmt.Errorf("command %d: duplicate phrase %q", i, e.Phrase)
		}
		seen[e.Phrase] = struct{}{}
		out = append(out, e)
	}

	return &Table{entries: out}, nil
}

// Match lowercases and trims the transcript, then returns the action of the
// first phrase found anywhere in it, or models.UnknownCommand.
func (t *Table) Match(transcript string) string {
	normalized := strings.ToLower(strings.TrimSpace(transcript))
	for _, e := range t.entries {
		if strings.Contains(normalized, e.Phrase) {
			return e.Action
		}
	}
	return models.UnknownCommand
}

func (t *Table) Entries() []models.Command {
	out := make([]models.Command, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Table) Len() int { return len(t.entries) }
