package infra

import (
	"fmt"
	"os"

	"github.com/Vovarama1992/voxboard/internal/models"
	"gopkg.in/yaml.v3"
)

type commandsFile struct {
	Commands []models.Command `yaml:"commands"`
}

// LoadCommandsFile reads an ordered phrase -> action list:
//
//	commands:
//	  - phrase: circle
//	    action: draw_circle
//
// Validation of the entries is left to the command table.
func LoadCommandsFile(path string) ([]models.Command, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read commands file: %w", err)
	}

	var f commandsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse commands file: %w", err)
	}
	if len(f.Commands) == 0 {
		return nil, fmt.Errorf("commands file %s has no commands", path)
	}
	return f.Commands, nil
}
