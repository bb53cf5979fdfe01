package input

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a recorded sequence of snapshots, replayed one per tick.
type Script struct {
	Name   string     `yaml:"name"`
	Frames []Snapshot `yaml:"frames"`
}

// LoadScript reads a YAML input script.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("input: read %s: %w", path, err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML input script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("input: parse script: %w", err)
	}
	for i, f := range s.Frames {
		for j, b := range f.Buttons {
			if b.Value < 0 || b.Value > 1 {
				return Script{}, fmt.Errorf("input: frame %d button %d: value %v outside [0,1]", i, j, b.Value)
			}
		}
		for j, a := range f.Axes {
			if a < -1 || a > 1 {
				return Script{}, fmt.Errorf("input: frame %d axis %d: value %v outside [-1,1]", i, j, a)
			}
		}
	}
	return s, nil
}
