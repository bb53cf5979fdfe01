package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"motion-controller-rig/internal/events"
)

// Profile is the YAML form of a Schema.
//
//	buttons:
//	  - {name: trigger, node: SELECT, channel: trigger}
//	axes: [THUMBSTICK_X, THUMBSTICK_Y]
type Profile struct {
	Name    string          `yaml:"name"`
	Buttons []ButtonProfile `yaml:"buttons"`
	Axes    []string        `yaml:"axes"`
}

type ButtonProfile struct {
	Name    string `yaml:"name"`
	Node    string `yaml:"node"`
	Channel string `yaml:"channel"`
}

// LoadProfile reads a YAML profile and returns its validated schema.
func LoadProfile(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("mapping: read %s: %w", path, err)
	}
	s, err := ParseProfile(data)
	if err != nil {
		return Schema{}, fmt.Errorf("mapping: %s: %w", path, err)
	}
	return s, nil
}

// ParseProfile decodes and validates a YAML profile.
func ParseProfile(data []byte) (Schema, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Schema{}, fmt.Errorf("parse profile: %w", err)
	}
	return p.Schema()
}

// Schema converts the profile, resolving channel names.
func (p Profile) Schema() (Schema, error) {
	buttons := make([]string, len(p.Buttons))
	nodes := make(map[string]string, len(p.Buttons))
	channels := make(map[string]events.ChannelID, len(p.Buttons))
	for i, b := range p.Buttons {
		buttons[i] = b.Name
		if b.Node != "" {
			nodes[b.Name] = b.Node
		}
		if b.Channel == "" {
			continue
		}
		id, err := events.ParseChannel(b.Channel)
		if err != nil {
			return Schema{}, fmt.Errorf("button %q: %w", b.Name, err)
		}
		channels[b.Name] = id
	}

	s := New(buttons, nodes, channels, p.Axes)
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}
