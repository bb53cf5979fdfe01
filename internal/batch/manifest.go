package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame   int    `json:"frame"`
	Image   string `json:"image,omitempty"`
	Buttons int    `json:"resolved_buttons"`
	Axes    int    `json:"resolved_axes"`
	Error   string `json:"error,omitempty"`
}

// Manifest describes a batch render.
type Manifest struct {
	Controller string          `json:"controller"`
	Hand       string          `json:"hand"`
	Model      string          `json:"model"`
	Frames     []ManifestEntry `json:"frames"`
}

// NewManifest pairs results with the resolved part counts of the rig.
func NewManifest(controller, hand, model string, buttons, axes int, results []Result) Manifest {
	m := Manifest{Controller: controller, Hand: hand, Model: model}
	for _, r := range results {
		e := ManifestEntry{Frame: r.Frame, Buttons: buttons, Axes: axes, Error: r.Error}
		if r.Success {
			e.Image = filepath.Base(r.Path)
		}
		m.Frames = append(m.Frames, e)
	}
	return m
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
