// Package formats implements the authored scene description: a YAML
// document carrying hierarchy placement, clips and slot-bound splines,
// plus validation and conversion into a runtime scene.
package formats

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SceneDoc is the root of a scene description file.
type SceneDoc struct {
	Name string `yaml:"name"`

	// Duration maps wall-clock seconds onto clip-normalized time.
	Duration float32   `yaml:"duration"`
	Loop     bool      `yaml:"loop"`
	Nodes    []NodeDoc `yaml:"nodes"`
}

// NodeDoc declares one hierarchy node. Parent and Target refer to other
// nodes by name; a parent must be declared before any of its children, so
// documents are in hierarchy order and cannot express parent cycles.
type NodeDoc struct {
	Name   string    `yaml:"name"`
	Kind   string    `yaml:"kind"`
	Parent string    `yaml:"parent"`
	Target string    `yaml:"target"`
	Clips  []ClipDoc `yaml:"clips"`

	// Clip selects the initially active clip by name. Empty means the
	// first clip.
	Clip string `yaml:"clip"`
}

// ClipDoc is a named set of slot-bound curves.
type ClipDoc struct {
	Name   string     `yaml:"name"`
	Curves []CurveDoc `yaml:"curves"`
}

// CurveDoc binds one spline to one parameter slot.
type CurveDoc struct {
	Slot string   `yaml:"slot"`
	Mode string   `yaml:"mode"`
	Loop bool     `yaml:"loop"`
	Keys []KeyDoc `yaml:"keys"`
}

// KeyDoc is one authored keyframe. Rotation is x,y,z,w; In and Out are
// easing control offsets as [time, value] pairs in normalized segment
// units, read only by bezier-mode curves.
type KeyDoc struct {
	Time     float32     `yaml:"time"`
	Value    float32     `yaml:"value"`
	Rotation *[4]float32 `yaml:"rotation,omitempty"`
	In       *[2]float32 `yaml:"in,omitempty"`
	Out      *[2]float32 `yaml:"out,omitempty"`
}

// Parse decodes a scene document from YAML.
func Parse(data []byte) (*SceneDoc, error) {
	var doc SceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("formats: parsing scene document: %w", err)
	}
	if doc.Duration <= 0 {
		doc.Duration = 1
	}
	return &doc, nil
}

// Load reads and decodes a scene document file.
func Load(path string) (*SceneDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formats: reading scene document %s: %w", path, err)
	}
	return Parse(data)
}
