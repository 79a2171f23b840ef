package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed animations.yaml
var defaultAnimations []byte

// FrameDef is one frame of an animation definition.
type FrameDef struct {
	// Image is a path inside the image filesystem
	Image string `yaml:"image"`

	// Duration in seconds; zero falls back to the animation's FrameDuration
	Duration float64 `yaml:"duration,omitempty"`
}

// AnimationDef describes one animation of a character.
type AnimationDef struct {
	Loop          bool       `yaml:"loop"`
	FrameDuration float64    `yaml:"frame_duration,omitempty"`
	Frames        []FrameDef `yaml:"frames"`
}

// animationFile is the top level of animations.yaml
type animationFile struct {
	Characters map[string]map[string]AnimationDef `yaml:"characters"`
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations map[string]map[StateID]AnimationDef

func init() {
	defs, err := LoadAnimationDefs(bytes.NewReader(defaultAnimations))
	if err != nil {
		panic(fmt.Sprintf("embedded animations.yaml: %v", err))
	}
	CharacterAnimations = defs
}

// LoadAnimationDefs decodes and validates an animation definition file.
// Per-frame durations are filled in from FrameDuration where missing.
func LoadAnimationDefs(r io.Reader) (map[string]map[StateID]AnimationDef, error) {
	var file animationFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode animations: %w", err)
	}
	if len(file.Characters) == 0 {
		return nil, fmt.Errorf("no characters defined")
	}

	out := make(map[string]map[StateID]AnimationDef, len(file.Characters))
	for key, anims := range file.Characters {
		states := make(map[StateID]AnimationDef, len(anims))
		for name, def := range anims {
			state, ok := ParseStateID(name)
			if !ok {
				return nil, fmt.Errorf("%s: unknown state %q", key, name)
			}
			if len(def.Frames) == 0 {
				return nil, fmt.Errorf("%s/%s: no frames", key, name)
			}
			frames := make([]FrameDef, len(def.Frames))
			for i, f := range def.Frames {
				if f.Duration == 0 {
					f.Duration = def.FrameDuration
				}
				if f.Duration <= 0 {
					return nil, fmt.Errorf("%s/%s: frame %d: duration must be greater than zero", key, name, i)
				}
				if f.Image == "" {
					return nil, fmt.Errorf("%s/%s: frame %d: missing image", key, name, i)
				}
				frames[i] = f
			}
			def.Frames = frames
			states[state] = def
		}
		out[key] = states
	}
	return out, nil
}

// ReloadAnimations replaces CharacterAnimations with the definitions in path.
// The current definitions are kept when the file is invalid.
func ReloadAnimations(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	defs, err := LoadAnimationDefs(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	CharacterAnimations = defs
	return nil
}
