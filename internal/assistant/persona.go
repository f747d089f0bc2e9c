package assistant

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PersonaSpec holds the fixed prompt material for the assistant, loaded from a
// YAML file so copy can be tuned without a rebuild.
type PersonaSpec struct {
	// System directive sent as the first message of every conversation.
	System string `yaml:"system"`
	// VisionInstruction is appended to the user's message when an image is
	// attached, asking for an outfit analysis and a DALL·E prompt suggestion.
	VisionInstruction string `yaml:"vision_instruction"`
	// Apology is the fixed text returned to the client when the pipeline fails.
	Apology string `yaml:"apology"`
}

func LoadPersona(path string) (PersonaSpec, error) {
	var spec PersonaSpec
	b, err := os.ReadFile(path)
	if err != nil {
		return spec, err
	}
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return spec, err
	}
	if spec.System == "" {
		return spec, fmt.Errorf("persona %s: system prompt is empty", path)
	}
	return spec, nil
}
