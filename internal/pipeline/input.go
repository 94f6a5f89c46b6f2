package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// InputConfig is the run request: who is asking, what they need done,
// and which documents to search.
type InputConfig struct {
	Persona   string
	Job       string
	Documents []string
}

// LoadInput reads and parses the input configuration file.
func LoadInput(path string) (InputConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return InputConfig{}, fmt.Errorf("read input config: %w", err)
	}
	return ParseInput(data)
}

// ParseInput parses the input configuration JSON. Persona and
// job_to_be_done accept either the nested-object shape
// ({"role": …} / {"task": …}) or a bare string.
func ParseInput(data []byte) (InputConfig, error) {
	var raw struct {
		Persona     json.RawMessage `json:"persona"`
		JobToBeDone json.RawMessage `json:"job_to_be_done"`
		Documents   []struct {
			Filename string `json:"filename"`
		} `json:"documents"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return InputConfig{}, fmt.Errorf("parse input config: %w", err)
	}

	cfg := InputConfig{
		Persona: flexString(raw.Persona, "role"),
		Job:     flexString(raw.JobToBeDone, "task"),
	}
	for _, d := range raw.Documents {
		cfg.Documents = append(cfg.Documents, d.Filename)
	}
	return cfg, nil
}

// flexString accepts a bare JSON string or an object carrying the value
// under the given field.
func flexString(raw json.RawMessage, field string) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var obj map[string]any
	if json.Unmarshal(raw, &obj) == nil {
		if v, ok := obj[field].(string); ok {
			return v
		}
	}
	return ""
}
