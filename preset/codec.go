package preset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EncodeYAML writes a preset as YAML.
func EncodeYAML(w io.Writer, p Preset) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode preset %q: %w", p.Name, err)
	}
	return nil
}

// DecodeYAML reads one preset from YAML and validates it.
func DecodeYAML(r io.Reader) (Preset, error) {
	var p Preset
	if err := yaml.NewDecoder(r).Decode(&p); err != nil {
		return Preset{}, fmt.Errorf("decode preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// LoadFile reads a preset from a YAML or JSON file, picked by
// extension (.json means JSON, anything else YAML).
func LoadFile(filename string) (Preset, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Preset{}, fmt.Errorf("read preset: %w", err)
	}
	if isJSON(filename) {
		var p Preset
		if err := json.Unmarshal(data, &p); err != nil {
			return Preset{}, fmt.Errorf("decode preset: %w", err)
		}
		if err := p.Validate(); err != nil {
			return Preset{}, err
		}
		return p, nil
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("decode preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// SaveFile writes a preset to a YAML or JSON file, picked by
// extension.
func SaveFile(filename string, p Preset) error {
	var data []byte
	var err error
	if isJSON(filename) {
		data, err = json.MarshalIndent(p, "", "  ")
	} else {
		data, err = yaml.Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("encode preset %q: %w", p.Name, err)
	}
	return os.WriteFile(filename, data, 0644)
}

func isJSON(filename string) bool {
	return len(filename) > 5 && filename[len(filename)-5:] == ".json"
}
