package serialize

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON renders d in the normative v1.0 JSON form.
func MarshalJSON(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalJSON decodes and validates a v1.0 JSON document.
func UnmarshalJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("serialize: json: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// MarshalYAML renders d as YAML, for hand-editable sketch files.
func MarshalYAML(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}

// UnmarshalYAML decodes and validates a YAML document in the same shape.
func UnmarshalYAML(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("serialize: yaml: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
