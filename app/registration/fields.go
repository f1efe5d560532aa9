package registration

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed fields.yaml
var fieldsYAML []byte

// FieldDescriptor tells a renderer how to draw one input row.
type FieldDescriptor struct {
	Name      string `yaml:"name" json:"name"`
	Label     string `yaml:"label" json:"label"`
	InputType string `yaml:"inputType" json:"inputType"`
}

// Secret reports whether the input must be masked.
func (d FieldDescriptor) Secret() bool { return d.InputType == "password" }

var loadDescriptors = sync.OnceValues(func() ([]FieldDescriptor, error) {
	return ParseDescriptors(fieldsYAML)
})

// Descriptors returns the embedded field descriptors in render order.
func Descriptors() ([]FieldDescriptor, error) {
	ds, err := loadDescriptors()
	if err != nil {
		return nil, err
	}
	return append([]FieldDescriptor(nil), ds...), nil
}

// ParseDescriptors decodes a descriptor document and checks that it covers
// exactly the registration fields.
func ParseDescriptors(raw []byte) ([]FieldDescriptor, error) {
	var doc struct {
		Fields []FieldDescriptor `yaml:"fields"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("registration: parse descriptors: %w", err)
	}

	seen := make(map[string]bool, len(doc.Fields))
	for _, d := range doc.Fields {
		if _, err := (FormValues{}).Get(d.Name); err != nil {
			return nil, fmt.Errorf("registration: descriptor: %w", err)
		}
		if seen[d.Name] {
			return nil, fmt.Errorf("registration: duplicate descriptor %q", d.Name)
		}
		seen[d.Name] = true
	}
	for _, f := range Fields {
		if !seen[f] {
			return nil, fmt.Errorf("registration: missing descriptor for %q", f)
		}
	}
	return doc.Fields, nil
}
