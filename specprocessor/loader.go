package specprocessor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes an OpenAPI document from either YAML or JSON source
// bytes; yaml.v3 parses both. Mapping nodes decode to map[string]any with
// string keys, which is the shape ResolveRefs and ProcessSpec walk.
func LoadSpec(data []byte) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("specprocessor: decoding document: %w", err)
	}
	return doc, nil
}
