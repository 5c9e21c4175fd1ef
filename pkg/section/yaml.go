package section

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a YAML document into a section tree named name. The
// document must be a mapping of string keys to primitives or nested
// mappings. Sequences are not part of the section model and are
// rejected, as is any other non-primitive scalar.
func Decode(name string, data []byte) (*Section, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return fromMap(name, raw)
}

func fromMap(name string, m map[string]any) (*Section, error) {
	s := New(name)
	for k, v := range m {
		switch node := v.(type) {
		case map[string]any:
			child, err := fromMap(k, node)
			if err != nil {
				return nil, err
			}
			s.children[k] = child
		case nil:
			s.values[k] = ""
		case string, bool, int, int64, uint64, float64:
			s.values[k] = node
		case float32:
			s.values[k] = float64(node)
		default:
			return nil, fmt.Errorf("section %q: key %q holds unsupported %T value", name, k, v)
		}
	}
	return s, nil
}

// Encode renders the section tree as a YAML document. yaml.v3 emits
// map keys in sorted order, so the output is deterministic and stable
// across load/save cycles.
func (s *Section) Encode() ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	data, err := yaml.Marshal(s.toMap())
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return data, nil
}

func (s *Section) toMap() map[string]any {
	m := make(map[string]any, len(s.values)+len(s.children))
	for k, v := range s.values {
		m[k] = v
	}
	for name, child := range s.children {
		m[name] = child.toMap()
	}
	return m
}
