package effect

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the data form of an effect: a type name plus parameters.
// Card files carry these under each card's "effect" key.
type Definition struct {
	Type   string         `yaml:"type" json:"type"`
	Params map[string]any `yaml:"params" json:"params,omitempty"`
}

// DefinitionList decodes either a single effect mapping or a sequence of
// them, so card files can write the common one-effect case without a list.
type DefinitionList []Definition

func (l *DefinitionList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		var d Definition
		if err := node.Decode(&d); err != nil {
			return err
		}
		*l = DefinitionList{d}
		return nil
	case yaml.SequenceNode:
		var ds []Definition
		if err := node.Decode(&ds); err != nil {
			return err
		}
		*l = ds
		return nil
	default:
		return fmt.Errorf("effect definition: expected mapping or sequence, got %v", node.Kind)
	}
}

// defsFromAny coerces a decoded params value back into definitions. Nested
// effects (composite steps, conditional branches, option effects) arrive as
// []any of map[string]any once they have passed through a generic decode.
func defsFromAny(v any) ([]Definition, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []Definition:
		return t, nil
	case DefinitionList:
		return t, nil
	case Definition:
		return []Definition{t}, nil
	case map[string]any:
		d, err := defFromMap(t)
		if err != nil {
			return nil, err
		}
		return []Definition{d}, nil
	case []any:
		defs := make([]Definition, 0, len(t))
		for _, e := range t {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("nested effect: expected mapping, got %T", e)
			}
			d, err := defFromMap(m)
			if err != nil {
				return nil, err
			}
			defs = append(defs, d)
		}
		return defs, nil
	default:
		return nil, fmt.Errorf("nested effect: unsupported value %T", v)
	}
}

func defFromMap(m map[string]any) (Definition, error) {
	typ, ok := m["type"].(string)
	if !ok {
		return Definition{}, fmt.Errorf("nested effect: missing type")
	}
	d := Definition{Type: typ}
	if p, ok := m["params"].(map[string]any); ok {
		d.Params = p
	}
	return d, nil
}
