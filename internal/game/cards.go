package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CardFile represents the top-level YAML structure of a card library file.
type CardFile struct {
	Cards []CardSpec `yaml:"cards"`
}

// CardSpec represents a single card definition in the YAML file.
type CardSpec struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Type     string   `yaml:"type"`
	Attack   int      `yaml:"attack"`
	Health   int      `yaml:"health"`
	Keywords []string `yaml:"keywords"`
}

// ParseCardFile parses a YAML card library file into a name → card map.
func ParseCardFile(path string) (map[string]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseCardsYAML(data)
}

func parseCardsYAML(data []byte) (map[string]*Card, error) {
	var cf CardFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse card YAML: %w", err)
	}

	library := make(map[string]*Card, len(cf.Cards))
	for _, spec := range cf.Cards {
		card, err := cardFromSpec(spec)
		if err != nil {
			return nil, err
		}
		if _, dup := library[card.Name]; dup {
			return nil, fmt.Errorf("duplicate card %q", card.Name)
		}
		library[card.Name] = card
	}
	return library, nil
}

func cardFromSpec(spec CardSpec) (*Card, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("card with no name")
	}
	kind, err := parseCardKind(spec.Kind)
	if err != nil {
		return nil, fmt.Errorf("card %q: %w", spec.Name, err)
	}

	card := &Card{
		Name:   spec.Name,
		Kind:   kind,
		Attack: spec.Attack,
		Health: spec.Health,
	}
	if kind == CardCreature {
		card.CreatureType = ParseCreatureType(spec.Type)
		if card.CreatureType == TypeNone {
			return nil, fmt.Errorf("card %q: unknown creature type %q", spec.Name, spec.Type)
		}
	}
	for _, kw := range spec.Keywords {
		k := ParseKeyword(kw)
		if k == KeywordNone {
			return nil, fmt.Errorf("card %q: unknown keyword %q", spec.Name, kw)
		}
		card.Keywords = append(card.Keywords, k)
	}
	return card, nil
}

func parseCardKind(s string) (CardKind, error) {
	switch s {
	case "", "creature":
		return CardCreature, nil
	case "trap":
		return CardTrap, nil
	case "boon":
		return CardBoon, nil
	default:
		return CardCreature, fmt.Errorf("unknown card kind %q", s)
	}
}

// BuildDeck expands a list of card names against a library. Duplicate names
// are allowed; each occurrence contributes one copy.
func BuildDeck(library map[string]*Card, names []string) ([]*Card, error) {
	deck := make([]*Card, 0, len(names))
	for _, name := range names {
		card, ok := library[name]
		if !ok {
			return nil, fmt.Errorf("unknown card %q", name)
		}
		deck = append(deck, card)
	}
	return deck, nil
}
