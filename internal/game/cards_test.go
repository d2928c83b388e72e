package game

import "testing"

const testLibraryYAML = `
cards:
  - name: Rabbit
    kind: creature
    type: prey
    attack: 1
    health: 1
  - name: Anglerfish
    type: predator
    attack: 2
    health: 4
    keywords: [lure]
  - name: Pitfall
    kind: trap
`

func TestParseCardLibrary(t *testing.T) {
	library, err := parseCardsYAML([]byte(testLibraryYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(library) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(library))
	}

	fish := library["Anglerfish"]
	if fish == nil {
		t.Fatal("missing Anglerfish")
	}
	if fish.Kind != CardCreature {
		t.Error("kind should default to creature")
	}
	if fish.CreatureType != TypePredator || fish.Attack != 2 || fish.Health != 4 {
		t.Errorf("bad stats: %+v", fish)
	}
	if len(fish.Keywords) != 1 || fish.Keywords[0] != KeywordLure {
		t.Errorf("expected [Lure], got %v", fish.Keywords)
	}

	if library["Pitfall"].Kind != CardTrap {
		t.Error("expected Pitfall to be a trap")
	}
}

func TestParseCardLibraryRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"unknown keyword", "cards:\n  - {name: X, type: prey, keywords: [flight]}"},
		{"unknown kind", "cards:\n  - {name: X, kind: sorcery}"},
		{"unknown creature type", "cards:\n  - {name: X, type: dragon}"},
		{"missing name", "cards:\n  - {type: prey}"},
		{"duplicate name", "cards:\n  - {name: X, type: prey}\n  - {name: X, type: prey}"},
	}
	for _, tc := range cases {
		if _, err := parseCardsYAML([]byte(tc.yaml)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestBuildDeck(t *testing.T) {
	library, err := parseCardsYAML([]byte(testLibraryYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	deck, err := BuildDeck(library, []string{"Rabbit", "Rabbit", "Pitfall"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(deck) != 3 || deck[0] != deck[1] {
		t.Errorf("expected two Rabbit copies and a Pitfall, got %v", deck)
	}

	if _, err := BuildDeck(library, []string{"Unicorn"}); err == nil {
		t.Error("expected an error for an unknown card name")
	}
}
