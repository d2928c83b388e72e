package effect

import (
	"testing"

	"github.com/Godeaux/TCG-sub003/internal/game"
	"github.com/Godeaux/TCG-sub003/internal/log"
)

// newTestContext builds an empty two-player board with player 0 acting.
func newTestContext(t *testing.T) (*Context, *log.MemoryRecorder) {
	t.Helper()
	rec := log.NewMemoryRecorder()
	return NewContext(game.NewState(), 0, rec), rec
}

// place puts a fresh creature on the given player's field and returns it.
func place(t *testing.T, ctx *Context, player int, name string, ctype game.CreatureType, attack, health int, kws ...game.Keyword) *game.Creature {
	t.Helper()
	card := &game.Card{
		Name:         name,
		Kind:         game.CardCreature,
		CreatureType: ctype,
		Attack:       attack,
		Health:       health,
		Keywords:     kws,
	}
	c := game.NewCreature(card, player)
	if !ctx.State.Players[player].PlaceCreature(c) {
		t.Fatalf("no room to place %s for player %d", name, player)
	}
	return c
}

func namedCard(name string) *game.Card {
	return &game.Card{Name: name, Kind: game.CardCreature, CreatureType: game.TypePrey, Attack: 1, Health: 1}
}

// candidateLabels extracts labels from a candidate list for order-sensitive
// assertions.
func candidateLabels(candidates []Candidate) []string {
	labels := make([]string, 0, len(candidates))
	for _, c := range candidates {
		labels = append(labels, c.Label)
	}
	return labels
}
