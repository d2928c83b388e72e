package effect

import (
	"testing"

	"github.com/Godeaux/TCG-sub003/internal/game"
)

func TestInvisibleBlocksTargeting(t *testing.T) {
	ctx, _ := newTestContext(t)
	caster := place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	hidden := place(t, ctx, 1, "Chameleon", game.TypePrey, 1, 2, game.KeywordInvisible)

	if CanTargetWithAbility(hidden, caster, ctx.State) {
		t.Error("Invisible creature should not be targetable by a caster without Acuity")
	}
}

func TestAcuityPiercesInvisible(t *testing.T) {
	ctx, _ := newTestContext(t)
	caster := place(t, ctx, 0, "Hawk", game.TypePredator, 3, 3, game.KeywordAcuity)
	hidden := place(t, ctx, 1, "Chameleon", game.TypePrey, 1, 2, game.KeywordInvisible)

	if !CanTargetWithAbility(hidden, caster, ctx.State) {
		t.Error("Acuity caster should see through Invisible")
	}
}

func TestLureOverridesInvisible(t *testing.T) {
	ctx, _ := newTestContext(t)
	caster := place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	bait := place(t, ctx, 1, "Anglerfish", game.TypePredator, 2, 4, game.KeywordLure, game.KeywordInvisible)

	if !CanTargetWithAbility(bait, caster, ctx.State) {
		t.Error("Lure should keep a creature targetable even while Invisible")
	}
}

func TestHiddenDoesNotBlockAbilities(t *testing.T) {
	ctx, _ := newTestContext(t)
	caster := place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	burrowed := place(t, ctx, 1, "Mole", game.TypePrey, 1, 1, game.KeywordHidden)

	if !CanTargetWithAbility(burrowed, caster, ctx.State) {
		t.Error("Hidden blocks attacks, not ability targeting")
	}
}

func TestOffFieldCreatureNotTargetable(t *testing.T) {
	ctx, _ := newTestContext(t)
	caster := place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	rabbit := place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	ctx.State.Players[1].RemoveCreature(rabbit)

	if CanTargetWithAbility(rabbit, caster, ctx.State) {
		t.Error("a creature removed from the field should not be targetable")
	}
	if CanTargetWithAbility(nil, caster, ctx.State) {
		t.Error("nil should never be targetable")
	}
}

func TestLureCollapsesCandidates(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	bait := place(t, ctx, 1, "Anglerfish", game.TypePredator, 2, 4, game.KeywordLure)
	place(t, ctx, 1, "Deer", game.TypePrey, 2, 2)

	legal := ctx.targetableEnemies()
	if len(legal) != 1 || legal[0] != bait {
		t.Fatalf("expected lure collapse to [Anglerfish], got %d candidates", len(legal))
	}
}

func TestNoLureKeepsFullCandidateSet(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	place(t, ctx, 1, "Deer", game.TypePrey, 2, 2)

	if got := len(ctx.targetableEnemies()); got != 2 {
		t.Fatalf("expected 2 candidates, got %d", got)
	}
}

func TestFriendlyGroupSkipsLureCollapse(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 0, "Anglerfish", game.TypePredator, 2, 4, game.KeywordLure)

	got := ctx.selectableGroup(GroupFriendlyCreatures)
	if len(got) != 2 {
		t.Fatalf("friendly selection should not collapse to own Lure, got %d candidates", len(got))
	}
}

func TestGroupFiltersInvisibleEnemies(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	place(t, ctx, 1, "Chameleon", game.TypePrey, 1, 2, game.KeywordInvisible)

	got := ctx.groupCreatures(GroupEnemyCreatures)
	if len(got) != 1 || got[0].Card.Name != "Rabbit" {
		t.Fatalf("expected only Rabbit reachable through the group, got %d", len(got))
	}
}

func TestGroupByCreatureType(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	place(t, ctx, 1, "Wolf", game.TypePredator, 4, 3)

	prey := ctx.groupCreatures(GroupEnemyPrey)
	if len(prey) != 1 || prey[0].Card.Name != "Rabbit" {
		t.Fatalf("expected enemy prey [Rabbit], got %d", len(prey))
	}
	predators := ctx.groupCreatures(GroupEnemyPredators)
	if len(predators) != 1 || predators[0].Card.Name != "Wolf" {
		t.Fatalf("expected enemy predators [Wolf], got %d", len(predators))
	}
}
