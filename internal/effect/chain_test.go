package effect

import (
	"testing"

	"github.com/Godeaux/TCG-sub003/internal/game"
)

func TestMergeKeepsImmediatesAroundPrompt(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	place(t, ctx, 1, "Wolf", game.TypePredator, 4, 3)

	res := MergeWithSelections([]Result{
		Heal(2)(ctx),
		SelectEnemyToDamage(3)(ctx),
	})
	if res.Heal != 2 {
		t.Errorf("the immediate heal should survive the merge, got %+v", res)
	}
	if res.SelectTarget == nil {
		t.Error("the prompt should survive the merge")
	}
}

func TestMergeChainsTwoPrompts(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	rabbit := place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	wolf := place(t, ctx, 1, "Wolf", game.TypePredator, 4, 3)

	res := MergeWithSelections([]Result{
		SelectEnemyToDamage(2)(ctx),
		SelectEnemyToFreeze()(ctx),
	})
	if res.SelectTarget == nil {
		t.Fatal("expected the first prompt to head the chain")
	}

	// Answering the first prompt must surface the second, with the first
	// answer's payload carried alongside.
	after := res.SelectTarget.OnSelect(CreatureValue(rabbit))
	if after.DamageCreature == nil || after.DamageCreature.Creature != rabbit {
		t.Fatalf("expected the first answer's damage payload, got %+v", after)
	}
	if after.SelectTarget == nil {
		t.Fatal("expected the second prompt after answering the first")
	}

	final := after.SelectTarget.OnSelect(CreatureValue(wolf))
	if final.FreezeCreatures == nil || final.FreezeCreatures.Creatures[0] != wolf {
		t.Fatalf("expected the freeze payload from the second prompt, got %+v", final)
	}
}

func TestMergeChainsThreePrompts(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	rabbit := place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	place(t, ctx, 1, "Wolf", game.TypePredator, 4, 3)

	res := MergeWithSelections([]Result{
		SelectEnemyToDamage(1)(ctx),
		SelectEnemyToDamage(2)(ctx),
		SelectEnemyToDamage(3)(ctx),
	})

	// Walk the chain by hand, always answering Rabbit.
	total := 0
	for i := 0; i < 3; i++ {
		if res.SelectTarget == nil {
			t.Fatalf("expected prompt %d in the chain", i+1)
		}
		res = res.SelectTarget.OnSelect(CreatureValue(rabbit))
		for _, sub := range append([]Result{res}, res.Composite...) {
			if sub.DamageCreature != nil {
				total += sub.DamageCreature.Amount
			}
		}
	}
	if res.SelectTarget != nil {
		t.Error("the chain should be exhausted after three answers")
	}
	if total != 6 {
		t.Errorf("expected all three damage payloads (1+2+3), got %d", total)
	}
}

func TestCompositeChainsNestedPrompts(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	place(t, ctx, 1, "Wolf", game.TypePredator, 4, 3)

	res := Composite([]Effect{
		SelectEnemyToDamage(2),
		SelectEnemyToFreeze(),
	})(ctx)
	if res.SelectTarget == nil {
		t.Fatal("composite with two prompting sub-effects should expose the first prompt")
	}
}

func TestWalkSettlesFullChain(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	place(t, ctx, 1, "Wolf", game.TypePredator, 4, 3)

	res := Composite([]Effect{
		Heal(2),
		SelectEnemyToDamage(3),
		SelectEnemyToFreeze(),
	})(ctx)

	settled := FirstChoice.Walk(res)
	var healed, damaged, frozen bool
	for _, r := range settled {
		walkResult(r, func(sub Result) {
			if sub.Heal == 2 {
				healed = true
			}
			if sub.DamageCreature != nil && sub.DamageCreature.Amount == 3 {
				damaged = true
			}
			if sub.FreezeCreatures != nil {
				frozen = true
			}
		})
	}
	if !healed || !damaged || !frozen {
		t.Errorf("expected heal, damage and freeze settled; got healed=%v damaged=%v frozen=%v", healed, damaged, frozen)
	}
}

func TestWalkSkipsEmptyLazyCandidates(t *testing.T) {
	picked := false
	w := Walker{
		PickTarget: func(*SelectionRequest, []Candidate) (Value, bool) {
			picked = true
			return Value{}, false
		},
	}
	res := Result{SelectTarget: &SelectionRequest{
		Title:        "Choose a card",
		CandidatesFn: func() []Candidate { return nil },
		OnSelect:     func(Value) Result { return Result{} },
	}}

	if settled := w.Walk(res); len(settled) != 0 {
		t.Errorf("expected nothing settled, got %v", settled)
	}
	if picked {
		t.Error("the driver should never see a prompt with zero candidates")
	}
}

func TestWalkHonorsDeclinedPrompt(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	place(t, ctx, 1, "Wolf", game.TypePredator, 4, 3)

	decline := Walker{
		PickTarget: func(*SelectionRequest, []Candidate) (Value, bool) {
			return Value{}, false
		},
	}
	res := MergeWithSelections([]Result{Heal(2)(ctx), SelectEnemyToDamage(3)(ctx)})
	settled := decline.Walk(res)
	if len(settled) != 1 || settled[0].Heal != 2 {
		t.Errorf("declining the prompt should still settle the immediate heal, got %v", settled)
	}
}

// walkResult visits a result and its nested composite entries.
func walkResult(r Result, visit func(Result)) {
	visit(r)
	for _, sub := range r.Composite {
		walkResult(sub, visit)
	}
}
