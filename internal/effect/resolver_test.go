package effect

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Godeaux/TCG-sub003/internal/game"
)

func mustDecodeDefs(t *testing.T, text string) []Definition {
	t.Helper()
	var defs DefinitionList
	if err := yaml.Unmarshal([]byte(text), &defs); err != nil {
		t.Fatalf("decoding definitions: %v", err)
	}
	return defs
}

func TestResolveSimpleDefinition(t *testing.T) {
	ctx, _ := newTestContext(t)
	defs := mustDecodeDefs(t, `
type: heal
params:
  amount: 5
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Heal != 5 {
		t.Errorf("expected Heal 5, got %+v", res)
	}
}

func TestResolveSequence(t *testing.T) {
	ctx, _ := newTestContext(t)
	defs := mustDecodeDefs(t, `
- type: damageRival
  params: {amount: 2}
- type: draw
  params: {count: 1}
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(res.Composite) != 2 {
		t.Fatalf("expected two merged sub-results, got %+v", res)
	}
}

func TestUnknownTypeIsLoggedNoOp(t *testing.T) {
	ctx, rec := newTestContext(t)
	defs := []Definition{{Type: "transmogrify"}}

	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("unknown types must not fail resolution: %v", err)
	}
	if !res.Empty() {
		t.Errorf("expected a no-op, got %+v", res)
	}
	if !rec.Contains(`Unknown effect type "transmogrify"`) {
		t.Errorf("expected a warning naming the type, got %q", rec.LastMessage().Text)
	}
}

func TestBadParameterFailsCompile(t *testing.T) {
	_, err := NewRegistry().Compile(Definition{
		Type:   "grantKeyword",
		Params: map[string]any{"keyword": "flight"},
	})
	if err == nil || !strings.Contains(err.Error(), "flight") {
		t.Errorf("expected a compile error naming the bad keyword, got %v", err)
	}
}

func TestFloatParamsCoerce(t *testing.T) {
	// JSON decoding hands numbers over as float64.
	ctx, _ := newTestContext(t)
	defs := []Definition{{Type: "heal", Params: map[string]any{"amount": float64(4)}}}

	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Heal != 4 {
		t.Errorf("expected float64 amount coerced to 4, got %+v", res)
	}
}

func TestConditionalDefinition(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Player.Carrion = append(ctx.Player.Carrion, namedCard("Fallen"))
	defs := mustDecodeDefs(t, `
type: conditional
params:
  check: carrionAtLeast
  amount: 1
  then:
    type: heal
    params: {amount: 3}
  else:
    type: damageSelf
    params: {amount: 1}
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Heal != 3 || res.DamageSelf != 0 {
		t.Errorf("expected the then branch, got %+v", res)
	}
}

func TestConditionalElseBranchDefinition(t *testing.T) {
	ctx, _ := newTestContext(t)
	defs := mustDecodeDefs(t, `
type: conditional
params:
  check: rivalHasCreatures
  then:
    type: killAll
  else:
    type: draw
    params: {count: 2}
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.Draw != 2 {
		t.Errorf("expected the else branch with no rival creatures, got %+v", res)
	}
}

func TestUnknownConditionFailsCompile(t *testing.T) {
	_, err := NewRegistry().Compile(Definition{
		Type: "conditional",
		Params: map[string]any{
			"check": "moonIsFull",
			"then":  map[string]any{"type": "heal", "params": map[string]any{"amount": 1}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "moonIsFull") {
		t.Errorf("expected a compile error naming the condition, got %v", err)
	}
}

func TestRepeatDefinition(t *testing.T) {
	ctx, _ := newTestContext(t)
	defs := mustDecodeDefs(t, `
type: repeat
params:
  count: 2
  effect:
    type: damageRival
    params: {amount: 1}
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(res.Composite) != 2 {
		t.Fatalf("expected 2 repetitions, got %+v", res)
	}
}

func TestCompositeDefinitionNests(t *testing.T) {
	ctx, _ := newTestContext(t)
	defs := mustDecodeDefs(t, `
type: composite
params:
  effects:
    - type: heal
      params: {amount: 1}
    - type: draw
      params: {count: 1}
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(res.Composite) != 2 {
		t.Fatalf("expected nested sub-results, got %+v", res)
	}
}

func TestChooseOptionDefinition(t *testing.T) {
	ctx, _ := newTestContext(t)
	defs := mustDecodeDefs(t, `
type: chooseOption
params:
  title: Feast or famine
  options:
    - id: feast
      label: Feast
      effect:
        type: heal
        params: {amount: 5}
    - id: famine
      label: Famine
      effect:
        type: damageRival
        params: {amount: 5}
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.SelectOption == nil {
		t.Fatal("expected an option request")
	}
	if got := len(res.SelectOption.Options); got != 2 {
		t.Fatalf("expected 2 options, got %d", got)
	}
	chosen := res.SelectOption.OnSelect("famine")
	if chosen.DamageRival != 5 {
		t.Errorf("expected the famine option's result, got %+v", chosen)
	}
}

func TestSelectFromGroupDefinition(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Creature = place(t, ctx, 0, "Owl", game.TypePredator, 3, 3)
	rabbit := place(t, ctx, 1, "Rabbit", game.TypePrey, 1, 1)
	defs := mustDecodeDefs(t, `
type: selectFromGroup
params:
  group: enemy-creatures
  effect:
    type: damageCreature
    params: {amount: 2}
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if res.DamageCreature == nil || res.DamageCreature.Creature != rabbit {
		t.Fatalf("expected the lone enemy auto-chosen and damaged, got %+v", res)
	}
}

func TestTrapDefinitionSequence(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.TrapContext = true
	wolf := place(t, ctx, 1, "Wolf", game.TypePredator, 4, 3)
	ctx.Attacker = wolf

	defs := mustDecodeDefs(t, `
- type: negateAttack
- type: damageTriggered
  params: {amount: 2}
`)
	res, err := NewRegistry().Resolve(defs, ctx)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	var negated, damaged bool
	walkResult(res, func(sub Result) {
		if sub.NegateAttack {
			negated = true
		}
		if sub.DamageCreature != nil && sub.DamageCreature.Creature == wolf {
			damaged = true
		}
	})
	if !negated || !damaged {
		t.Errorf("expected negate and damage descriptors, got %+v", res)
	}
}

func TestDefinitionListDecodesSingleMapping(t *testing.T) {
	defs := mustDecodeDefs(t, `
type: draw
params: {count: 1}
`)
	if len(defs) != 1 || defs[0].Type != "draw" {
		t.Fatalf("expected one draw definition, got %+v", defs)
	}
}

func TestRegistryCoversCoreVocabulary(t *testing.T) {
	r := NewRegistry()
	names := []string{
		"heal", "damageRival", "drainRival", "draw", "millDeck",
		"damageCreature", "killCreature", "buffStats", "grantKeyword",
		"destroy", "killAll", "buffAllFriendly", "damageAllEnemies",
		"selectEnemyToKill", "selectFromGroup", "chooseOption",
		"tutorFromDeck", "raiseCarrion", "discardFromHand",
		"negateAttack", "killTriggered", "protectDefender",
		"spinWeb", "emboldenPride", "exposeEnemies",
		"summonToken", "summonCopy",
		"composite", "repeat", "conditional",
	}
	for _, name := range names {
		if _, ok := r.builders[name]; !ok {
			t.Errorf("registry is missing %q", name)
		}
	}
}
