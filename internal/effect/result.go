package effect

import (
	"reflect"

	"github.com/Godeaux/TCG-sub003/internal/game"
)

// Effect is the inner stage of a primitive: static parameters already bound,
// it maps a context to a result descriptor.
type Effect func(ctx *Context) Result

// Result is the sparse descriptor an effect returns. The zero value means "no
// effect happened"; every primitive degrades to it on unmet preconditions.
// Multiple fields may coexist: the downstream layer applies the immediate ones
// and then presents any pending selection.
type Result struct {
	// Player operations.
	Heal               int
	HealRival          int
	DamageRival        int
	DamageSelf         int
	Draw               int
	DrawRival          int
	Mill               int
	MillRival          int
	DiscardRandom      int
	DiscardRivalRandom int

	// Creature operations.
	DamageCreature   *CreatureDamage
	HealCreature     *CreatureHeal
	KillCreature     *game.Creature
	DestroyCreatures *DestroyGroup
	BuffStats        []StatChange
	SetStats         *StatChange
	FreezeCreatures  *FreezeGroup
	ReturnToHand     *ReturnGroup
	GrantKeywords    []KeywordChange
	RemoveKeywords   []KeywordChange
	RemoveAbilities  *game.Creature
	NegateAttack     bool

	// Card movement.
	AddToHand    *AddToHand
	DiscardCards *DiscardCards
	Summon       []SummonOp

	// Interaction. PendingSelections carries spliced follow-up prompts when
	// several sub-effects of one definition each requested input.
	SelectTarget      *SelectionRequest
	SelectOption      *OptionRequest
	PendingSelections []Result

	// Composite nests the ordered sub-results of composite/repeat resolution.
	Composite []Result
}

// Empty reports whether the result is the no-op descriptor.
func (r Result) Empty() bool {
	return reflect.DeepEqual(r, Result{})
}

// HasSelection reports whether the result requests player input.
func (r Result) HasSelection() bool {
	return r.SelectTarget != nil || r.SelectOption != nil
}

// --- Operation payloads ---

type CreatureDamage struct {
	Creature *game.Creature
	Amount   int
}

type CreatureHeal struct {
	Creature *game.Creature
	Amount   int
}

type DestroyGroup struct {
	Creatures  []*game.Creature
	OwnerIndex int
}

type FreezeGroup struct {
	Creatures  []*game.Creature
	OwnerIndex int
}

type ReturnGroup struct {
	Creatures  []*game.Creature
	OwnerIndex int
}

type StatChange struct {
	Creature *game.Creature
	Attack   int
	Health   int
}

type KeywordChange struct {
	Creature *game.Creature
	Keyword  game.Keyword
}

type AddToHand struct {
	Card        *game.Card
	PlayerIndex int
	FromCarrion bool // false: tutored from the deck
}

type DiscardCards struct {
	Cards       []*game.Card
	PlayerIndex int
}

type SummonOp struct {
	Card        *game.Card
	PlayerIndex int
	FromCarrion bool
}

// --- Selection types ---

// ValueKind tags the variant held by a candidate value.
type ValueKind int

const (
	ValueCreature ValueKind = iota
	ValuePlayer
	ValueHand
	ValueCarrion
)

// Value references a live game-state object offered for selection. The engine
// never clones or owns the referenced object.
type Value struct {
	Kind        ValueKind
	Creature    *game.Creature
	Card        *game.Card
	PlayerIndex int // selected player, or owner of a hand/carrion card
}

func CreatureValue(c *game.Creature) Value {
	return Value{Kind: ValueCreature, Creature: c}
}

func PlayerValue(index int) Value {
	return Value{Kind: ValuePlayer, PlayerIndex: index}
}

func HandValue(card *game.Card, owner int) Value {
	return Value{Kind: ValueHand, Card: card, PlayerIndex: owner}
}

func CarrionValue(card *game.Card, owner int) Value {
	return Value{Kind: ValueCarrion, Card: card, PlayerIndex: owner}
}

// Candidate is one selectable option: a display label plus the underlying
// game-state reference.
type Candidate struct {
	Label string
	Value Value
}

// SelectionRequest asks the player to pick one candidate. When CandidatesFn is
// set the list is lazy: the driver must evaluate it only after every preceding
// immediate descriptor has been applied, because an earlier operation (a draw,
// say) may change what is selectable.
type SelectionRequest struct {
	Title        string
	Candidates   []Candidate
	CandidatesFn func() []Candidate
	OnSelect     func(Value) Result
	RenderCards  bool
}

// ResolveCandidates evaluates the candidate list, lazy or not.
func (s *SelectionRequest) ResolveCandidates() []Candidate {
	if s.CandidatesFn != nil {
		return s.CandidatesFn()
	}
	return s.Candidates
}

// Option is one entry of an OptionRequest.
type Option struct {
	ID          string
	Label       string
	Description string
	Effect      []Definition
}

// OptionRequest asks the player to pick one of an ordered list of options.
type OptionRequest struct {
	Title    string
	Options  []Option
	OnSelect func(id string) Result
}

// mergeResults implements the shared merge law used by the combinators and the
// sequence resolver: zero non-empty results is a no-op, one is returned
// verbatim, several nest under Composite.
func mergeResults(results []Result) Result {
	var nonEmpty []Result
	for _, r := range results {
		if !r.Empty() {
			nonEmpty = append(nonEmpty, r)
		}
	}
	switch len(nonEmpty) {
	case 0:
		return Result{}
	case 1:
		return nonEmpty[0]
	default:
		return Result{Composite: nonEmpty}
	}
}
