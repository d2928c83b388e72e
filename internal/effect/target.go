package effect

import "github.com/Godeaux/TCG-sub003/internal/game"

// CanTargetWithAbility decides whether a creature is a legal ability target.
// Evaluated in fixed priority:
//
//  1. A nil or off-field target is never targetable.
//  2. Lure overrides everything: a Lure creature is always targetable, even
//     while Invisible.
//  3. Invisible blocks targeting unless the caster has Acuity.
//  4. Otherwise targetable. Hidden never blocks ability targeting; it only
//     blocks being attacked, which the combat layer enforces.
func CanTargetWithAbility(target, caster *game.Creature, state *game.State) bool {
	if target == nil || !state.OnField(target) {
		return false
	}
	if target.HasKeyword(game.KeywordLure) {
		return true
	}
	if target.HasKeyword(game.KeywordInvisible) && !caster.HasKeyword(game.KeywordAcuity) {
		return false
	}
	return true
}

// FilterForLure applies the must-target rule: if any candidate carries Lure,
// the valid set collapses to exactly the Lure-tagged subset. Otherwise the
// set is returned unchanged.
func FilterForLure(candidates []*game.Creature) []*game.Creature {
	var lured []*game.Creature
	for _, c := range candidates {
		if c.HasKeyword(game.KeywordLure) {
			lured = append(lured, c)
		}
	}
	if len(lured) > 0 {
		return lured
	}
	return candidates
}

// Group names a declaratively-selected subset of field entities.
type Group string

const (
	GroupEnemyCreatures    Group = "enemy-creatures"
	GroupEnemyPrey         Group = "enemy-prey"
	GroupEnemyPredators    Group = "enemy-predators"
	GroupFriendlyCreatures Group = "friendly-creatures"
	GroupFriendlyPrey      Group = "friendly-prey"
	GroupFriendlyPredators Group = "friendly-predators"
	GroupAllCreatures      Group = "all-creatures"
)

// groupSide is one owner's share of a resolved target group.
type groupSide struct {
	creatures  []*game.Creature
	ownerIndex int
}

// resolveGroup builds the concrete creature sets for a target group. Enemy
// sides are filtered through the targeting evaluator; a caster cannot reach
// Invisible enemies through a group any more than through direct targeting.
func (ctx *Context) resolveGroup(g Group) []groupSide {
	enemySide := func(creatures []*game.Creature) groupSide {
		var legal []*game.Creature
		for _, c := range creatures {
			if CanTargetWithAbility(c, ctx.Creature, ctx.State) {
				legal = append(legal, c)
			}
		}
		return groupSide{creatures: legal, ownerIndex: ctx.OpponentIndex}
	}
	friendlySide := func(creatures []*game.Creature) groupSide {
		return groupSide{creatures: creatures, ownerIndex: ctx.PlayerIndex}
	}

	switch g {
	case GroupEnemyCreatures:
		return []groupSide{enemySide(ctx.Opponent.Creatures())}
	case GroupEnemyPrey:
		return []groupSide{enemySide(ctx.Opponent.CreaturesOfType(game.TypePrey))}
	case GroupEnemyPredators:
		return []groupSide{enemySide(ctx.Opponent.CreaturesOfType(game.TypePredator))}
	case GroupFriendlyCreatures:
		return []groupSide{friendlySide(ctx.Player.Creatures())}
	case GroupFriendlyPrey:
		return []groupSide{friendlySide(ctx.Player.CreaturesOfType(game.TypePrey))}
	case GroupFriendlyPredators:
		return []groupSide{friendlySide(ctx.Player.CreaturesOfType(game.TypePredator))}
	case GroupAllCreatures:
		return []groupSide{
			friendlySide(ctx.Player.Creatures()),
			enemySide(ctx.Opponent.Creatures()),
		}
	default:
		return nil
	}
}

// groupCreatures flattens a resolved group into a single creature list.
func (ctx *Context) groupCreatures(g Group) []*game.Creature {
	var all []*game.Creature
	for _, side := range ctx.resolveGroup(g) {
		all = append(all, side.creatures...)
	}
	return all
}

// targetableEnemies builds the legal enemy-creature candidate list for an
// interactive primitive: evaluator first, then the Lure collapse. Lure takes
// precedence over Invisible inside the evaluator, so a Lure creature is never
// excluded before the collapse runs.
func (ctx *Context) targetableEnemies() []*game.Creature {
	var legal []*game.Creature
	for _, c := range ctx.Opponent.Creatures() {
		if CanTargetWithAbility(c, ctx.Creature, ctx.State) {
			legal = append(legal, c)
		}
	}
	return FilterForLure(legal)
}

// selectableGroup builds the candidate list for an interactive group
// selection. Enemy groups get the Lure collapse; friendly and mixed groups
// do not (a player is never forced onto their own Lure).
func (ctx *Context) selectableGroup(g Group) []*game.Creature {
	creatures := ctx.groupCreatures(g)
	switch g {
	case GroupEnemyCreatures, GroupEnemyPrey, GroupEnemyPredators:
		return FilterForLure(creatures)
	default:
		return creatures
	}
}

// creatureCandidates maps creatures to selection candidates.
func creatureCandidates(creatures []*game.Creature) []Candidate {
	candidates := make([]Candidate, 0, len(creatures))
	for _, c := range creatures {
		candidates = append(candidates, Candidate{
			Label: c.DisplayString(),
			Value: CreatureValue(c),
		})
	}
	return candidates
}
