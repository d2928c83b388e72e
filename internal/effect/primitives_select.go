package effect

import "github.com/Godeaux/TCG-sub003/internal/game"

// Interactive primitives build a candidate list through the targeting
// evaluator (or a target-group builder) and request player input. When
// exactly one candidate qualifies the choice is resolved immediately,
// bypassing the UI round-trip; zero candidates is a logged no-op and the UI
// is never shown.

// selectCreature implements the shared selection shape, including the
// single-candidate auto-collapse.
func selectCreature(ctx *Context, title string, creatures []*game.Creature, apply func(*game.Creature) Result) Result {
	switch len(creatures) {
	case 0:
		ctx.Log.Logf("%s: no valid targets.", title)
		return Result{}
	case 1:
		return apply(creatures[0])
	default:
		return Result{SelectTarget: &SelectionRequest{
			Title:      title,
			Candidates: creatureCandidates(creatures),
			OnSelect: func(v Value) Result {
				if v.Creature == nil {
					return Result{}
				}
				return apply(v.Creature)
			},
		}}
	}
}

// SelectEnemyToKill asks for a legal enemy creature and kills it.
func SelectEnemyToKill() Effect {
	return func(ctx *Context) Result {
		return selectCreature(ctx, "Choose an enemy to kill", ctx.targetableEnemies(), func(c *game.Creature) Result {
			ctx.Log.Logf("Kill %s.", c.DisplayString())
			return Result{KillCreature: c}
		})
	}
}

// SelectEnemyToDamage asks for a legal enemy creature and damages it.
func SelectEnemyToDamage(amount int) Effect {
	return func(ctx *Context) Result {
		if amount <= 0 {
			ctx.Log.Log("No damage to deal.")
			return Result{}
		}
		return selectCreature(ctx, "Choose an enemy to damage", ctx.targetableEnemies(), func(c *game.Creature) Result {
			ctx.Log.Logf("Deal %d damage to %s.", amount, c.DisplayString())
			return Result{DamageCreature: &CreatureDamage{Creature: c, Amount: amount}}
		})
	}
}

// SelectEnemyToFreeze asks for a legal enemy creature and freezes it.
func SelectEnemyToFreeze() Effect {
	return func(ctx *Context) Result {
		return selectCreature(ctx, "Choose an enemy to freeze", ctx.targetableEnemies(), func(c *game.Creature) Result {
			ctx.Log.Logf("Freeze %s.", c.DisplayString())
			return Result{FreezeCreatures: &FreezeGroup{Creatures: []*game.Creature{c}, OwnerIndex: c.Owner}}
		})
	}
}

// SelectEnemyToReturn asks for a legal enemy creature and bounces it.
func SelectEnemyToReturn() Effect {
	return func(ctx *Context) Result {
		return selectCreature(ctx, "Choose an enemy to return", ctx.targetableEnemies(), func(c *game.Creature) Result {
			ctx.Log.Logf("Return %s to hand.", c.DisplayString())
			return Result{ReturnToHand: &ReturnGroup{Creatures: []*game.Creature{c}, OwnerIndex: c.Owner}}
		})
	}
}

// SelectEnemyToWeaken asks for a legal enemy creature and lowers its attack.
func SelectEnemyToWeaken(amount int) Effect {
	return func(ctx *Context) Result {
		if amount <= 0 {
			ctx.Log.Log("Nothing to weaken.")
			return Result{}
		}
		return selectCreature(ctx, "Choose an enemy to weaken", ctx.targetableEnemies(), func(c *game.Creature) Result {
			ctx.Log.Logf("%s loses %d attack.", c.DisplayString(), amount)
			return Result{BuffStats: []StatChange{{Creature: c, Attack: -amount}}}
		})
	}
}

// SelectEnemyToRemoveAbilities asks for a legal enemy creature and strips its
// abilities.
func SelectEnemyToRemoveAbilities() Effect {
	return func(ctx *Context) Result {
		return selectCreature(ctx, "Choose an enemy to neutralize", ctx.targetableEnemies(), func(c *game.Creature) Result {
			ctx.Log.Logf("%s loses its abilities.", c.DisplayString())
			return Result{RemoveAbilities: c}
		})
	}
}

// SelectFriendlyToBuff asks for a friendly creature and buffs it.
func SelectFriendlyToBuff(attack, health int) Effect {
	return func(ctx *Context) Result {
		return selectCreature(ctx, "Choose a creature to buff", ctx.Player.Creatures(), func(c *game.Creature) Result {
			ctx.Log.Logf("%s gains %+d/%+d.", c.DisplayString(), attack, health)
			return Result{BuffStats: []StatChange{{Creature: c, Attack: attack, Health: health}}}
		})
	}
}

// SelectFriendlyToHeal asks for a friendly creature and heals it.
func SelectFriendlyToHeal(amount int) Effect {
	return func(ctx *Context) Result {
		if amount <= 0 {
			ctx.Log.Log("Nothing to heal.")
			return Result{}
		}
		return selectCreature(ctx, "Choose a creature to heal", ctx.Player.Creatures(), func(c *game.Creature) Result {
			ctx.Log.Logf("Restore %d health to %s.", amount, c.DisplayString())
			return Result{HealCreature: &CreatureHeal{Creature: c, Amount: amount}}
		})
	}
}

// SelectFriendlyToProtect asks for a friendly creature and grants it Shell.
func SelectFriendlyToProtect() Effect {
	return func(ctx *Context) Result {
		return selectCreature(ctx, "Choose a creature to protect", ctx.Player.Creatures(), func(c *game.Creature) Result {
			ctx.Log.Logf("%s gains %s.", c.DisplayString(), game.KeywordShell)
			return Result{GrantKeywords: []KeywordChange{{Creature: c, Keyword: game.KeywordShell}}}
		})
	}
}

// SelectCreatureToKill asks for any creature on either field and kills it.
func SelectCreatureToKill() Effect {
	return func(ctx *Context) Result {
		return selectCreature(ctx, "Choose a creature to kill", ctx.selectableGroup(GroupAllCreatures), func(c *game.Creature) Result {
			ctx.Log.Logf("Kill %s.", c.DisplayString())
			return Result{KillCreature: c}
		})
	}
}

// SelectFromGroup asks for a creature from a target group and applies the
// bound inner effect to it, with the chosen creature as the context target.
// The auto-collapse rule holds here too: a one-creature group resolves the
// inner effect immediately.
func SelectFromGroup(g Group, inner Effect) Effect {
	return func(ctx *Context) Result {
		return selectCreature(ctx, "Choose a "+string(g), ctx.selectableGroup(g), func(c *game.Creature) Result {
			derived := *ctx
			derived.Target = c
			return inner(&derived)
		})
	}
}

// ChooseOption presents an ordered list of options; the chosen option's bound
// effect resolves against the same context. A single option auto-resolves.
func ChooseOption(title string, options []Option, effects []Effect) Effect {
	return func(ctx *Context) Result {
		if len(options) == 0 {
			ctx.Log.Log("No options to choose.")
			return Result{}
		}
		if len(options) == 1 {
			return effects[0](ctx)
		}
		return Result{SelectOption: &OptionRequest{
			Title:   title,
			Options: options,
			OnSelect: func(id string) Result {
				for i, opt := range options {
					if opt.ID == id {
						return effects[i](ctx)
					}
				}
				ctx.Log.Logf("Unknown option %q.", id)
				return Result{}
			},
		}}
	}
}

// TutorFromDeck searches the acting player's deck for a card of the given
// kind ("any" matches everything) and adds the choice to hand. The candidate
// list is a lazy producer: a preceding draw in the same definition must be
// applied before the deck is read.
func TutorFromDeck(filter string) Effect {
	return func(ctx *Context) Result {
		if ctx.Player.DeckCount() == 0 {
			ctx.Log.Log("Deck is empty.")
			return Result{}
		}
		player := ctx.Player
		playerIndex := ctx.PlayerIndex
		return Result{SelectTarget: &SelectionRequest{
			Title:       "Choose a card from your deck",
			RenderCards: true,
			CandidatesFn: func() []Candidate {
				var candidates []Candidate
				for _, card := range player.Deck {
					if !matchesKind(card, filter) {
						continue
					}
					candidates = append(candidates, Candidate{
						Label: card.Name,
						Value: HandValue(card, playerIndex),
					})
				}
				return candidates
			},
			OnSelect: func(v Value) Result {
				if v.Card == nil {
					return Result{}
				}
				ctx.Log.Logf("Add %s to hand.", v.Card.Name)
				return Result{AddToHand: &AddToHand{Card: v.Card, PlayerIndex: playerIndex}}
			},
		}}
	}
}

// RaiseCarrion summons a creature card back from the acting player's carrion
// pile. The candidate list is lazy: a kill earlier in the same definition may
// add to the pile before it is read.
func RaiseCarrion() Effect {
	return func(ctx *Context) Result {
		if len(ctx.Player.Carrion) == 0 {
			ctx.Log.Log("Carrion is empty.")
			return Result{}
		}
		if ctx.Player.FreeSlot() < 0 {
			ctx.Log.Log("No room on the field.")
			return Result{}
		}
		player := ctx.Player
		playerIndex := ctx.PlayerIndex
		return Result{SelectTarget: &SelectionRequest{
			Title:       "Choose a creature to raise",
			RenderCards: true,
			CandidatesFn: func() []Candidate {
				var candidates []Candidate
				for _, card := range player.Carrion {
					if !card.IsCreature() {
						continue
					}
					candidates = append(candidates, Candidate{
						Label: card.Name,
						Value: CarrionValue(card, playerIndex),
					})
				}
				return candidates
			},
			OnSelect: func(v Value) Result {
				if v.Card == nil {
					return Result{}
				}
				ctx.Log.Logf("Raise %s from the carrion.", v.Card.Name)
				return Result{Summon: []SummonOp{{Card: v.Card, PlayerIndex: playerIndex, FromCarrion: true}}}
			},
		}}
	}
}

// DiscardFromHand asks the acting player to discard a card of their choice.
// Lazy for the same reason as TutorFromDeck: a draw resolved earlier in the
// definition lands in the hand before the list is built.
func DiscardFromHand() Effect {
	return func(ctx *Context) Result {
		if len(ctx.Player.Hand) == 0 {
			ctx.Log.Log("No cards to discard.")
			return Result{}
		}
		player := ctx.Player
		playerIndex := ctx.PlayerIndex
		return Result{SelectTarget: &SelectionRequest{
			Title:       "Choose a card to discard",
			RenderCards: true,
			CandidatesFn: func() []Candidate {
				candidates := make([]Candidate, 0, len(player.Hand))
				for _, card := range player.Hand {
					candidates = append(candidates, Candidate{
						Label: card.Name,
						Value: HandValue(card, playerIndex),
					})
				}
				return candidates
			},
			OnSelect: func(v Value) Result {
				if v.Card == nil {
					return Result{}
				}
				ctx.Log.Logf("Discard %s.", v.Card.Name)
				return Result{DiscardCards: &DiscardCards{Cards: []*game.Card{v.Card}, PlayerIndex: playerIndex}}
			},
		}}
	}
}

// matchesKind checks a card against a tutor filter string.
func matchesKind(card *game.Card, filter string) bool {
	switch filter {
	case "", "any":
		return true
	case "creature":
		return card.Kind == game.CardCreature
	case "trap":
		return card.Kind == game.CardTrap
	case "boon":
		return card.Kind == game.CardBoon
	case "prey":
		return card.Kind == game.CardCreature && card.CreatureType == game.TypePrey
	case "predator":
		return card.Kind == game.CardCreature && card.CreatureType == game.TypePredator
	default:
		return false
	}
}
