package effect

import "github.com/Godeaux/TCG-sub003/internal/game"

// Primitives are two-stage closures: the outer call binds static parameters
// from card data, the inner call maps a context to a result descriptor.
// No primitive throws for "nothing to do"; every unmet precondition degrades
// to the empty result after logging a human-readable message.

// --- Player resource primitives ---

// Heal restores the acting player's health. Clamping to maximum health is the
// downstream layer's responsibility.
func Heal(amount int) Effect {
	return func(ctx *Context) Result {
		if amount <= 0 {
			ctx.Log.Log("Nothing to heal.")
			return Result{}
		}
		ctx.Log.Logf("Restore %d health.", amount)
		return Result{Heal: amount}
	}
}

// HealRival restores the rival's health.
func HealRival(amount int) Effect {
	return func(ctx *Context) Result {
		if amount <= 0 {
			ctx.Log.Log("Nothing to heal.")
			return Result{}
		}
		ctx.Log.Logf("Rival restores %d health.", amount)
		return Result{HealRival: amount}
	}
}

// DamageRival deals direct damage to the rival player.
func DamageRival(amount int) Effect {
	return func(ctx *Context) Result {
		if amount <= 0 {
			ctx.Log.Log("No damage to deal.")
			return Result{}
		}
		ctx.Log.Logf("Deal %d damage to the rival.", amount)
		return Result{DamageRival: amount}
	}
}

// DamageSelf deals damage to the acting player.
func DamageSelf(amount int) Effect {
	return func(ctx *Context) Result {
		if amount <= 0 {
			ctx.Log.Log("No damage to deal.")
			return Result{}
		}
		ctx.Log.Logf("Take %d damage.", amount)
		return Result{DamageSelf: amount}
	}
}

// DrainRival deals damage to the rival and restores the same amount to the
// acting player.
func DrainRival(amount int) Effect {
	return func(ctx *Context) Result {
		if amount <= 0 {
			ctx.Log.Log("Nothing to drain.")
			return Result{}
		}
		ctx.Log.Logf("Drain %d health from the rival.", amount)
		return Result{DamageRival: amount, Heal: amount}
	}
}

// Draw draws cards for the acting player.
func Draw(count int) Effect {
	return func(ctx *Context) Result {
		if count <= 0 {
			ctx.Log.Log("Nothing to draw.")
			return Result{}
		}
		ctx.Log.Logf("Draw %d.", count)
		return Result{Draw: count}
	}
}

// DrawRival draws cards for the rival.
func DrawRival(count int) Effect {
	return func(ctx *Context) Result {
		if count <= 0 {
			ctx.Log.Log("Nothing to draw.")
			return Result{}
		}
		ctx.Log.Logf("Rival draws %d.", count)
		return Result{DrawRival: count}
	}
}

// MillDeck sends cards from the top of the acting player's deck to carrion.
func MillDeck(count int) Effect {
	return func(ctx *Context) Result {
		if count <= 0 || ctx.Player.DeckCount() == 0 {
			ctx.Log.Log("Deck is empty.")
			return Result{}
		}
		ctx.Log.Logf("Mill %d.", count)
		return Result{Mill: count}
	}
}

// MillRival sends cards from the top of the rival's deck to carrion.
func MillRival(count int) Effect {
	return func(ctx *Context) Result {
		if count <= 0 || ctx.Opponent.DeckCount() == 0 {
			ctx.Log.Log("Rival's deck is empty.")
			return Result{}
		}
		ctx.Log.Logf("Rival mills %d.", count)
		return Result{MillRival: count}
	}
}

// DiscardRandom discards random cards from the acting player's hand.
func DiscardRandom(count int) Effect {
	return func(ctx *Context) Result {
		if count <= 0 || len(ctx.Player.Hand) == 0 {
			ctx.Log.Log("No cards to discard.")
			return Result{}
		}
		ctx.Log.Logf("Discard %d at random.", count)
		return Result{DiscardRandom: count}
	}
}

// DiscardRivalRandom discards random cards from the rival's hand.
func DiscardRivalRandom(count int) Effect {
	return func(ctx *Context) Result {
		if count <= 0 || len(ctx.Opponent.Hand) == 0 {
			ctx.Log.Log("Rival has no cards to discard.")
			return Result{}
		}
		ctx.Log.Logf("Rival discards %d at random.", count)
		return Result{DiscardRivalRandom: count}
	}
}

// HealPerFriendly restores health per friendly creature on the field.
func HealPerFriendly(amount int) Effect {
	return func(ctx *Context) Result {
		count := ctx.Player.CreatureCount()
		if amount <= 0 || count == 0 {
			ctx.Log.Log("No friendly creatures.")
			return Result{}
		}
		total := amount * count
		ctx.Log.Logf("Restore %d health (%d per friendly creature).", total, amount)
		return Result{Heal: total}
	}
}

// DamageRivalPerCarrion deals rival damage per card in the acting player's
// carrion pile.
func DamageRivalPerCarrion(amount int) Effect {
	return func(ctx *Context) Result {
		count := len(ctx.Player.Carrion)
		if amount <= 0 || count == 0 {
			ctx.Log.Log("Carrion is empty.")
			return Result{}
		}
		total := amount * count
		ctx.Log.Logf("Deal %d damage to the rival (%d per carrion).", total, amount)
		return Result{DamageRival: total}
	}
}

// --- Single-target primitives ---
// The target is resolved from the context by reference (self, target,
// attacker); a missing reference is a logged no-op, never a panic.

// DamageCreature deals damage to the referenced creature.
func DamageCreature(ref TargetRef, amount int) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil || amount <= 0 {
			ctx.Log.Logf("No %s to damage.", ref)
			return Result{}
		}
		ctx.Log.Logf("Deal %d damage to %s.", amount, c.DisplayString())
		return Result{DamageCreature: &CreatureDamage{Creature: c, Amount: amount}}
	}
}

// KillCreature kills the referenced creature outright.
func KillCreature(ref TargetRef) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil {
			ctx.Log.Logf("No %s to kill.", ref)
			return Result{}
		}
		ctx.Log.Logf("Kill %s.", c.DisplayString())
		return Result{KillCreature: c}
	}
}

// HealCreature restores health to the referenced creature.
func HealCreature(ref TargetRef, amount int) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil || amount <= 0 {
			ctx.Log.Logf("No %s to heal.", ref)
			return Result{}
		}
		ctx.Log.Logf("Restore %d health to %s.", amount, c.DisplayString())
		return Result{HealCreature: &CreatureHeal{Creature: c, Amount: amount}}
	}
}

// BuffStats modifies the referenced creature's attack and health.
func BuffStats(ref TargetRef, attack, health int) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil || (attack == 0 && health == 0) {
			ctx.Log.Logf("No %s to buff.", ref)
			return Result{}
		}
		ctx.Log.Logf("%s gains %+d/%+d.", c.DisplayString(), attack, health)
		return Result{BuffStats: []StatChange{{Creature: c, Attack: attack, Health: health}}}
	}
}

// SetStats sets the referenced creature's stats to fixed values.
func SetStats(ref TargetRef, attack, health int) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil {
			ctx.Log.Logf("No %s to change.", ref)
			return Result{}
		}
		ctx.Log.Logf("%s becomes %d/%d.", c.DisplayString(), attack, health)
		return Result{SetStats: &StatChange{Creature: c, Attack: attack, Health: health}}
	}
}

// FreezeCreature freezes the referenced creature.
func FreezeCreature(ref TargetRef) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil {
			ctx.Log.Logf("No %s to freeze.", ref)
			return Result{}
		}
		ctx.Log.Logf("Freeze %s.", c.DisplayString())
		return Result{FreezeCreatures: &FreezeGroup{Creatures: []*game.Creature{c}, OwnerIndex: c.Owner}}
	}
}

// ReturnToHand bounces the referenced creature to its owner's hand.
func ReturnToHand(ref TargetRef) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil {
			ctx.Log.Logf("No %s to return.", ref)
			return Result{}
		}
		ctx.Log.Logf("Return %s to hand.", c.DisplayString())
		return Result{ReturnToHand: &ReturnGroup{Creatures: []*game.Creature{c}, OwnerIndex: c.Owner}}
	}
}

// GrantKeyword grants a keyword to the referenced creature.
func GrantKeyword(ref TargetRef, k game.Keyword) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil || k == game.KeywordNone {
			ctx.Log.Logf("No %s to grant %s.", ref, k)
			return Result{}
		}
		ctx.Log.Logf("%s gains %s.", c.DisplayString(), k)
		return Result{GrantKeywords: []KeywordChange{{Creature: c, Keyword: k}}}
	}
}

// RemoveKeyword strips a keyword from the referenced creature.
func RemoveKeyword(ref TargetRef, k game.Keyword) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil || !c.HasKeyword(k) {
			ctx.Log.Logf("No %s with %s.", ref, k)
			return Result{}
		}
		ctx.Log.Logf("%s loses %s.", c.DisplayString(), k)
		return Result{RemoveKeywords: []KeywordChange{{Creature: c, Keyword: k}}}
	}
}

// RemoveAbilities strips the referenced creature's abilities.
func RemoveAbilities(ref TargetRef) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil {
			ctx.Log.Logf("No %s to neutralize.", ref)
			return Result{}
		}
		ctx.Log.Logf("%s loses its abilities.", c.DisplayString())
		return Result{RemoveAbilities: c}
	}
}

// SacrificeSelf kills the ability's own source creature.
func SacrificeSelf() Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(RefSelf)
		if c == nil {
			ctx.Log.Log("No creature to sacrifice.")
			return Result{}
		}
		ctx.Log.Logf("%s sacrifices itself.", c.DisplayString())
		return Result{KillCreature: c}
	}
}

// BuffPerCarrion buffs the referenced creature per card in the acting
// player's carrion pile.
func BuffPerCarrion(ref TargetRef, attack, health int) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		count := len(ctx.Player.Carrion)
		if c == nil || count == 0 {
			ctx.Log.Log("Carrion is empty.")
			return Result{}
		}
		ctx.Log.Logf("%s gains %+d/%+d (%d carrion).", c.DisplayString(), attack*count, health*count, count)
		return Result{BuffStats: []StatChange{{Creature: c, Attack: attack * count, Health: health * count}}}
	}
}

// CopyTargetStats sets the source creature's stats to the combat target's.
func CopyTargetStats() Effect {
	return func(ctx *Context) Result {
		self := ctx.resolveRef(RefSelf)
		target := ctx.resolveRef(RefTarget)
		if self == nil || target == nil {
			ctx.Log.Log("No stats to copy.")
			return Result{}
		}
		ctx.Log.Logf("%s copies %s.", self.Card.Name, target.DisplayString())
		return Result{SetStats: &StatChange{Creature: self, Attack: target.Attack, Health: target.Health}}
	}
}

// SwapOwnStats swaps the referenced creature's attack and health.
func SwapOwnStats(ref TargetRef) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil {
			ctx.Log.Logf("No %s to change.", ref)
			return Result{}
		}
		ctx.Log.Logf("%s swaps attack and health.", c.DisplayString())
		return Result{SetStats: &StatChange{Creature: c, Attack: c.Health, Health: c.Attack}}
	}
}

// --- Summoning primitives ---

// SummonToken summons a fresh token creature to the acting player's field.
func SummonToken(name string, attack, health int, t game.CreatureType) Effect {
	return func(ctx *Context) Result {
		if ctx.Player.FreeSlot() < 0 {
			ctx.Log.Log("No room on the field.")
			return Result{}
		}
		card := &game.Card{
			Name:         name,
			Kind:         game.CardCreature,
			CreatureType: t,
			Attack:       attack,
			Health:       health,
		}
		ctx.Log.Logf("Summon %s (%d/%d).", name, attack, health)
		return Result{Summon: []SummonOp{{Card: card, PlayerIndex: ctx.PlayerIndex}}}
	}
}

// SummonCopy summons a copy of the referenced creature's card.
func SummonCopy(ref TargetRef) Effect {
	return func(ctx *Context) Result {
		c := ctx.resolveRef(ref)
		if c == nil {
			ctx.Log.Logf("No %s to copy.", ref)
			return Result{}
		}
		if ctx.Player.FreeSlot() < 0 {
			ctx.Log.Log("No room on the field.")
			return Result{}
		}
		ctx.Log.Logf("Summon a copy of %s.", c.Card.Name)
		return Result{Summon: []SummonOp{{Card: c.Card, PlayerIndex: ctx.PlayerIndex}}}
	}
}
