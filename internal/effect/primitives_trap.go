package effect

import "github.com/Godeaux/TCG-sub003/internal/game"

// Trap-context primitives fire when a face-down trap's trigger resolves. The
// creature that sprung the trap was captured at trigger time, but state
// synchronization may have replaced the field objects since, so every one of
// these re-resolves the reference by instance ID before acting.

// triggeringCreature re-resolves the creature that sprung the trap.
func (ctx *Context) triggeringCreature() *game.Creature {
	return ctx.refreshCreature(ctx.Attacker)
}

// NegateAttack cancels the triggering attack.
func NegateAttack() Effect {
	return func(ctx *Context) Result {
		if ctx.triggeringCreature() == nil {
			ctx.Log.Log("No attack to negate.")
			return Result{}
		}
		ctx.Log.Log("The attack is negated.")
		return Result{NegateAttack: true}
	}
}

// NegateAndKillAttacker cancels the attack and kills the attacker.
func NegateAndKillAttacker() Effect {
	return func(ctx *Context) Result {
		c := ctx.triggeringCreature()
		if c == nil {
			ctx.Log.Log("No attack to negate.")
			return Result{}
		}
		ctx.Log.Logf("The attack is negated and %s is killed.", c.DisplayString())
		return Result{NegateAttack: true, KillCreature: c}
	}
}

// KillTriggered kills the creature that sprung the trap.
func KillTriggered() Effect {
	return func(ctx *Context) Result {
		c := ctx.triggeringCreature()
		if c == nil {
			ctx.Log.Log("No creature triggered the trap.")
			return Result{}
		}
		ctx.Log.Logf("Kill %s.", c.DisplayString())
		return Result{KillCreature: c}
	}
}

// DamageTriggered damages the creature that sprung the trap.
func DamageTriggered(amount int) Effect {
	return func(ctx *Context) Result {
		c := ctx.triggeringCreature()
		if c == nil || amount <= 0 {
			ctx.Log.Log("No creature triggered the trap.")
			return Result{}
		}
		ctx.Log.Logf("Deal %d damage to %s.", amount, c.DisplayString())
		return Result{DamageCreature: &CreatureDamage{Creature: c, Amount: amount}}
	}
}

// FreezeTriggered freezes the creature that sprung the trap.
func FreezeTriggered() Effect {
	return func(ctx *Context) Result {
		c := ctx.triggeringCreature()
		if c == nil {
			ctx.Log.Log("No creature triggered the trap.")
			return Result{}
		}
		ctx.Log.Logf("Freeze %s.", c.DisplayString())
		return Result{FreezeCreatures: &FreezeGroup{Creatures: []*game.Creature{c}, OwnerIndex: c.Owner}}
	}
}

// WeakenTriggered lowers the attack of the creature that sprung the trap.
func WeakenTriggered(amount int) Effect {
	return func(ctx *Context) Result {
		c := ctx.triggeringCreature()
		if c == nil || amount <= 0 {
			ctx.Log.Log("No creature triggered the trap.")
			return Result{}
		}
		ctx.Log.Logf("%s loses %d attack.", c.DisplayString(), amount)
		return Result{BuffStats: []StatChange{{Creature: c, Attack: -amount}}}
	}
}

// ReturnTriggeredToHand bounces the creature that sprung the trap.
func ReturnTriggeredToHand() Effect {
	return func(ctx *Context) Result {
		c := ctx.triggeringCreature()
		if c == nil {
			ctx.Log.Log("No creature triggered the trap.")
			return Result{}
		}
		ctx.Log.Logf("Return %s to hand.", c.DisplayString())
		return Result{ReturnToHand: &ReturnGroup{Creatures: []*game.Creature{c}, OwnerIndex: c.Owner}}
	}
}

// RemoveTriggeredCreatureAbilities strips the abilities of the creature that
// sprung the trap.
func RemoveTriggeredCreatureAbilities() Effect {
	return func(ctx *Context) Result {
		c := ctx.triggeringCreature()
		if c == nil {
			ctx.Log.Log("No creature triggered the trap.")
			return Result{}
		}
		ctx.Log.Logf("%s loses its abilities.", c.DisplayString())
		return Result{RemoveAbilities: c}
	}
}

// DamageTriggeredOwner deals damage to the player who controls the creature
// that sprung the trap.
func DamageTriggeredOwner(amount int) Effect {
	return func(ctx *Context) Result {
		c := ctx.triggeringCreature()
		if c == nil || amount <= 0 {
			ctx.Log.Log("No creature triggered the trap.")
			return Result{}
		}
		ctx.Log.Logf("Deal %d damage to %s's owner.", amount, c.Card.Name)
		if c.Owner == ctx.PlayerIndex {
			return Result{DamageSelf: amount}
		}
		return Result{DamageRival: amount}
	}
}

// ProtectDefender grants Shell to the defending creature.
func ProtectDefender() Effect {
	return func(ctx *Context) Result {
		c := ctx.refreshCreature(ctx.Target)
		if c == nil {
			ctx.Log.Log("No defender to protect.")
			return Result{}
		}
		ctx.Log.Logf("%s gains %s.", c.DisplayString(), game.KeywordShell)
		return Result{GrantKeywords: []KeywordChange{{Creature: c, Keyword: game.KeywordShell}}}
	}
}
