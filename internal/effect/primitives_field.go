package effect

import "github.com/Godeaux/TCG-sub003/internal/game"

// Field-scanning primitives filter the relevant field arrays and describe one
// operation per owner. An empty filtered set is a logged no-op rather than an
// empty-array operation.

// Destroy destroys every creature in the target group.
func Destroy(g Group) Effect {
	return func(ctx *Context) Result {
		var results []Result
		for _, side := range ctx.resolveGroup(g) {
			if len(side.creatures) == 0 {
				continue
			}
			results = append(results, Result{DestroyCreatures: &DestroyGroup{
				Creatures:  side.creatures,
				OwnerIndex: side.ownerIndex,
			}})
		}
		if len(results) == 0 {
			ctx.Log.Logf("No %s to destroy.", g)
			return Result{}
		}
		ctx.Log.Logf("Destroy %s.", g)
		return mergeResults(results)
	}
}

// KillAll destroys every creature on both fields.
func KillAll() Effect {
	return Destroy(GroupAllCreatures)
}

// KillAllPrey destroys every prey creature on both fields.
func KillAllPrey() Effect {
	return func(ctx *Context) Result {
		var results []Result
		for _, g := range []Group{GroupFriendlyPrey, GroupEnemyPrey} {
			for _, side := range ctx.resolveGroup(g) {
				if len(side.creatures) == 0 {
					continue
				}
				results = append(results, Result{DestroyCreatures: &DestroyGroup{
					Creatures:  side.creatures,
					OwnerIndex: side.ownerIndex,
				}})
			}
		}
		if len(results) == 0 {
			ctx.Log.Log("No prey to destroy.")
			return Result{}
		}
		ctx.Log.Log("Destroy all prey.")
		return mergeResults(results)
	}
}

// freezeGroup freezes every creature in the given enemy group.
func freezeGroup(g Group, what string) Effect {
	return func(ctx *Context) Result {
		creatures := ctx.groupCreatures(g)
		if len(creatures) == 0 {
			ctx.Log.Logf("No %s to freeze.", what)
			return Result{}
		}
		ctx.Log.Logf("Freeze all %s.", what)
		return Result{FreezeCreatures: &FreezeGroup{Creatures: creatures, OwnerIndex: ctx.OpponentIndex}}
	}
}

// FreezeAllEnemies freezes every enemy creature.
func FreezeAllEnemies() Effect {
	return freezeGroup(GroupEnemyCreatures, "enemies")
}

// FreezeAllEnemyPrey freezes every enemy prey creature.
func FreezeAllEnemyPrey() Effect {
	return freezeGroup(GroupEnemyPrey, "enemy prey")
}

// BuffAllFriendly buffs every friendly creature.
func BuffAllFriendly(attack, health int) Effect {
	return func(ctx *Context) Result {
		creatures := ctx.Player.Creatures()
		if len(creatures) == 0 {
			ctx.Log.Log("No friendly creatures to buff.")
			return Result{}
		}
		changes := make([]StatChange, 0, len(creatures))
		for _, c := range creatures {
			changes = append(changes, StatChange{Creature: c, Attack: attack, Health: health})
		}
		ctx.Log.Logf("Friendly creatures gain %+d/%+d.", attack, health)
		return Result{BuffStats: changes}
	}
}

// BuffAllOfType buffs every friendly creature of the given type.
func BuffAllOfType(t game.CreatureType, attack, health int) Effect {
	return func(ctx *Context) Result {
		creatures := ctx.Player.CreaturesOfType(t)
		if len(creatures) == 0 {
			ctx.Log.Logf("No friendly %s to buff.", t)
			return Result{}
		}
		changes := make([]StatChange, 0, len(creatures))
		for _, c := range creatures {
			changes = append(changes, StatChange{Creature: c, Attack: attack, Health: health})
		}
		ctx.Log.Logf("Friendly %s creatures gain %+d/%+d.", t, attack, health)
		return Result{BuffStats: changes}
	}
}

// DamageAllEnemies deals damage to every reachable enemy creature.
func DamageAllEnemies(amount int) Effect {
	return func(ctx *Context) Result {
		creatures := ctx.groupCreatures(GroupEnemyCreatures)
		if amount <= 0 || len(creatures) == 0 {
			ctx.Log.Log("No enemies to damage.")
			return Result{}
		}
		results := make([]Result, 0, len(creatures))
		for _, c := range creatures {
			results = append(results, Result{DamageCreature: &CreatureDamage{Creature: c, Amount: amount}})
		}
		ctx.Log.Logf("Deal %d damage to all enemies.", amount)
		return mergeResults(results)
	}
}

// DamageAllCreatures deals damage to every creature on both fields.
func DamageAllCreatures(amount int) Effect {
	return func(ctx *Context) Result {
		creatures := ctx.groupCreatures(GroupAllCreatures)
		if amount <= 0 || len(creatures) == 0 {
			ctx.Log.Log("No creatures to damage.")
			return Result{}
		}
		results := make([]Result, 0, len(creatures))
		for _, c := range creatures {
			results = append(results, Result{DamageCreature: &CreatureDamage{Creature: c, Amount: amount}})
		}
		ctx.Log.Logf("Deal %d damage to every creature.", amount)
		return mergeResults(results)
	}
}

// HealAllFriendly restores health to every friendly creature.
func HealAllFriendly(amount int) Effect {
	return func(ctx *Context) Result {
		creatures := ctx.Player.Creatures()
		if amount <= 0 || len(creatures) == 0 {
			ctx.Log.Log("No friendly creatures to heal.")
			return Result{}
		}
		results := make([]Result, 0, len(creatures))
		for _, c := range creatures {
			results = append(results, Result{HealCreature: &CreatureHeal{Creature: c, Amount: amount}})
		}
		ctx.Log.Logf("Restore %d health to friendly creatures.", amount)
		return mergeResults(results)
	}
}

// GrantKeywordAllFriendly grants a keyword to every friendly creature.
func GrantKeywordAllFriendly(k game.Keyword) Effect {
	return func(ctx *Context) Result {
		creatures := ctx.Player.Creatures()
		if k == game.KeywordNone || len(creatures) == 0 {
			ctx.Log.Log("No friendly creatures.")
			return Result{}
		}
		changes := make([]KeywordChange, 0, len(creatures))
		for _, c := range creatures {
			changes = append(changes, KeywordChange{Creature: c, Keyword: k})
		}
		ctx.Log.Logf("Friendly creatures gain %s.", k)
		return Result{GrantKeywords: changes}
	}
}

// RemoveEnemyKeyword strips a keyword from every enemy creature that carries
// it. Keyword removal is not targeting, so the raw field array is scanned;
// otherwise an Invisible creature could never be exposed.
func RemoveEnemyKeyword(k game.Keyword) Effect {
	return func(ctx *Context) Result {
		var changes []KeywordChange
		for _, c := range ctx.Opponent.Creatures() {
			if c.HasKeyword(k) {
				changes = append(changes, KeywordChange{Creature: c, Keyword: k})
			}
		}
		if len(changes) == 0 {
			ctx.Log.Logf("No enemies with %s.", k)
			return Result{}
		}
		ctx.Log.Logf("Enemy creatures lose %s.", k)
		return Result{RemoveKeywords: changes}
	}
}

// ReturnAllEnemiesToHand bounces every reachable enemy creature.
func ReturnAllEnemiesToHand() Effect {
	return func(ctx *Context) Result {
		creatures := ctx.groupCreatures(GroupEnemyCreatures)
		if len(creatures) == 0 {
			ctx.Log.Log("No enemies to return.")
			return Result{}
		}
		ctx.Log.Log("Return all enemies to hand.")
		return Result{ReturnToHand: &ReturnGroup{Creatures: creatures, OwnerIndex: ctx.OpponentIndex}}
	}
}
