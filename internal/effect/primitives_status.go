package effect

import "github.com/Godeaux/TCG-sub003/internal/game"

// Status mechanics (web, shell, pride). These follow the same descriptor
// contract as every other primitive: the downstream layer mutates the
// creature's keyword set when it applies GrantKeywords/RemoveKeywords.

// SpinWeb webs the attacking creature, pinning it in place.
func SpinWeb() Effect {
	return func(ctx *Context) Result {
		c := ctx.refreshCreature(ctx.Attacker)
		if c == nil {
			ctx.Log.Log("No attacker to web.")
			return Result{}
		}
		ctx.Log.Logf("%s is caught in the web.", c.DisplayString())
		return Result{GrantKeywords: []KeywordChange{{Creature: c, Keyword: game.KeywordWebbed}}}
	}
}

// GrowShell grants Shell to the ability's source creature.
func GrowShell() Effect {
	return GrantKeyword(RefSelf, game.KeywordShell)
}

// EmboldenPride buffs every friendly Pride creature.
func EmboldenPride(attack, health int) Effect {
	return func(ctx *Context) Result {
		var changes []StatChange
		for _, c := range ctx.Player.Creatures() {
			if c.HasKeyword(game.KeywordPride) {
				changes = append(changes, StatChange{Creature: c, Attack: attack, Health: health})
			}
		}
		if len(changes) == 0 {
			ctx.Log.Log("No pride to embolden.")
			return Result{}
		}
		ctx.Log.Logf("The pride gains %+d/%+d.", attack, health)
		return Result{BuffStats: changes}
	}
}

// GrantLure grants Lure to the source creature.
func GrantLure() Effect {
	return GrantKeyword(RefSelf, game.KeywordLure)
}

// GrantInvisible grants Invisible to the source creature.
func GrantInvisible() Effect {
	return GrantKeyword(RefSelf, game.KeywordInvisible)
}

// GrantAcuity grants Acuity to the source creature.
func GrantAcuity() Effect {
	return GrantKeyword(RefSelf, game.KeywordAcuity)
}

// GrantHidden grants Hidden to the source creature.
func GrantHidden() Effect {
	return GrantKeyword(RefSelf, game.KeywordHidden)
}

// ExposeEnemies strips Invisible and Hidden from every enemy creature.
func ExposeEnemies() Effect {
	return func(ctx *Context) Result {
		var changes []KeywordChange
		for _, c := range ctx.Opponent.Creatures() {
			if c.HasKeyword(game.KeywordInvisible) {
				changes = append(changes, KeywordChange{Creature: c, Keyword: game.KeywordInvisible})
			}
			if c.HasKeyword(game.KeywordHidden) {
				changes = append(changes, KeywordChange{Creature: c, Keyword: game.KeywordHidden})
			}
		}
		if len(changes) == 0 {
			ctx.Log.Log("No enemies to expose.")
			return Result{}
		}
		ctx.Log.Log("Enemy creatures are exposed.")
		return Result{RemoveKeywords: changes}
	}
}
