// Package effect implements the effect resolution engine: the interpreter
// that turns a card's declarative effect definition into descriptors of
// game-state changes for the downstream mutation layer to apply.
package effect

import (
	"github.com/Godeaux/TCG-sub003/internal/game"
	"github.com/Godeaux/TCG-sub003/internal/log"
)

// Context is the ephemeral per-invocation view an effect resolves against.
// The turn/combat layer assembles one per trigger; Player and Opponent always
// reflect the acting player's perspective.
type Context struct {
	Log   log.Recorder
	State *game.State

	Player   *game.PlayerState
	Opponent *game.PlayerState

	PlayerIndex   int
	OpponentIndex int

	// Creature is the ability source; Target and Attacker are the combat
	// participants when the trigger is combat-related. Any of these may be nil.
	Creature *game.Creature
	Target   *game.Creature
	Attacker *game.Creature

	// TrapContext marks a face-down trap trigger. Trap primitives re-resolve
	// creature references by instance ID because state synchronization can
	// replace field objects between trigger capture and effect execution.
	TrapContext bool
}

// NewContext assembles a context for the given acting player.
func NewContext(state *game.State, playerIndex int, rec log.Recorder) *Context {
	opp := state.Opponent(playerIndex)
	return &Context{
		Log:           rec,
		State:         state,
		Player:        state.Players[playerIndex],
		Opponent:      state.Players[opp],
		PlayerIndex:   playerIndex,
		OpponentIndex: opp,
	}
}

// TargetRef names the context slot a single-target primitive resolves against.
type TargetRef string

const (
	RefSelf     TargetRef = "self"
	RefTarget   TargetRef = "target"
	RefAttacker TargetRef = "attacker"
)

// resolveRef looks up the concrete creature for a target reference.
// Trap contexts refresh the reference against the live field first.
func (ctx *Context) resolveRef(ref TargetRef) *game.Creature {
	var c *game.Creature
	switch ref {
	case RefSelf:
		c = ctx.Creature
	case RefTarget:
		c = ctx.Target
	case RefAttacker:
		c = ctx.Attacker
	}
	if ctx.TrapContext {
		c = ctx.refreshCreature(c)
	}
	return c
}

// refreshCreature re-resolves a possibly stale creature reference by matching
// its instance ID against the current field arrays, opponent's field first,
// then the acting player's, falling back to the original reference.
func (ctx *Context) refreshCreature(c *game.Creature) *game.Creature {
	if c == nil {
		return nil
	}
	if live := ctx.Opponent.FindCreature(c.InstanceID); live != nil {
		return live
	}
	if live := ctx.Player.FindCreature(c.InstanceID); live != nil {
		return live
	}
	return c
}
