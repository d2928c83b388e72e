package effect

import (
	"fmt"

	"github.com/Godeaux/TCG-sub003/internal/game"
)

// params wraps a definition's parameter map. Numeric values arrive as int
// from YAML and as float64 from JSON, so the accessors take both.
type params map[string]any

func (p params) intVal(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

func (p params) strVal(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

func (p params) ref(key string, def TargetRef) TargetRef {
	if v, ok := p[key].(string); ok && v != "" {
		return TargetRef(v)
	}
	return def
}

func (p params) keyword(key string) game.Keyword {
	return game.ParseKeyword(p.strVal(key, ""))
}

func (p params) defs(key string) ([]Definition, error) {
	return defsFromAny(p[key])
}

// optionList decodes the options parameter of a chooseOption definition.
func (p params) optionList() ([]Option, error) {
	raw, ok := p["options"].([]any)
	if !ok {
		if opts, ok := p["options"].([]Option); ok {
			return opts, nil
		}
		return nil, fmt.Errorf("chooseOption: missing options")
	}
	opts := make([]Option, 0, len(raw))
	for i, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("chooseOption: option %d is not a mapping", i)
		}
		op := params(m)
		defs, err := op.defs("effect")
		if err != nil {
			return nil, fmt.Errorf("chooseOption: option %d: %w", i, err)
		}
		opt := Option{
			ID:          op.strVal("id", fmt.Sprintf("option-%d", i)),
			Label:       op.strVal("label", ""),
			Description: op.strVal("description", ""),
			Effect:      defs,
		}
		if opt.Label == "" {
			opt.Label = opt.ID
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

type buildFunc func(r *Registry, p params) (Effect, error)

// Registry maps effect type names to builders. Card data names effects by
// these strings; the registry binds parameters once, at compile time, and
// hands back closures ready to run against any context.
type Registry struct {
	builders   map[string]buildFunc
	predicates map[string]func(p params) Predicate
}

// Compile binds one definition to an executable effect. Unknown type names
// compile to a logged no-op rather than an error, so one bad entry in a card
// file cannot take the whole set down.
func (r *Registry) Compile(def Definition) (Effect, error) {
	build, ok := r.builders[def.Type]
	if !ok {
		name := def.Type
		return func(ctx *Context) Result {
			ctx.Log.Logf("Unknown effect type %q.", name)
			return Result{}
		}, nil
	}
	eff, err := build(r, params(def.Params))
	if err != nil {
		return nil, fmt.Errorf("effect %q: %w", def.Type, err)
	}
	return eff, nil
}

// CompileAll binds a definition sequence.
func (r *Registry) CompileAll(defs []Definition) ([]Effect, error) {
	effects := make([]Effect, 0, len(defs))
	for _, d := range defs {
		eff, err := r.Compile(d)
		if err != nil {
			return nil, err
		}
		effects = append(effects, eff)
	}
	return effects, nil
}

// Resolve compiles and runs a definition sequence against one context,
// merging the sub-results into a single settled (or selection-carrying)
// result.
func (r *Registry) Resolve(defs []Definition, ctx *Context) (Result, error) {
	effects, err := r.CompileAll(defs)
	if err != nil {
		return Result{}, err
	}
	results := make([]Result, 0, len(effects))
	for _, eff := range effects {
		results = append(results, eff(ctx))
	}
	return MergeWithSelections(results), nil
}

func (r *Registry) register(name string, build buildFunc) {
	r.builders[name] = build
}

// registerPlain registers a builder that ignores its parameters.
func (r *Registry) registerPlain(name string, mk func() Effect) {
	r.register(name, func(_ *Registry, _ params) (Effect, error) {
		return mk(), nil
	})
}

func (r *Registry) compilePredicate(p params) (Predicate, error) {
	check := p.strVal("check", "")
	build, ok := r.predicates[check]
	if !ok {
		return nil, fmt.Errorf("unknown condition %q", check)
	}
	return build(p), nil
}

// NewRegistry builds the full effect registry.
func NewRegistry() *Registry {
	r := &Registry{
		builders:   make(map[string]buildFunc),
		predicates: make(map[string]func(params) Predicate),
	}

	// Player resources.
	r.register("heal", func(_ *Registry, p params) (Effect, error) {
		return Heal(p.intVal("amount", 0)), nil
	})
	r.register("healRival", func(_ *Registry, p params) (Effect, error) {
		return HealRival(p.intVal("amount", 0)), nil
	})
	r.register("damageRival", func(_ *Registry, p params) (Effect, error) {
		return DamageRival(p.intVal("amount", 0)), nil
	})
	r.register("damageSelf", func(_ *Registry, p params) (Effect, error) {
		return DamageSelf(p.intVal("amount", 0)), nil
	})
	r.register("drainRival", func(_ *Registry, p params) (Effect, error) {
		return DrainRival(p.intVal("amount", 0)), nil
	})
	r.register("draw", func(_ *Registry, p params) (Effect, error) {
		return Draw(p.intVal("count", 1)), nil
	})
	r.register("drawRival", func(_ *Registry, p params) (Effect, error) {
		return DrawRival(p.intVal("count", 1)), nil
	})
	r.register("millDeck", func(_ *Registry, p params) (Effect, error) {
		return MillDeck(p.intVal("count", 1)), nil
	})
	r.register("millRival", func(_ *Registry, p params) (Effect, error) {
		return MillRival(p.intVal("count", 1)), nil
	})
	r.register("discardRandom", func(_ *Registry, p params) (Effect, error) {
		return DiscardRandom(p.intVal("count", 1)), nil
	})
	r.register("discardRivalRandom", func(_ *Registry, p params) (Effect, error) {
		return DiscardRivalRandom(p.intVal("count", 1)), nil
	})
	r.register("healPerFriendly", func(_ *Registry, p params) (Effect, error) {
		return HealPerFriendly(p.intVal("amount", 1)), nil
	})
	r.register("damageRivalPerCarrion", func(_ *Registry, p params) (Effect, error) {
		return DamageRivalPerCarrion(p.intVal("amount", 1)), nil
	})

	// Single-target creature ops. The ref parameter defaults to the bound
	// target where one exists, matching how card text reads.
	r.register("damageCreature", func(_ *Registry, p params) (Effect, error) {
		return DamageCreature(p.ref("ref", RefTarget), p.intVal("amount", 0)), nil
	})
	r.register("killCreature", func(_ *Registry, p params) (Effect, error) {
		return KillCreature(p.ref("ref", RefTarget)), nil
	})
	r.register("healCreature", func(_ *Registry, p params) (Effect, error) {
		return HealCreature(p.ref("ref", RefTarget), p.intVal("amount", 0)), nil
	})
	r.register("buffStats", func(_ *Registry, p params) (Effect, error) {
		return BuffStats(p.ref("ref", RefSelf), p.intVal("attack", 0), p.intVal("health", 0)), nil
	})
	r.register("setStats", func(_ *Registry, p params) (Effect, error) {
		return SetStats(p.ref("ref", RefTarget), p.intVal("attack", 0), p.intVal("health", 0)), nil
	})
	r.register("freezeCreature", func(_ *Registry, p params) (Effect, error) {
		return FreezeCreature(p.ref("ref", RefTarget)), nil
	})
	r.register("returnToHand", func(_ *Registry, p params) (Effect, error) {
		return ReturnToHand(p.ref("ref", RefTarget)), nil
	})
	r.register("grantKeyword", func(_ *Registry, p params) (Effect, error) {
		k := p.keyword("keyword")
		if k == game.KeywordNone {
			return nil, fmt.Errorf("grantKeyword: unknown keyword %q", p.strVal("keyword", ""))
		}
		return GrantKeyword(p.ref("ref", RefSelf), k), nil
	})
	r.register("removeKeyword", func(_ *Registry, p params) (Effect, error) {
		k := p.keyword("keyword")
		if k == game.KeywordNone {
			return nil, fmt.Errorf("removeKeyword: unknown keyword %q", p.strVal("keyword", ""))
		}
		return RemoveKeyword(p.ref("ref", RefTarget), k), nil
	})
	r.register("removeAbilities", func(_ *Registry, p params) (Effect, error) {
		return RemoveAbilities(p.ref("ref", RefTarget)), nil
	})
	r.registerPlain("sacrificeSelf", SacrificeSelf)
	r.register("buffPerCarrion", func(_ *Registry, p params) (Effect, error) {
		return BuffPerCarrion(p.ref("ref", RefSelf), p.intVal("attack", 0), p.intVal("health", 0)), nil
	})
	r.registerPlain("copyTargetStats", CopyTargetStats)
	r.register("swapOwnStats", func(_ *Registry, p params) (Effect, error) {
		return SwapOwnStats(p.ref("ref", RefSelf)), nil
	})

	// Field scans.
	r.register("destroy", func(_ *Registry, p params) (Effect, error) {
		return Destroy(Group(p.strVal("group", string(GroupEnemyCreatures)))), nil
	})
	r.registerPlain("killAll", KillAll)
	r.registerPlain("killAllPrey", KillAllPrey)
	r.registerPlain("freezeAllEnemies", FreezeAllEnemies)
	r.registerPlain("freezeAllEnemyPrey", FreezeAllEnemyPrey)
	r.register("buffAllFriendly", func(_ *Registry, p params) (Effect, error) {
		return BuffAllFriendly(p.intVal("attack", 0), p.intVal("health", 0)), nil
	})
	r.register("buffAllOfType", func(_ *Registry, p params) (Effect, error) {
		t := game.ParseCreatureType(p.strVal("creatureType", ""))
		if t == game.TypeNone {
			return nil, fmt.Errorf("buffAllOfType: unknown creature type %q", p.strVal("creatureType", ""))
		}
		return BuffAllOfType(t, p.intVal("attack", 0), p.intVal("health", 0)), nil
	})
	r.register("damageAllEnemies", func(_ *Registry, p params) (Effect, error) {
		return DamageAllEnemies(p.intVal("amount", 0)), nil
	})
	r.register("damageAllCreatures", func(_ *Registry, p params) (Effect, error) {
		return DamageAllCreatures(p.intVal("amount", 0)), nil
	})
	r.register("healAllFriendly", func(_ *Registry, p params) (Effect, error) {
		return HealAllFriendly(p.intVal("amount", 0)), nil
	})
	r.register("grantKeywordAllFriendly", func(_ *Registry, p params) (Effect, error) {
		k := p.keyword("keyword")
		if k == game.KeywordNone {
			return nil, fmt.Errorf("grantKeywordAllFriendly: unknown keyword %q", p.strVal("keyword", ""))
		}
		return GrantKeywordAllFriendly(k), nil
	})
	r.register("removeEnemyKeyword", func(_ *Registry, p params) (Effect, error) {
		k := p.keyword("keyword")
		if k == game.KeywordNone {
			return nil, fmt.Errorf("removeEnemyKeyword: unknown keyword %q", p.strVal("keyword", ""))
		}
		return RemoveEnemyKeyword(k), nil
	})
	r.registerPlain("returnAllEnemiesToHand", ReturnAllEnemiesToHand)

	// Interactive.
	r.registerPlain("selectEnemyToKill", SelectEnemyToKill)
	r.register("selectEnemyToDamage", func(_ *Registry, p params) (Effect, error) {
		return SelectEnemyToDamage(p.intVal("amount", 0)), nil
	})
	r.registerPlain("selectEnemyToFreeze", SelectEnemyToFreeze)
	r.registerPlain("selectEnemyToReturn", SelectEnemyToReturn)
	r.register("selectEnemyToWeaken", func(_ *Registry, p params) (Effect, error) {
		return SelectEnemyToWeaken(p.intVal("amount", 0)), nil
	})
	r.registerPlain("selectEnemyToRemoveAbilities", SelectEnemyToRemoveAbilities)
	r.register("selectFriendlyToBuff", func(_ *Registry, p params) (Effect, error) {
		return SelectFriendlyToBuff(p.intVal("attack", 0), p.intVal("health", 0)), nil
	})
	r.register("selectFriendlyToHeal", func(_ *Registry, p params) (Effect, error) {
		return SelectFriendlyToHeal(p.intVal("amount", 0)), nil
	})
	r.registerPlain("selectFriendlyToProtect", SelectFriendlyToProtect)
	r.registerPlain("selectCreatureToKill", SelectCreatureToKill)
	r.register("selectFromGroup", func(r *Registry, p params) (Effect, error) {
		defs, err := p.defs("effect")
		if err != nil {
			return nil, err
		}
		if len(defs) == 0 {
			return nil, fmt.Errorf("selectFromGroup: missing effect")
		}
		inner, err := r.CompileAll(defs)
		if err != nil {
			return nil, err
		}
		return SelectFromGroup(Group(p.strVal("group", string(GroupEnemyCreatures))), Composite(inner)), nil
	})
	r.register("chooseOption", func(r *Registry, p params) (Effect, error) {
		options, err := p.optionList()
		if err != nil {
			return nil, err
		}
		effects := make([]Effect, 0, len(options))
		for _, opt := range options {
			inner, err := r.CompileAll(opt.Effect)
			if err != nil {
				return nil, fmt.Errorf("option %q: %w", opt.ID, err)
			}
			effects = append(effects, Composite(inner))
		}
		return ChooseOption(p.strVal("title", "Choose one"), options, effects), nil
	})
	r.register("tutorFromDeck", func(_ *Registry, p params) (Effect, error) {
		return TutorFromDeck(p.strVal("filter", "any")), nil
	})
	r.registerPlain("raiseCarrion", RaiseCarrion)
	r.registerPlain("discardFromHand", DiscardFromHand)

	// Trap context.
	r.registerPlain("negateAttack", NegateAttack)
	r.registerPlain("negateAndKillAttacker", NegateAndKillAttacker)
	r.registerPlain("killTriggered", KillTriggered)
	r.register("damageTriggered", func(_ *Registry, p params) (Effect, error) {
		return DamageTriggered(p.intVal("amount", 0)), nil
	})
	r.registerPlain("freezeTriggered", FreezeTriggered)
	r.register("weakenTriggered", func(_ *Registry, p params) (Effect, error) {
		return WeakenTriggered(p.intVal("amount", 0)), nil
	})
	r.registerPlain("returnTriggeredToHand", ReturnTriggeredToHand)
	r.registerPlain("removeTriggeredCreatureAbilities", RemoveTriggeredCreatureAbilities)
	r.register("damageTriggeredOwner", func(_ *Registry, p params) (Effect, error) {
		return DamageTriggeredOwner(p.intVal("amount", 0)), nil
	})
	r.registerPlain("protectDefender", ProtectDefender)

	// Status keywords.
	r.registerPlain("spinWeb", SpinWeb)
	r.registerPlain("growShell", GrowShell)
	r.register("emboldenPride", func(_ *Registry, p params) (Effect, error) {
		return EmboldenPride(p.intVal("attack", 0), p.intVal("health", 0)), nil
	})
	r.registerPlain("grantLure", GrantLure)
	r.registerPlain("grantInvisible", GrantInvisible)
	r.registerPlain("grantAcuity", GrantAcuity)
	r.registerPlain("grantHidden", GrantHidden)
	r.registerPlain("exposeEnemies", ExposeEnemies)

	// Summoning.
	r.register("summonToken", func(_ *Registry, p params) (Effect, error) {
		t := game.ParseCreatureType(p.strVal("creatureType", "prey"))
		if t == game.TypeNone {
			return nil, fmt.Errorf("summonToken: unknown creature type %q", p.strVal("creatureType", ""))
		}
		return SummonToken(p.strVal("name", "Token"), p.intVal("attack", 1), p.intVal("health", 1), t), nil
	})
	r.register("summonCopy", func(_ *Registry, p params) (Effect, error) {
		return SummonCopy(p.ref("ref", RefTarget)), nil
	})

	// Combinators.
	r.register("composite", func(r *Registry, p params) (Effect, error) {
		defs, err := p.defs("effects")
		if err != nil {
			return nil, err
		}
		inner, err := r.CompileAll(defs)
		if err != nil {
			return nil, err
		}
		return Composite(inner), nil
	})
	r.register("repeat", func(r *Registry, p params) (Effect, error) {
		defs, err := p.defs("effect")
		if err != nil {
			return nil, err
		}
		inner, err := r.CompileAll(defs)
		if err != nil {
			return nil, err
		}
		return Repeat(Composite(inner), p.intVal("count", 1)), nil
	})
	r.register("conditional", func(r *Registry, p params) (Effect, error) {
		pred, err := r.compilePredicate(p)
		if err != nil {
			return nil, err
		}
		thenDefs, err := p.defs("then")
		if err != nil {
			return nil, err
		}
		if len(thenDefs) == 0 {
			return nil, fmt.Errorf("conditional: missing then branch")
		}
		thenEffects, err := r.CompileAll(thenDefs)
		if err != nil {
			return nil, err
		}
		var elseEffect Effect
		elseDefs, err := p.defs("else")
		if err != nil {
			return nil, err
		}
		if len(elseDefs) > 0 {
			elseEffects, err := r.CompileAll(elseDefs)
			if err != nil {
				return nil, err
			}
			elseEffect = Composite(elseEffects)
		}
		return Conditional(pred, Composite(thenEffects), elseEffect), nil
	})

	registerPredicates(r)
	return r
}

func registerPredicates(r *Registry) {
	r.predicates["rivalHasCreatures"] = func(_ params) Predicate {
		return func(ctx *Context) bool {
			return ctx.Opponent.CreatureCount() > 0
		}
	}
	r.predicates["friendlyCountAtLeast"] = func(p params) Predicate {
		n := p.intVal("amount", 1)
		return func(ctx *Context) bool {
			return ctx.Player.CreatureCount() >= n
		}
	}
	r.predicates["carrionAtLeast"] = func(p params) Predicate {
		n := p.intVal("amount", 1)
		return func(ctx *Context) bool {
			return len(ctx.Player.Carrion) >= n
		}
	}
	r.predicates["healthBelow"] = func(p params) Predicate {
		n := p.intVal("amount", 0)
		return func(ctx *Context) bool {
			return ctx.Player.Health < n
		}
	}
	r.predicates["rivalHealthBelow"] = func(p params) Predicate {
		n := p.intVal("amount", 0)
		return func(ctx *Context) bool {
			return ctx.Opponent.Health < n
		}
	}
	r.predicates["handEmpty"] = func(_ params) Predicate {
		return func(ctx *Context) bool {
			return len(ctx.Player.Hand) == 0
		}
	}
	r.predicates["deckEmpty"] = func(_ params) Predicate {
		return func(ctx *Context) bool {
			return len(ctx.Player.Deck) == 0
		}
	}
	r.predicates["hasAttacker"] = func(_ params) Predicate {
		return func(ctx *Context) bool {
			return ctx.Attacker != nil
		}
	}
}
