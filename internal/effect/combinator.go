package effect

// Predicate gates a conditional effect.
type Predicate func(ctx *Context) bool

// Composite invokes each effect against the same context in order and merges
// the non-empty results: zero is a no-op, one is returned verbatim, several
// nest under Composite. Sub-effects that each open a prompt are spliced into
// a selection chain rather than merged. Order matters; earlier effects may
// change what later ones observe.
func Composite(effects []Effect) Effect {
	return func(ctx *Context) Result {
		results := make([]Result, 0, len(effects))
		for _, eff := range effects {
			results = append(results, eff(ctx))
		}
		return MergeWithSelections(results)
	}
}

// Repeat invokes the same effect count times sequentially against the same
// context, merging identically to Composite.
func Repeat(eff Effect, count int) Effect {
	return func(ctx *Context) Result {
		if count <= 0 {
			ctx.Log.Log("Nothing to repeat.")
			return Result{}
		}
		results := make([]Result, 0, count)
		for i := 0; i < count; i++ {
			results = append(results, eff(ctx))
		}
		return MergeWithSelections(results)
	}
}

// Conditional runs thenEffect when the predicate holds, elseEffect otherwise.
// The branches are mutually exclusive; a nil elseEffect makes the false case
// a silent no-op.
func Conditional(pred Predicate, thenEffect, elseEffect Effect) Effect {
	return func(ctx *Context) Result {
		if pred(ctx) {
			return thenEffect(ctx)
		}
		if elseEffect != nil {
			return elseEffect(ctx)
		}
		return Result{}
	}
}
