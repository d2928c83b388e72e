package effect

// Selection chain merging. When several sub-results of one definition each
// request player input, last-write-wins merging would silently drop all but
// one prompt. Instead the prompts are linked: the first request's OnSelect is
// wrapped so that, after the original continuation runs, the next pending
// prompt is spliced into the returned result. The external driver walks the
// chain one prompt at a time; each link's own immediate contribution survives
// while the chain advances.

// MergeWithSelections merges the ordered sub-results of a definition
// sequence: immediate results merge unconditionally, a single UI-requiring
// result merges directly, and multiple UI results become a walkable chain.
func MergeWithSelections(results []Result) Result {
	var immediates, uis []Result
	for _, r := range results {
		if r.Empty() {
			continue
		}
		if r.HasSelection() {
			uis = append(uis, r)
		} else {
			immediates = append(immediates, r)
		}
	}

	base := mergeResults(immediates)
	if len(uis) == 0 {
		return base
	}
	return combine(base, spliceChain(uis))
}

// spliceChain links multiple UI-requiring results into a single chain headed
// by the first.
func spliceChain(uis []Result) Result {
	head := uis[0]
	if len(uis) == 1 {
		return head
	}
	rest := append([]Result(nil), uis[1:]...)
	return wrapSelection(head, func(res Result) Result {
		next := spliceChain(rest)
		if !res.HasSelection() {
			return combine(res, next)
		}
		// The continuation opened its own prompt; the rest of the chain
		// waits behind it.
		res.PendingSelections = append(res.PendingSelections, next)
		return res
	})
}

// wrapSelection copies the result's request and wraps its continuation so the
// original request object is left untouched.
func wrapSelection(r Result, after func(Result) Result) Result {
	switch {
	case r.SelectTarget != nil:
		req := *r.SelectTarget
		orig := req.OnSelect
		req.OnSelect = func(v Value) Result {
			var res Result
			if orig != nil {
				res = orig(v)
			}
			return after(res)
		}
		r.SelectTarget = &req
	case r.SelectOption != nil:
		req := *r.SelectOption
		orig := req.OnSelect
		req.OnSelect = func(id string) Result {
			var res Result
			if orig != nil {
				res = orig(id)
			}
			return after(res)
		}
		r.SelectOption = &req
	}
	return r
}

// combine merges two results into one, keeping a's prompt (if any) as the
// fresh prompt and queueing b's behind it.
func combine(a, b Result) Result {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}

	out := mergeResults(append(immediateParts(a), immediateParts(b)...))

	pending := append(append([]Result(nil), a.PendingSelections...), b.PendingSelections...)
	out.SelectTarget = a.SelectTarget
	out.SelectOption = a.SelectOption
	if !out.HasSelection() {
		out.SelectTarget = b.SelectTarget
		out.SelectOption = b.SelectOption
	} else if b.HasSelection() {
		pending = append(pending, Result{SelectTarget: b.SelectTarget, SelectOption: b.SelectOption})
	}
	out.PendingSelections = pending
	return out
}

// immediateParts strips the interaction fields from a result, returning its
// immediate contribution as merge input (or nothing if only a prompt).
func immediateParts(r Result) []Result {
	r.SelectTarget = nil
	r.SelectOption = nil
	r.PendingSelections = nil
	if r.Empty() {
		return nil
	}
	return []Result{r}
}

// --- Stepper ---

// Walker drives a result's selection chain to completion on behalf of an
// external driver (CLI, tests). PickTarget and PickOption choose on the
// player's behalf; returning false declines the prompt.
type Walker struct {
	PickTarget func(req *SelectionRequest, candidates []Candidate) (Value, bool)
	PickOption func(req *OptionRequest) (string, bool)
}

// Walk settles a result and every prompt continuation reachable from it, in
// chain order, and returns the settled immediate results. Candidate lists are
// evaluated here, after earlier links have settled, honoring the lazy
// producer contract. A prompt with zero candidates is skipped; the UI is
// never shown for an empty list.
func (w Walker) Walk(r Result) []Result {
	var settled []Result
	stack := []Result{r}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		selTarget := cur.SelectTarget
		selOption := cur.SelectOption
		pending := cur.PendingSelections
		cur.SelectTarget = nil
		cur.SelectOption = nil
		cur.PendingSelections = nil
		if !cur.Empty() {
			settled = append(settled, cur)
		}

		// Pending prompts run after the current continuation: push them
		// first so the continuation lands on top.
		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}

		switch {
		case selTarget != nil:
			candidates := selTarget.ResolveCandidates()
			if len(candidates) == 0 || w.PickTarget == nil {
				continue
			}
			if v, ok := w.PickTarget(selTarget, candidates); ok {
				stack = append(stack, selTarget.OnSelect(v))
			}
		case selOption != nil:
			if len(selOption.Options) == 0 || w.PickOption == nil {
				continue
			}
			if id, ok := w.PickOption(selOption); ok {
				stack = append(stack, selOption.OnSelect(id))
			}
		}
	}
	return settled
}

// FirstChoice is a Walker that always picks the first candidate and the first
// option, for scripted drivers and smoke tests.
var FirstChoice = Walker{
	PickTarget: func(_ *SelectionRequest, candidates []Candidate) (Value, bool) {
		return candidates[0].Value, true
	},
	PickOption: func(req *OptionRequest) (string, bool) {
		return req.Options[0].ID, true
	},
}
