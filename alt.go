package ruled

// Or tries `a` and returns what it matched.  Only if `a` fails is `b`
// tried, and it's given the very same input `a` was given.  Ordering
// is the only disambiguation: `b` is never attempted once `a`
// matches, even if `b` would match more of the input.  Arms that
// match different types can be reconciled with Map.
func Or[I, M, E any](a Rule[I, M, E], b Rule[I, M, E]) RuleFn[I, M, E] {
	return func(input I) Outcome[I, M, E] {
		return OutcomeOrElse(a.Apply(input), func(E) Outcome[I, M, E] {
			return b.Apply(input)
		})
	}
}

// OneOf walks through `rules` and returns the first one to match,
// trying each of them against the same input.  The list may hold
// rules of different concrete types as long as they share the same
// input, match and failure types.  If no alternative matches, the
// failure of the last one is returned.  An empty list fails with the
// zero value of `E`.
func OneOf[I, M, E any](rules ...Rule[I, M, E]) RuleFn[I, M, E] {
	return func(input I) Outcome[I, M, E] {
		var failure E
		for _, rule := range rules {
			o := rule.Apply(input)
			if o.matched {
				return o
			}
			failure = o.failure
		}
		return Expected[I, M](failure)
	}
}
