package ruled

// Map transforms what `rule` matched with `fn`
func Map[I, M, K, E any](rule Rule[I, M, E], fn func(M) K) RuleFn[I, K, E] {
	return func(input I) Outcome[I, K, E] {
		return OutcomeMap(rule.Apply(input), fn)
	}
}

// Into converts the matched value of `rule` into another type.  It's
// Map under a name that reads better when the conversion is trivial.
func Into[I, M, K, E any](rule Rule[I, M, E], convert func(M) K) RuleFn[I, K, E] {
	return Map(rule, convert)
}

// MapFailure transforms the failure of `rule` with `fn`.  That's the
// way two rules with different failure types are made to agree
// before being sequenced or alternated.
func MapFailure[I, M, E, Q any](rule Rule[I, M, E], fn func(E) Q) RuleFn[I, M, Q] {
	return func(input I) Outcome[I, M, Q] {
		return OutcomeMapFailure(rule.Apply(input), fn)
	}
}

// Not is a lookahead that never consumes input.  It swaps the
// outcome of `rule`: a match becomes a failure carrying the matched
// value, and a failure becomes a match carrying the failure value
// along with the untouched input.
func Not[I, M, E any](rule Rule[I, M, E]) RuleFn[I, E, M] {
	return func(input I) Outcome[I, E, M] {
		o := rule.Apply(input)
		if o.matched {
			return Expected[I, E](o.value)
		}
		return Match[I, E, M](o.failure, input)
	}
}

// Opt never fails.  It matches Some of what `rule` matched, or None
// without consuming anything.
func Opt[I, M, E any](rule Rule[I, M, E]) RuleFn[I, Option[M], E] {
	return func(input I) Outcome[I, Option[M], E] {
		o := rule.Apply(input)
		if o.matched {
			return Match[I, Option[M], E](Some(o.value), o.rest)
		}
		return Match[I, Option[M], E](None[M](), input)
	}
}

// OrDefault never fails.  It matches what `rule` matched, or the
// zero value of `M` without consuming anything.
func OrDefault[I, M, E any](rule Rule[I, M, E]) RuleFn[I, M, E] {
	return func(input I) Outcome[I, M, E] {
		o := rule.Apply(input)
		if o.matched {
			return o
		}
		var zero M
		return Match[I, M, E](zero, input)
	}
}

// OrEmpty is OrDefault for string rules, except that the empty match
// is a slice of the input.  It keeps the result usable with Splice.
func OrEmpty[E any](rule Rule[string, string, E]) RuleFn[string, string, E] {
	return func(input string) Outcome[string, string, E] {
		o := rule.Apply(input)
		if o.matched {
			return o
		}
		return Match[string, string, E](input[:0], input)
	}
}

// Filter rejects the matches of `rule` that `pred` doesn't accept.
// Rejections fail with the Predicate descriptor, which tells them
// apart from failures of `rule` itself.
func Filter[I, M any](rule Rule[I, M, Failed], pred func(M) bool) RuleFn[I, M, Failed] {
	return func(input I) Outcome[I, M, Failed] {
		o := rule.Apply(input)
		if o.matched && !pred(o.value) {
			return Expected[I, M](FailedOf(FailedKind_Predicate))
		}
		return o
	}
}

// Pred is Filter for rules of any failure type.  A failure of `rule`
// comes back as Some of its failure, and a rejection by `pred` as
// None.
func Pred[I, M, E any](rule Rule[I, M, E], pred func(M) bool) RuleFn[I, M, Option[E]] {
	return func(input I) Outcome[I, M, Option[E]] {
		o := rule.Apply(input)
		if !o.matched {
			return Expected[I, M](Some(o.failure))
		}
		if !pred(o.value) {
			return Expected[I, M](None[E]())
		}
		return Match[I, M, Option[E]](o.value, o.rest)
	}
}

// AndThen applies `rule` and hands what it matched to `next`, which
// builds the rule applied to the remaining input
func AndThen[I, M, K, E any](rule Rule[I, M, E], next func(M) Rule[I, K, E]) RuleFn[I, K, E] {
	return func(input I) Outcome[I, K, E] {
		return OutcomeAndThen(rule.Apply(input), func(value M, rest I) Outcome[I, K, E] {
			return next(value).Apply(rest)
		})
	}
}

// OrElse applies `rule` and, when it fails, hands the failure to
// `fallback`, which builds the rule applied to the original input
func OrElse[I, M, E, Q any](rule Rule[I, M, E], fallback func(E) Rule[I, M, Q]) RuleFn[I, M, Q] {
	return func(input I) Outcome[I, M, Q] {
		o := rule.Apply(input)
		if o.matched {
			return Match[I, M, Q](o.value, o.rest)
		}
		return fallback(o.failure).Apply(input)
	}
}

// Ended matches only if `rule` consumes the whole input, failing
// with the End descriptor otherwise
func Ended[M any](rule Rule[string, M, Failed]) RuleFn[string, M, Failed] {
	return func(input string) Outcome[string, M, Failed] {
		o := rule.Apply(input)
		if o.matched && o.rest != "" {
			return Expected[string, M](FailedOf(FailedKind_End))
		}
		return o
	}
}

// Slice replaces whatever `rule` matched by the piece of the input it
// consumed
func Slice[M, E any](rule Rule[string, M, E]) RuleFn[string, string, E] {
	return func(input string) Outcome[string, string, E] {
		o := rule.Apply(input)
		if !o.matched {
			return Expected[string, string](o.failure)
		}
		return Match[string, string, E](input[:len(input)-len(o.rest)], o.rest)
	}
}

// And is the lookahead that succeeds where `rule` succeeds, with the
// same matched value, but without consuming any input
func And[I, M, E any](rule Rule[I, M, E]) RuleFn[I, M, E] {
	return func(input I) Outcome[I, M, E] {
		o := rule.Apply(input)
		if o.matched {
			return Match[I, M, E](o.value, input)
		}
		return o
	}
}
