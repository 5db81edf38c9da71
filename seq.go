package ruled

// Cat applies `a` and then `b` to what `a` left, and folds both
// matched values into one with `concat`.  If either fails the whole
// sequence fails with that failure.  Nothing `a` consumed is visible
// to the caller in that case, since the caller still holds the input
// it passed in.
//
//	ruled.Cat(ruled.Char('@'), ruled.Char('#'), ruled.Splice)
func Cat[I, A, B, C, E any](a Rule[I, A, E], b Rule[I, B, E], concat Concat[A, B, C]) RuleFn[I, C, E] {
	return func(input I) Outcome[I, C, E] {
		return OutcomeAndThen(a.Apply(input), func(l A, rest I) Outcome[I, C, E] {
			return OutcomeMap(b.Apply(rest), func(r B) C { return concat(l, r) })
		})
	}
}

// Fst applies `a` and then `b`, and keeps only what `a` matched
func Fst[I, A, B, E any](a Rule[I, A, E], b Rule[I, B, E]) RuleFn[I, A, E] {
	return func(input I) Outcome[I, A, E] {
		return OutcomeAndThen(a.Apply(input), func(l A, rest I) Outcome[I, A, E] {
			return OutcomeMap(b.Apply(rest), func(B) A { return l })
		})
	}
}

// Snd applies `a` and then `b`, and keeps only what `b` matched
func Snd[I, A, B, E any](a Rule[I, A, E], b Rule[I, B, E]) RuleFn[I, B, E] {
	return func(input I) Outcome[I, B, E] {
		return OutcomeAndThen(a.Apply(input), func(_ A, rest I) Outcome[I, B, E] {
			return b.Apply(rest)
		})
	}
}
