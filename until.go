package ruled

// Until applies `content` repeatedly, folding its matches with
// `concat`, until `term` matches.  `term` is always tried first, so
// Until can match nothing at all when the input starts with the
// terminator.  The match is the accumulated content paired with what
// `term` matched, and the remaining input is what `term` left.
//
// If neither `term` nor `content` match, Until fails with the failure
// of `content`.  A `content` rule that matches empty input while
// `term` never matches makes Until loop forever; including End in
// the terminator is the usual way to rule that out.
func Until[I, M, U, C, E, Q any](content Rule[I, M, E], term Rule[I, U, Q], concat Concat[C, M, C]) RuleFn[I, Tuple2[C, U], E] {
	return func(input I) Outcome[I, Tuple2[C, U], E] {
		var acc C
		for {
			if t := term.Apply(input); t.matched {
				return Match[I, Tuple2[C, U], E](Tuple2[C, U]{V1: acc, V2: t.value}, t.rest)
			}
			o := content.Apply(input)
			if !o.matched {
				return Expected[I, Tuple2[C, U]](o.failure)
			}
			input = o.rest
			acc = concat(acc, o.value)
		}
	}
}

// UntilVec is Until collecting each content match into a slice
func UntilVec[I, M, U, E, Q any](content Rule[I, M, E], term Rule[I, U, Q]) RuleFn[I, Tuple2[[]M, U], E] {
	return Until(content, term, Push[M])
}
