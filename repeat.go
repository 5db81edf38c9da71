package ruled

import "fmt"

// Unbounded is the upper bound of repetitions that have no upper
// bound
const Unbounded = -1

// Range applies `rule` repeatedly, each time to what the previous
// application left, folding every matched value into an accumulator
// with `concat`.  It stops when `rule` fails or when `to` matches
// were collected, whichever comes first.  `to` is a hard cap, so
// reaching it is never a failure, and Unbounded removes it.
//
// The repetition succeeds if at least `from` matches were collected,
// with the input as it was after the last successful match.
// Otherwise it fails with the failure of the last attempt.  It's
// greedy and never gives back matches to let an outer rule succeed.
//
// A `from` above a bounded `to` could never be met, and Range panics
// on it.
func Range[I, M, C, E any](rule Rule[I, M, E], from, to int, concat Concat[C, M, C]) RuleFn[I, C, E] {
	if to != Unbounded && from > to {
		panic(fmt.Sprintf("ruled: range minimum %d above maximum %d", from, to))
	}
	return func(input I) Outcome[I, C, E] {
		var (
			count int
			acc   C
		)
		for {
			if to != Unbounded && count >= to {
				return Match[I, C, E](acc, input)
			}
			o := rule.Apply(input)
			if !o.matched {
				if count >= from {
					return Match[I, C, E](acc, input)
				}
				return Expected[I, C](o.failure)
			}
			count++
			input = o.rest
			acc = concat(acc, o.value)
		}
	}
}

// RangeVec is Range collecting each matched value into a slice
func RangeVec[I, M, E any](rule Rule[I, M, E], from, to int) RuleFn[I, []M, E] {
	return Range(rule, from, to, Push[M])
}

// Many matches `rule` zero or more times.  It never fails.
func Many[I, M, C, E any](rule Rule[I, M, E], concat Concat[C, M, C]) RuleFn[I, C, E] {
	return Range(rule, 0, Unbounded, concat)
}

// Many1 matches `rule` one or more times
func Many1[I, M, C, E any](rule Rule[I, M, E], concat Concat[C, M, C]) RuleFn[I, C, E] {
	return Range(rule, 1, Unbounded, concat)
}

// Repeat matches `rule` exactly `n` times
func Repeat[I, M, C, E any](rule Rule[I, M, E], n int, concat Concat[C, M, C]) RuleFn[I, C, E] {
	return Range(rule, n, n, concat)
}

// Sep matches zero or more `item`s separated by `sep`, collecting
// the items into a slice.  A trailing separator isn't consumed.
func Sep[I, M, S, E any](item Rule[I, M, E], sep Rule[I, S, E]) RuleFn[I, []M, E] {
	tail := RangeVec(Snd(sep, item), 0, Unbounded)
	return func(input I) Outcome[I, []M, E] {
		head := item.Apply(input)
		if !head.matched {
			return Match[I, []M, E](nil, input)
		}
		return OutcomeMap(tail.Apply(head.rest), func(items []M) []M {
			return append([]M{head.value}, items...)
		})
	}
}
