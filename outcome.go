package ruled

import "fmt"

// Outcome is what applying a rule produces: either a matched value
// alongside the input that remains after the match, or a failure
// describing what was expected at the point the rule was applied.
//
// On a match, Rest is always a suffix of the input given to the rule.
// On a failure there is no remaining input at all: the caller still
// holds the input it passed in, and that is the position any
// alternative has to be tried from.
type Outcome[I, M, E any] struct {
	matched bool
	value   M
	rest    I
	failure E
}

// Match builds the matched variant of an outcome
func Match[I, M, E any](value M, rest I) Outcome[I, M, E] {
	return Outcome[I, M, E]{matched: true, value: value, rest: rest}
}

// Expected builds the failed variant of an outcome
func Expected[I, M, E any](failure E) Outcome[I, M, E] {
	return Outcome[I, M, E]{failure: failure}
}

func (o Outcome[I, M, E]) IsMatch() bool    { return o.matched }
func (o Outcome[I, M, E]) IsExpected() bool { return !o.matched }

// Value returns the matched value, or the zero value of `M` when the
// outcome is a failure
func (o Outcome[I, M, E]) Value() M { return o.value }

// Rest returns the input left unconsumed by a match.  It's the zero
// value of `I` for failures.
func (o Outcome[I, M, E]) Rest() I { return o.rest }

// Failure returns the failure payload and whether the outcome is
// actually a failure
func (o Outcome[I, M, E]) Failure() (E, bool) { return o.failure, !o.matched }

// Get returns the matched value, the remaining input and whether the
// outcome is a match
func (o Outcome[I, M, E]) Get() (M, I, bool) { return o.value, o.rest, o.matched }

// Result drops the remaining input and turns the outcome into the
// usual Go value/error pair.  Failures come back as *RuleError.
func (o Outcome[I, M, E]) Result() (M, error) {
	if o.matched {
		return o.value, nil
	}
	var zero M
	return zero, &RuleError[E]{Failure: o.failure}
}

func (o Outcome[I, M, E]) String() string {
	if o.matched {
		return fmt.Sprintf("Match(%v, %v)", o.value, o.rest)
	}
	return fmt.Sprintf("Expected(%v)", o.failure)
}

// OutcomeMap transforms the matched value and keeps both the
// remaining input and the failure untouched
func OutcomeMap[I, M, K, E any](o Outcome[I, M, E], fn func(M) K) Outcome[I, K, E] {
	if o.matched {
		return Match[I, K, E](fn(o.value), o.rest)
	}
	return Expected[I, K](o.failure)
}

// OutcomeMapFailure is the dual of OutcomeMap, only the failure
// payload is transformed
func OutcomeMapFailure[I, M, E, Q any](o Outcome[I, M, E], fn func(E) Q) Outcome[I, M, Q] {
	if o.matched {
		return Match[I, M, Q](o.value, o.rest)
	}
	return Expected[I, M](fn(o.failure))
}

// OutcomeAndThen feeds the matched value and the remaining input to
// `fn`, which produces the next outcome.  Failures pass through.
func OutcomeAndThen[I, J, M, K, E any](o Outcome[I, M, E], fn func(M, I) Outcome[J, K, E]) Outcome[J, K, E] {
	if o.matched {
		return fn(o.value, o.rest)
	}
	return Expected[J, K](o.failure)
}

// OutcomeOrElse calls `fn` with the failure payload to produce a
// replacement outcome.  Whatever `fn` does has to start from the
// input the failed attempt was given, since a failure never
// consumes anything.
func OutcomeOrElse[I, M, E any](o Outcome[I, M, E], fn func(E) Outcome[I, M, E]) Outcome[I, M, E] {
	if o.matched {
		return o
	}
	return fn(o.failure)
}
