package ruled

// Rule is the contract every leaf matcher and every combinator
// implements.  Applying a rule never mutates the rule, so the same
// value can be applied any number of times, to any number of inputs.
type Rule[I, M, E any] interface {
	Apply(input I) Outcome[I, M, E]
}

// RuleFn is the signature of a rule function.  All the constructors
// in this package return one, and any plain function with the same
// shape converts to a RuleFn, which is the way recursive grammars
// are written:
//
//	func value(input string) ruled.Outcome[string, Value, Failed] {
//		return ruled.Or(number, ruled.RuleFn[string, Value, Failed](array)).Apply(input)
//	}
type RuleFn[I, M, E any] func(input I) Outcome[I, M, E]

// Apply runs the rule function against `input`
func (fn RuleFn[I, M, E]) Apply(input I) Outcome[I, M, E] { return fn(input) }

// Or is the method form of the Or combinator
func (fn RuleFn[I, M, E]) Or(other Rule[I, M, E]) RuleFn[I, M, E] { return Or[I, M, E](fn, other) }

// OrDefault is the method form of the OrDefault combinator
func (fn RuleFn[I, M, E]) OrDefault() RuleFn[I, M, E] { return OrDefault[I, M, E](fn) }

// Trace is the method form of the Trace combinator
func (fn RuleFn[I, M, E]) Trace(name string) RuleFn[I, M, E] { return Trace[I, M, E](name, fn) }

// Test reports whether the rule matches at the start of `input`
func (fn RuleFn[I, M, E]) Test(input I) bool { return fn(input).IsMatch() }

// Lazy defers building a rule until it's applied.  `build` is called
// on every application, which breaks the cycle of a rule that refers
// to itself.
func Lazy[I, M, E any](build func() Rule[I, M, E]) RuleFn[I, M, E] {
	return func(input I) Outcome[I, M, E] {
		return build().Apply(input)
	}
}

// Apply is the top-level driver that returns the full outcome,
// including the input that was left unconsumed
func Apply[I, M, E any](rule Rule[I, M, E], input I) Outcome[I, M, E] {
	return rule.Apply(input)
}

// Run applies `rule` and returns only the matched value or the
// failure wrapped in a *RuleError
func Run[I, M, E any](rule Rule[I, M, E], input I) (M, error) {
	return rule.Apply(input).Result()
}

// Test reports whether `rule` matches at the start of `input`
func Test[I, M, E any](rule Rule[I, M, E], input I) bool {
	return rule.Apply(input).IsMatch()
}

// Unit is the failure type of rules that erase any detail about what
// they expected
type Unit = struct{}

// Option holds a value that might not be there.  It's what Opt
// matches and what Pred fails with.
type Option[T any] struct {
	Value T
	Valid bool
}

func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }
func None[T any]() Option[T]    { return Option[T]{} }

// Get returns the value and whether it's present
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }
