package ruled

import (
	"strings"
	"unicode/utf8"
)

// StrRule is the shape of every string leaf: it matches a piece of
// the front of its input and describes what it expected with Failed
type StrRule = RuleFn[string, string, Failed]

// split cuts `input` right after its first `n` bytes, producing the
// match of a string leaf
func split(input string, n int) Outcome[string, string, Failed] {
	return Match[string, string, Failed](input[:n], input[n:])
}

// Char matches the rune `c`
func Char(c rune) StrRule {
	return func(input string) Outcome[string, string, Failed] {
		r, size := utf8.DecodeRuneInString(input)
		if size > 0 && r == c {
			return split(input, size)
		}
		return Expected[string, string](FailedChar(c))
	}
}

// Str matches the literal `s`.  The match is the piece of the input
// that is equal to `s`.
func Str(s string) StrRule {
	return func(input string) Outcome[string, string, Failed] {
		if strings.HasPrefix(input, s) {
			return split(input, len(s))
		}
		return Expected[string, string](FailedStr(s))
	}
}

// CharRange matches a single rune within the range delimited by
// `from` and `to`
func CharRange(from, to Bound) StrRule {
	return func(input string) Outcome[string, string, Failed] {
		r, size := utf8.DecodeRuneInString(input)
		if size > 0 && from.aboveLower(r) && to.belowUpper(r) {
			return split(input, size)
		}
		return Expected[string, string](FailedCharRange(from, to))
	}
}

// Runes matches a single rune between `lo` and `hi`, both included
func Runes(lo, hi rune) StrRule {
	return CharRange(Included(lo), Included(hi))
}

// AnyChar matches any rune, it fails only on empty input
func AnyChar() StrRule {
	return classRule(FailedKind_AnyChar, func(rune) bool { return true })
}

// AnyPred matches a single rune accepted by `pred`.  It fails with
// the Nothing descriptor, leaving Predicate to rejections by Filter.
func AnyPred(pred func(rune) bool) StrRule {
	return classRule(FailedKind_Nothing, pred)
}

// End matches the end of the input.  The match is empty.
func End() StrRule {
	return func(input string) Outcome[string, string, Failed] {
		if input == "" {
			return Match[string, string, Failed]("", "")
		}
		return Expected[string, string](FailedOf(FailedKind_End))
	}
}

// Ret always matches `value` without consuming anything
func Ret[I, M, E any](value M) RuleFn[I, M, E] {
	return func(input I) Outcome[I, M, E] {
		return Match[I, M, E](value, input)
	}
}

// RetErr always fails with `failure`
func RetErr[I, M, E any](failure E) RuleFn[I, M, E] {
	return func(input I) Outcome[I, M, E] {
		return Expected[I, M](failure)
	}
}

// classRule builds the leaf that matches a single rune accepted by
// `pred`, failing with the descriptor of `kind`
func classRule(kind FailedKind, pred func(rune) bool) StrRule {
	return func(input string) Outcome[string, string, Failed] {
		r, size := utf8.DecodeRuneInString(input)
		if size > 0 && pred(r) {
			return split(input, size)
		}
		return Expected[string, string](FailedOf(kind))
	}
}
