package ruled

import (
	"strings"
	"testing"
	"unicode"
)

// upperWord is a hand written rule used to check that rules of
// different concrete types can be mixed together
type upperWord struct{}

func (upperWord) Apply(input string) Outcome[string, string, Failed] {
	n := strings.IndexFunc(input, func(r rune) bool { return !unicode.IsUpper(r) })
	if n < 0 {
		n = len(input)
	}
	if n == 0 {
		return Expected[string, string](FailedOf(FailedKind_Predicate))
	}
	return split(input, n)
}

func TestOr(t *testing.T) {
	sigil := Or(Char('#'), Char('@'))

	runLeafTests(t, []leafTest{
		{Name: "first arm", Rule: sigil, Input: "#tag", Expected: match("#", "tag")},
		{Name: "second arm", Rule: sigil, Input: "@user", Expected: match("@", "user")},
		{Name: "second arm's failure", Rule: sigil, Input: "tag", Expected: expected(FailedChar('@'))},
		{Name: "first match wins", Rule: Or(Str("a"), Str("ab")), Input: "ab", Expected: match("a", "b")},
		{Name: "second arm sees the original input", Rule: Or(Cat(Char('a'), Char('b'), Splice), Str("ac")), Input: "ac",
			Expected: match("ac", "")},
		{Name: "method form", Rule: Char('a').Or(Char('b')), Input: "b", Expected: match("b", "")},
	})
}

func TestOneOf(t *testing.T) {
	words := OneOf[string, string, Failed](Str("hi"), Str("lo"), Str("sci"))

	runLeafTests(t, []leafTest{
		{Name: "first", Rule: words, Input: "hi!", Expected: match("hi", "!")},
		{Name: "middle", Rule: words, Input: "lol", Expected: match("lo", "l")},
		{Name: "last failure", Rule: words, Input: "fi", Expected: expected(FailedStr("sci"))},
		{Name: "empty list", Rule: OneOf[string, string, Failed](), Input: "x", Expected: expected(Failed{})},
		{Name: "mixed rule types", Rule: OneOf[string, string, Failed](upperWord{}, Dec(), Lazy(func() Rule[string, string, Failed] {
			return Latin()
		})), Input: "ABc", Expected: match("AB", "c")},
		{Name: "mixed rule types fall through", Rule: OneOf[string, string, Failed](upperWord{}, Dec(), Lazy(func() Rule[string, string, Failed] {
			return Latin()
		})), Input: "abc", Expected: match("a", "bc")},
	})
}
