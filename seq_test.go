package ruled

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCat(t *testing.T) {
	tagged := Cat(Char('@'), Char('#'), Splice)

	runLeafTests(t, []leafTest{
		{Name: "both match", Rule: tagged, Input: "@#", Expected: match("@#", "")},
		{Name: "second fails", Rule: tagged, Input: "@!", Expected: expected(FailedChar('#'))},
		{Name: "input ends", Rule: tagged, Input: "@", Expected: expected(FailedChar('#'))},
		{Name: "first fails", Rule: tagged, Input: "#@", Expected: expected(FailedChar('@'))},
		{Name: "chained", Rule: Cat(Cat(Char('q'), Char('w'), Splice), Char('e'), Splice), Input: "qwerty",
			Expected: match("qwe", "rty")},
		{Name: "chained fails in the middle", Rule: Cat(Cat(Char('q'), Char('w'), Splice), Char('e'), Splice), Input: "qe",
			Expected: expected(FailedChar('w'))},
		{Name: "append copies", Rule: Cat(Str("ab"), Str("cd"), Append), Input: "abcd!", Expected: match("abcd", "!")},
	})

	t.Run("splice panics on strings that aren't adjacent", func(t *testing.T) {
		rule := Cat(Char('a'), Map(Char('b'), func(string) string { return "b" }), Splice)
		assert.Panics(t, func() { rule.Apply("ab") })
	})

	t.Run("folds into other types", func(t *testing.T) {
		rule := Cat(Char('a'), Dec(), func(l, r string) []string { return []string{l, r} })
		assert.Equal(t, Match[string, []string, Failed]([]string{"a", "1"}, "!"), rule.Apply("a1!"))
	})
}

func TestFstSnd(t *testing.T) {
	runLeafTests(t, []leafTest{
		{Name: "fst", Rule: Fst(Str("qw"), Char('.')), Input: "qw.1", Expected: match("qw", "1")},
		{Name: "fst second fails", Rule: Fst(Str("qw"), Char('.')), Input: "qw!", Expected: expected(FailedChar('.'))},
		{Name: "snd", Rule: Snd(Char('.'), Str("qw")), Input: ".qw1", Expected: match("qw", "1")},
		{Name: "snd first fails", Rule: Snd(Char('.'), Str("qw")), Input: "qw", Expected: expected(FailedChar('.'))},
	})
}

func TestSeq(t *testing.T) {
	t.Run("seq2", func(t *testing.T) {
		rule := Seq2(Latin(), Dec())
		assert.Equal(t,
			Match[string, Tuple2[string, string], Failed](Tuple2[string, string]{"a", "1"}, "b"),
			rule.Apply("a1b"))
		assert.Equal(t, Expected[string, Tuple2[string, string]](FailedOf(FailedKind_Dec)), rule.Apply("ab"))
	})

	t.Run("seq3 keeps values of different types apart", func(t *testing.T) {
		digit := Map(Dec(), func(s string) int { return int(s[0] - '0') })
		rule := Seq3(Char('('), digit, Char(')'))
		assert.Equal(t,
			Match[string, Tuple3[string, int, string], Failed](Tuple3[string, int, string]{"(", 7, ")"}, ""),
			rule.Apply("(7)"))
		assert.Equal(t, Expected[string, Tuple3[string, int, string]](FailedChar(')')), rule.Apply("(7"))
	})

	t.Run("seq7", func(t *testing.T) {
		d := Dec()
		rule := Seq7(d, d, d, Char('-'), d, d, d)
		o := rule.Apply("123-4567")
		v, rest, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, Tuple7[string, string, string, string, string, string, string]{"1", "2", "3", "-", "4", "5", "6"}, v)
		assert.Equal(t, "7", rest)

		_, failed := rule.Apply("123456").Failure()
		assert.True(t, failed)
	})
}
