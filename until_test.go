package ruled

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUntil(t *testing.T) {
	type pair = Tuple2[string, string]

	tests := []struct {
		Name     string
		Rule     RuleFn[string, pair, Failed]
		Input    string
		Expected Outcome[string, pair, Failed]
	}{
		{
			Name:     "stops at the terminator",
			Rule:     Until(AnyChar(), Str("!!"), Splice),
			Input:    "ab!!cd",
			Expected: Match[string, pair, Failed](pair{"ab", "!!"}, "cd"),
		},
		{
			Name:     "terminator starts like the content",
			Rule:     Until(Dec(), Str("12"), Splice),
			Input:    "110211234",
			Expected: Match[string, pair, Failed](pair{"11021", "12"}, "34"),
		},
		{
			Name:     "terminator right away",
			Rule:     Until(Dec(), Char('!'), Splice),
			Input:    "!x",
			Expected: Match[string, pair, Failed](pair{"", "!"}, "x"),
		},
		{
			Name:     "content fails",
			Rule:     Until(Dec(), Char('!'), Splice),
			Input:    "12x!",
			Expected: Expected[string, pair](FailedOf(FailedKind_Dec)),
		},
		{
			Name:     "input ends before the terminator",
			Rule:     Until(Char('.'), Char('!'), Splice),
			Input:    "...",
			Expected: Expected[string, pair](FailedChar('.')),
		},
		{
			Name:     "terminator that accepts the end",
			Rule:     Until(Char('.'), Or(Char('!'), End()), Splice),
			Input:    "...",
			Expected: Match[string, pair, Failed](pair{"...", ""}, ""),
		},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Expected, test.Rule.Apply(test.Input))
		})
	}
}

func TestUntilVec(t *testing.T) {
	rule := UntilVec(Latin(), Char(';'))
	assert.Equal(t,
		Match[string, Tuple2[[]string, string], Failed](Tuple2[[]string, string]{[]string{"a", "b"}, ";"}, "c"),
		rule.Apply("ab;c"))

	t.Run("terminator with another failure type", func(t *testing.T) {
		semi := MapFailure(Char(';'), func(Failed) Unit { return Unit{} })
		rule := UntilVec(Dec(), semi)
		v, rest, ok := rule.Apply("42;").Get()
		assert.True(t, ok)
		assert.Equal(t, []string{"4", "2"}, v.V1)
		assert.Equal(t, "", rest)
	})
}
