package ruled

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Properties every rule built by this package holds, checked over a
// handful of grammars and inputs
func TestRuleProperties(t *testing.T) {
	rules := map[string]StrRule{
		"char":   Char('a'),
		"str":    Str("ab"),
		"cat":    Cat(Latin(), Dec(), Splice),
		"or":     Or(Str("ab"), Dec()),
		"many":   Many[string](Latin(), Splice),
		"range":  Range[string](Hex(), 2, 4, Splice),
		"until":  Slice(Until(AnyChar(), Char(';'), Splice)),
		"ended":  Ended(Many1[string](AnyChar(), Splice)),
		"filter": Filter(AnyChar(), func(s string) bool { return s != "b" }),
		"nl":     Nl(),
	}
	inputs := []string{"", "a", "ab", "ab12;", "1ab", "ffe1x", "b", "é\r\n", ";"}

	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			for _, input := range inputs {
				o := rule.Apply(input)

				if v, rest, ok := o.Get(); ok {
					assert.LessOrEqual(t, len(rest), len(input))
					assert.Equal(t, input[len(input)-len(rest):], rest, "rest is a suffix of %q", input)
					assert.Equal(t, input, v+rest, "matched text is followed by the rest for %q", input)
				}

				sliced := Slice(rule).Apply(input)
				assert.Equal(t, o.IsMatch(), sliced.IsMatch())

				opt := Opt(rule).Apply(input)
				assert.True(t, opt.IsMatch(), "opt never fails")
				if o.IsExpected() {
					assert.Equal(t, input, opt.Rest(), "failures consume nothing")
				}

				assert.Equal(t, o, rule.Apply(input), "rules are pure")
			}
		})
	}
}
