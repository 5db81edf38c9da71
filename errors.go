package ruled

import (
	"fmt"
	"unicode/utf8"
)

// RuleError is the error returned by the drivers when a rule doesn't
// match.  It carries the failure of the rule as is, and the location
// where the rule was applied when it's known.
type RuleError[E any] struct {
	Failure  E
	Location *Location
}

// Error returns the human readable representation of the failure
func (e *RuleError[E]) Error() string {
	if e.Location == nil {
		return fmt.Sprintf("expected %v", e.Failure)
	}
	return fmt.Sprintf("expected %v @ %s", e.Failure, e.Location)
}

// Unwrap exposes failures that are errors themselves
func (e *RuleError[E]) Unwrap() error {
	if err, ok := any(e.Failure).(error); ok {
		return err
	}
	return nil
}

// UnconsumedError is returned by ParseResult when the rule matched
// but didn't consume the whole input and the parser was configured
// to require it
type UnconsumedError struct {
	Location Location
	Rest     string
}

func (e *UnconsumedError) Error() string {
	rest := e.Rest
	if head, cut := cutHead(rest, 16); cut {
		rest = head + "..."
	}
	return fmt.Sprintf("unconsumed input %q @ %s", rest, e.Location)
}

// cutHead returns at most the first `n` bytes of `s`, backing off to
// the start of a rune, and whether anything was left out
func cutHead(s string, n int) (string, bool) {
	if len(s) <= n {
		return s, false
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n], true
}
