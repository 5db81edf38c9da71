package ruled

import (
	"fmt"
	"reflect"

	"github.com/tliron/commonlog"
)

// Trace wraps `rule` so that every application is logged on the
// commonlog logger called `name`, at debug level: one message when
// the rule starts and another one with its outcome.  Nothing is
// formatted unless the logger lets debug messages through.
func Trace[I, M, E any](name string, rule Rule[I, M, E]) RuleFn[I, M, E] {
	log := commonlog.GetLogger(name)
	return func(input I) Outcome[I, M, E] {
		if !log.AllowLevel(commonlog.Debug) {
			return rule.Apply(input)
		}
		log.Debugf("apply %s @ %s", name, describeInput(input))
		o := rule.Apply(input)
		if o.matched {
			log.Debugf("match %s: %v, rest %s", name, o.value, describeInput(o.rest))
		} else {
			log.Debugf("fail %s: expected %v", name, o.failure)
		}
		return o
	}
}

// describeInput keeps long inputs from flooding the trace
func describeInput(input any) string {
	if s, ok := input.(string); ok {
		if head, cut := cutHead(s, 24); cut {
			return fmt.Sprintf("%q...", head)
		}
		return fmt.Sprintf("%q", s)
	}
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Slice {
		return fmt.Sprintf("%d items", v.Len())
	}
	return fmt.Sprintf("%v", input)
}
