package ruled

import "unsafe"

// Concat folds a value of type `R` into an accumulator of type `L`,
// producing a `C`.  The zero value of `C` is the empty accumulator,
// which is where Range and Until start folding from.  This is what
// allows the same repetition and sequencing code to build strings,
// slices or anything else.
type Concat[L, R, C any] func(l L, r R) C

// Splice joins two strings that sit next to each other within the
// same input without copying anything.  It's the natural accumulator
// of rules that match string leaves, since every leaf matches a
// substring of its input.  It panics if `r` doesn't start right where
// `l` ends, which only happens when a rule maps its matched value to
// something that's not a piece of the input.
func Splice(l, r string) string {
	if len(l) == 0 {
		return r
	}
	if len(r) == 0 {
		return l
	}
	lp := unsafe.StringData(l)
	if unsafe.Add(unsafe.Pointer(lp), len(l)) != unsafe.Pointer(unsafe.StringData(r)) {
		panic("ruled: can't splice strings that are not adjacent")
	}
	return unsafe.String(lp, len(l)+len(r))
}

// Append builds a new string out of `l` and `r`.  Unlike Splice it
// works with any pair of strings.
func Append(l, r string) string {
	return l + r
}

// Push appends one item to a slice
func Push[T any](l []T, r T) []T {
	return append(l, r)
}

// Extend appends all the items of `r` to `l`
func Extend[T any](l, r []T) []T {
	return append(l, r...)
}
