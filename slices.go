package ruled

// Leaves over slices of arbitrary elements.  There's nothing to say
// about what they expected beyond the rule itself, so they fail with
// Unit.  MapFailure attaches a better descriptor where one is needed.

// Item matches any single element
func Item[T any]() RuleFn[[]T, T, Unit] {
	return ItemPred(func(T) bool { return true })
}

// ItemPred matches a single element accepted by `pred`
func ItemPred[T any](pred func(T) bool) RuleFn[[]T, T, Unit] {
	return func(input []T) Outcome[[]T, T, Unit] {
		if len(input) > 0 && pred(input[0]) {
			return Match[[]T, T, Unit](input[0], input[1:])
		}
		return Expected[[]T, T](Unit{})
	}
}

// Elem matches a single element equal to `v`
func Elem[T comparable](v T) RuleFn[[]T, T, Unit] {
	return ItemPred(func(e T) bool { return e == v })
}

// Prefix matches the elements of `prefix`, in order.  The match is
// the piece of the input equal to `prefix`.
func Prefix[T comparable](prefix []T) RuleFn[[]T, []T, Unit] {
	return func(input []T) Outcome[[]T, []T, Unit] {
		if len(input) < len(prefix) {
			return Expected[[]T, []T](Unit{})
		}
		for i, v := range prefix {
			if input[i] != v {
				return Expected[[]T, []T](Unit{})
			}
		}
		n := len(prefix)
		return Match[[]T, []T, Unit](input[:n:n], input[n:])
	}
}

// SliceEnd matches the end of the input
func SliceEnd[T any]() RuleFn[[]T, Unit, Unit] {
	return func(input []T) Outcome[[]T, Unit, Unit] {
		if len(input) == 0 {
			return Match[[]T, Unit, Unit](Unit{}, input)
		}
		return Expected[[]T, Unit](Unit{})
	}
}
