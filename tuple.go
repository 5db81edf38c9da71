package ruled

// Tuple2 through Tuple7 hold the values matched by the Seq rules, one
// field per rule, in the order the rules were given

type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

type Tuple5[A, B, C, D, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 F
}

type Tuple6[A, B, C, D, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 F
	V6 G
}

type Tuple7[A, B, C, D, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 F
	V6 G
	V7 H
}

// Seq2 applies each rule to what the previous one left and collects
// every matched value into a tuple.  The first failure aborts the
// whole sequence.  Unlike Cat, values are kept apart rather than
// folded together.
func Seq2[I, A, B, E any](a Rule[I, A, E], b Rule[I, B, E]) RuleFn[I, Tuple2[A, B], E] {
	return func(input I) Outcome[I, Tuple2[A, B], E] {
		oa := a.Apply(input)
		if !oa.matched {
			return Expected[I, Tuple2[A, B]](oa.failure)
		}
		ob := b.Apply(oa.rest)
		if !ob.matched {
			return Expected[I, Tuple2[A, B]](ob.failure)
		}
		return Match[I, Tuple2[A, B], E](Tuple2[A, B]{oa.value, ob.value}, ob.rest)
	}
}

func Seq3[I, A, B, C, E any](a Rule[I, A, E], b Rule[I, B, E], c Rule[I, C, E]) RuleFn[I, Tuple3[A, B, C], E] {
	head := Seq2(a, b)
	return func(input I) Outcome[I, Tuple3[A, B, C], E] {
		oh := head.Apply(input)
		if !oh.matched {
			return Expected[I, Tuple3[A, B, C]](oh.failure)
		}
		oc := c.Apply(oh.rest)
		if !oc.matched {
			return Expected[I, Tuple3[A, B, C]](oc.failure)
		}
		h := oh.value
		return Match[I, Tuple3[A, B, C], E](Tuple3[A, B, C]{h.V1, h.V2, oc.value}, oc.rest)
	}
}

func Seq4[I, A, B, C, D, E any](
	a Rule[I, A, E], b Rule[I, B, E], c Rule[I, C, E], d Rule[I, D, E],
) RuleFn[I, Tuple4[A, B, C, D], E] {
	head := Seq3(a, b, c)
	return func(input I) Outcome[I, Tuple4[A, B, C, D], E] {
		oh := head.Apply(input)
		if !oh.matched {
			return Expected[I, Tuple4[A, B, C, D]](oh.failure)
		}
		od := d.Apply(oh.rest)
		if !od.matched {
			return Expected[I, Tuple4[A, B, C, D]](od.failure)
		}
		h := oh.value
		return Match[I, Tuple4[A, B, C, D], E](Tuple4[A, B, C, D]{h.V1, h.V2, h.V3, od.value}, od.rest)
	}
}

func Seq5[I, A, B, C, D, F, E any](
	a Rule[I, A, E], b Rule[I, B, E], c Rule[I, C, E], d Rule[I, D, E], f Rule[I, F, E],
) RuleFn[I, Tuple5[A, B, C, D, F], E] {
	head := Seq4(a, b, c, d)
	return func(input I) Outcome[I, Tuple5[A, B, C, D, F], E] {
		oh := head.Apply(input)
		if !oh.matched {
			return Expected[I, Tuple5[A, B, C, D, F]](oh.failure)
		}
		of := f.Apply(oh.rest)
		if !of.matched {
			return Expected[I, Tuple5[A, B, C, D, F]](of.failure)
		}
		h := oh.value
		return Match[I, Tuple5[A, B, C, D, F], E](Tuple5[A, B, C, D, F]{h.V1, h.V2, h.V3, h.V4, of.value}, of.rest)
	}
}

func Seq6[I, A, B, C, D, F, G, E any](
	a Rule[I, A, E], b Rule[I, B, E], c Rule[I, C, E], d Rule[I, D, E], f Rule[I, F, E], g Rule[I, G, E],
) RuleFn[I, Tuple6[A, B, C, D, F, G], E] {
	head := Seq5(a, b, c, d, f)
	return func(input I) Outcome[I, Tuple6[A, B, C, D, F, G], E] {
		oh := head.Apply(input)
		if !oh.matched {
			return Expected[I, Tuple6[A, B, C, D, F, G]](oh.failure)
		}
		og := g.Apply(oh.rest)
		if !og.matched {
			return Expected[I, Tuple6[A, B, C, D, F, G]](og.failure)
		}
		h := oh.value
		return Match[I, Tuple6[A, B, C, D, F, G], E](Tuple6[A, B, C, D, F, G]{h.V1, h.V2, h.V3, h.V4, h.V5, og.value}, og.rest)
	}
}

func Seq7[I, A, B, C, D, F, G, H, E any](
	a Rule[I, A, E], b Rule[I, B, E], c Rule[I, C, E], d Rule[I, D, E], f Rule[I, F, E], g Rule[I, G, E], h Rule[I, H, E],
) RuleFn[I, Tuple7[A, B, C, D, F, G, H], E] {
	head := Seq6(a, b, c, d, f, g)
	return func(input I) Outcome[I, Tuple7[A, B, C, D, F, G, H], E] {
		oh := head.Apply(input)
		if !oh.matched {
			return Expected[I, Tuple7[A, B, C, D, F, G, H]](oh.failure)
		}
		oi := h.Apply(oh.rest)
		if !oi.matched {
			return Expected[I, Tuple7[A, B, C, D, F, G, H]](oi.failure)
		}
		v := oh.value
		return Match[I, Tuple7[A, B, C, D, F, G, H], E](Tuple7[A, B, C, D, F, G, H]{v.V1, v.V2, v.V3, v.V4, v.V5, v.V6, oi.value}, oi.rest)
	}
}
