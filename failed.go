package ruled

import (
	"fmt"
	"strconv"
)

// FailedKind tells which of the leaf expectations a Failed value
// describes
type FailedKind int

const (
	FailedKind_Nothing FailedKind = iota
	FailedKind_Char
	FailedKind_Str
	FailedKind_CharRange
	FailedKind_Predicate
	FailedKind_AnyChar
	FailedKind_Bin
	FailedKind_Oct
	FailedKind_Dec
	FailedKind_Hex
	FailedKind_Latin
	FailedKind_Nl
	FailedKind_White
	FailedKind_End
)

func (k FailedKind) String() string {
	return map[FailedKind]string{
		FailedKind_Nothing:   "nothing",
		FailedKind_Char:      "char",
		FailedKind_Str:       "str",
		FailedKind_CharRange: "char range",
		FailedKind_Predicate: "predicate",
		FailedKind_AnyChar:   "any char",
		FailedKind_Bin:       "binary digit",
		FailedKind_Oct:       "octal digit",
		FailedKind_Dec:       "decimal digit",
		FailedKind_Hex:       "hex digit",
		FailedKind_Latin:     "latin letter",
		FailedKind_Nl:        "new line",
		FailedKind_White:     "whitespace",
		FailedKind_End:       "end of input",
	}[k]
}

// Failed is the general failure descriptor of the string leaves.  It
// says what was expected where the rule was applied.  Only the field
// that matters for `Kind` is set: `Char` for FailedKind_Char, `Str`
// for FailedKind_Str and `From`/`To` for FailedKind_CharRange.
type Failed struct {
	Kind FailedKind
	Char rune
	Str  string
	From Bound
	To   Bound
}

func FailedChar(c rune) Failed              { return Failed{Kind: FailedKind_Char, Char: c} }
func FailedStr(s string) Failed             { return Failed{Kind: FailedKind_Str, Str: s} }
func FailedCharRange(from, to Bound) Failed { return Failed{Kind: FailedKind_CharRange, From: from, To: to} }
func FailedOf(kind FailedKind) Failed       { return Failed{Kind: kind} }

// FailedFromUnit converts the erased failure into the `Nothing`
// descriptor, so unit-failing rules can be combined with rules that
// fail with Failed
func FailedFromUnit(Unit) Failed { return Failed{Kind: FailedKind_Nothing} }

func (f Failed) String() string {
	switch f.Kind {
	case FailedKind_Char:
		return strconv.QuoteRune(f.Char)
	case FailedKind_Str:
		return strconv.Quote(f.Str)
	case FailedKind_CharRange:
		return fmt.Sprintf("%s%s", f.From.lower(), f.To.upper())
	default:
		return f.Kind.String()
	}
}

// BoundKind says whether a Bound includes its rune, excludes it or
// doesn't limit the range at all
type BoundKind int

const (
	BoundKind_Unbounded BoundKind = iota
	BoundKind_Included
	BoundKind_Excluded
)

// Bound is one end of a character range
type Bound struct {
	Kind BoundKind
	Char rune
}

func Included(c rune) Bound { return Bound{Kind: BoundKind_Included, Char: c} }
func Excluded(c rune) Bound { return Bound{Kind: BoundKind_Excluded, Char: c} }
func NoBound() Bound        { return Bound{} }

// aboveLower reports if `c` is on the inside of `b` when `b` is the
// lower end of a range
func (b Bound) aboveLower(c rune) bool {
	switch b.Kind {
	case BoundKind_Included:
		return c >= b.Char
	case BoundKind_Excluded:
		return c > b.Char
	default:
		return true
	}
}

// belowUpper reports if `c` is on the inside of `b` when `b` is the
// upper end of a range
func (b Bound) belowUpper(c rune) bool {
	switch b.Kind {
	case BoundKind_Included:
		return c <= b.Char
	case BoundKind_Excluded:
		return c < b.Char
	default:
		return true
	}
}

func (b Bound) lower() string {
	switch b.Kind {
	case BoundKind_Included:
		return "[" + strconv.QuoteRune(b.Char) + ".."
	case BoundKind_Excluded:
		return "(" + strconv.QuoteRune(b.Char) + ".."
	default:
		return "(.."
	}
}

func (b Bound) upper() string {
	switch b.Kind {
	case BoundKind_Included:
		return strconv.QuoteRune(b.Char) + "]"
	case BoundKind_Excluded:
		return strconv.QuoteRune(b.Char) + ")"
	default:
		return ")"
	}
}
