package ruled

import (
	"fmt"
	"unicode/utf8"
)

const eof = -1

// Parser is a cursor over an immutable string input.  Rules
// themselves are stateless, the Parser is what gives them a position
// to start from and keeps track of how far they went.  The cursor is
// always on a rune boundary.
//
// Advance and ParseInfo apply rules at the cursor.  Hand written code
// mixing rules with its own logic uses Checkpoint and Restore to give
// back what a failed attempt consumed.
type Parser struct {
	input  string
	cursor int
	cfg    *Config
	lines  *lineIndex
}

// NewParser creates a parser over `input` with the default
// configuration
func NewParser(input string) *Parser {
	return NewParserWithConfig(input, NewConfig())
}

// NewParserWithConfig creates a parser over `input` configured by
// `cfg`
func NewParserWithConfig(input string, cfg *Config) *Parser {
	p := &Parser{cfg: cfg}
	p.SetInput(input)
	return p
}

// SetInput associates a new input to the parser and rewinds the
// cursor.  The configuration is kept.
func (p *Parser) SetInput(input string) {
	p.input = input
	p.cursor = 0
	p.lines = nil
}

func (p *Parser) Input() string { return p.input }
func (p *Parser) Config() *Config { return p.cfg }

// Pos returns the byte offset of the cursor
func (p *Parser) Pos() int { return p.cursor }

// SetPos moves the cursor to `pos`, which must be a rune boundary
// within the input
func (p *Parser) SetPos(pos int) {
	p.checkBoundary(pos)
	p.cursor = pos
}

// Checkpoint returns the position to Restore after a failed attempt
func (p *Parser) Checkpoint() int { return p.cursor }

// Restore rewinds the cursor to a position returned by Checkpoint
func (p *Parser) Restore(checkpoint int) { p.SetPos(checkpoint) }

// Step advances the cursor by `n` bytes and returns what it stepped
// over
func (p *Parser) Step(n int) string {
	start := p.cursor
	p.SetPos(start + n)
	return p.input[start:p.cursor]
}

// Rest returns the input that is after the cursor
func (p *Parser) Rest() string { return p.input[p.cursor:] }

// Peek returns the rune under the cursor, or eof if the entire input
// has been consumed
func (p *Parser) Peek() rune {
	if p.cursor >= len(p.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(p.input[p.cursor:])
	return r
}

// Location returns the line and column the cursor is at
func (p *Parser) Location() Location {
	return p.LocationAt(p.cursor)
}

// LocationAt translates the byte offset `cursor` into a Location
func (p *Parser) LocationAt(cursor int) Location {
	if p.lines == nil {
		p.lines = newLineIndex(p.input)
	}
	loc := p.lines.locate(cursor)
	loc.File = p.cfg.GetString("parser.input_file")
	return loc
}

func (p *Parser) checkBoundary(pos int) {
	if pos < 0 || pos > len(p.input) {
		panic(fmt.Sprintf("ruled: position %d is out of the input bounds [0, %d]", pos, len(p.input)))
	}
	if pos < len(p.input) && !utf8.RuneStart(p.input[pos]) {
		panic(fmt.Sprintf("ruled: position %d splits a rune", pos))
	}
}

// Advance applies `rule` at the cursor.  On a match the cursor moves
// past what the rule consumed; on a failure it stays where it was.
func Advance[M, E any](p *Parser, rule Rule[string, M, E]) Outcome[string, M, E] {
	checkpoint := p.Checkpoint()
	rest := p.Rest()
	if p.cfg.GetBool("trace.enabled") {
		rule = Trace(p.cfg.GetString("trace.name"), rule)
	}
	o := rule.Apply(rest)
	if !o.matched {
		p.Restore(checkpoint)
		return o
	}
	p.Step(len(rest) - len(o.rest))
	return o
}

// Info reports everything about a rule application made by
// ParseInfo: the outcome, the input the parser holds, what was left
// unconsumed and where the cursor ended up
type Info[M, E any] struct {
	Outcome  Outcome[string, M, E]
	Input    string
	Rest     string
	Pos      int
	Location Location
}

// ParseInfo applies `rule` at the cursor with Advance and reports the
// outcome alongside the position of the cursor afterwards
func ParseInfo[M, E any](p *Parser, rule Rule[string, M, E]) Info[M, E] {
	o := Advance(p, rule)
	return Info[M, E]{
		Outcome:  o,
		Input:    p.input,
		Rest:     p.Rest(),
		Pos:      p.cursor,
		Location: p.Location(),
	}
}

// ParseResult applies `rule` at the cursor and returns the matched
// value or an error.  Failures come back as *RuleError with the
// location the rule was applied at.  When `parser.require_end` is
// set, matches that leave input behind come back as
// *UnconsumedError pointing at the leftover input.  The cursor only
// moves when there's no error.
func ParseResult[M, E any](p *Parser, rule Rule[string, M, E]) (M, error) {
	var zero M
	start := p.Location()
	o := Advance(p, rule)
	if !o.matched {
		return zero, &RuleError[E]{Failure: o.failure, Location: &start}
	}
	if p.cfg.GetBool("parser.require_end") && p.cursor < len(p.input) {
		err := &UnconsumedError{Location: p.Location(), Rest: p.Rest()}
		p.Restore(start.Cursor)
		return zero, err
	}
	return o.value, nil
}
