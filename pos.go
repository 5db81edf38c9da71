package ruled

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Location is a position within the input, both as the byte offset
// that rules work with and as the line and column humans read.  Line
// and Column are 1-indexed, and columns are counted in runes.
type Location struct {
	Line   int
	Column int
	Cursor int
	File   string
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// lineIndex translates byte offsets into Locations.  It's built once
// per input, so each lookup costs a binary search over the offsets
// where lines start plus counting the runes of a single line.
type lineIndex struct {
	input  string
	starts []int
}

func newLineIndex(input string) *lineIndex {
	starts := []int{0}
	for i, c := range []byte(input) {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{input: input, starts: starts}
}

// locate clamps `cursor` to the input and finds the line it's on
func (li *lineIndex) locate(cursor int) Location {
	cursor = min(max(cursor, 0), len(li.input))
	line := sort.SearchInts(li.starts, cursor+1) - 1
	column := utf8.RuneCountInString(li.input[li.starts[line]:cursor]) + 1
	return Location{Line: line + 1, Column: column, Cursor: cursor}
}
