package token

import (
	"fmt"
	"sort"
)

type Pos struct {
	Filename     string
	Line, Column int
}

func NewPosition(filename string, line, column int) Pos {
	return Pos{Filename: filename, Line: line, Column: column}
}

func (pos Pos) String() string {
	return fmt.Sprintf("[%s:%d:%d]", pos.Filename, pos.Line, pos.Column)
}

// LineTable maps byte offsets of a source buffer to line/column positions.
type LineTable struct {
	filename string
	starts   []int
}

func NewLineTable(filename string, src []byte) *LineTable {
	starts := []int{0}
	for i, ch := range src {
		if ch == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineTable{filename: filename, starts: starts}
}

func (table *LineTable) Position(offset int) Pos {
	line := sort.Search(len(table.starts), func(i int) bool {
		return table.starts[i] > offset
	})
	column := offset - table.starts[line-1] + 1
	return NewPosition(table.filename, line, column)
}
