// Package bingo plays bingo against a giant squid.
//
// Boards are marked in place as numbers are drawn. Each board tracks, for
// every row and column, the values not yet drawn; a board has won as soon as
// any row or column has none left.
package bingo

import (
	"fmt"
	"strings"

	"github.com/maisem/aoc2021"
	"tailscale.com/util/set"
)

// Size is the width and height of a board.
const Size = 5

// Board is a 5x5 bingo board. Values on a board are expected to be
// distinct; a value appearing twice is marked in both places at once and the
// remaining sum counts it once per row it is left in.
type Board struct {
	grid aoc.Grid[int]
	rows []set.Set[int] // unmarked values in each row
	cols []set.Set[int] // unmarked values in each column
}

// NewBoard returns a board for the 5x5 grid g. g is not copied and must
// not be modified afterwards.
func NewBoard(g aoc.Grid[int]) (*Board, error) {
	if len(g) != Size || !g.IsRect() || g.Size().X != Size {
		return nil, fmt.Errorf("board must be %dx%d", Size, Size)
	}
	b := &Board{grid: g}
	for _, row := range g {
		b.rows = append(b.rows, setOf(row))
	}
	for _, col := range g.Transpose() {
		b.cols = append(b.cols, setOf(col))
	}
	return b, nil
}

func setOf(vals []int) set.Set[int] {
	s := make(set.Set[int], len(vals))
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Mark marks v wherever it appears on the board and reports whether the
// board has won. Values not on the board are ignored.
func (b *Board) Mark(v int) (won bool) {
	for _, r := range b.rows {
		delete(r, v)
	}
	for _, c := range b.cols {
		delete(c, v)
	}
	return b.HasWon()
}

// HasWon reports whether any row or column is fully marked.
func (b *Board) HasWon() bool {
	for _, r := range b.rows {
		if len(r) == 0 {
			return true
		}
	}
	for _, c := range b.cols {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

// RemainingSum returns the sum of all unmarked values.
func (b *Board) RemainingSum() int {
	sum := 0
	for _, r := range b.rows {
		for v := range r {
			sum += v
		}
	}
	return sum
}

// Marked returns a grid reporting which cells have been marked.
func (b *Board) Marked() aoc.Grid[bool] {
	size := b.grid.Size()
	out := aoc.MakeGrid[bool](size.X, size.Y)
	for y, row := range b.grid {
		for x, v := range row {
			_, unmarked := b.rows[y][v]
			out.Set(aoc.Pt{X: x, Y: y}, !unmarked)
		}
	}
	return out
}

// String renders the board with marked values in brackets.
func (b *Board) String() string {
	marked := b.Marked()
	var sb strings.Builder
	for y, row := range b.grid {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if marked.At(aoc.Pt{X: x, Y: y}) {
				fmt.Fprintf(&sb, "[%2d]", v)
			} else {
				fmt.Fprintf(&sb, " %2d ", v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
