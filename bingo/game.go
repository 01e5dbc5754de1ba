package bingo

import (
	"errors"
	"slices"

	"github.com/maisem/aoc2021"
)

// ErrNoWinner is returned when the draws run out before a result is found.
var ErrNoWinner = errors.New("bingo: no board won")

// Win is a board winning on a draw.
type Win struct {
	Draw  int
	Board *Board
	Index int // position of Board in the input
}

// Score returns the score of the winning board.
func (w Win) Score() int {
	return Score(w.Draw, w.Board)
}

// Score returns the sum of b's unmarked values multiplied by draw.
func Score(draw int, b *Board) int {
	return draw * b.RemainingSum()
}

// FirstWinner draws numbers in order, marking each board in order, and
// returns the first board to win. Boards are modified.
func FirstWinner(draws []int, boards []*Board) (Win, error) {
	var (
		win   Win
		found bool
	)
	q := aoc.NewQueue(draws...)
	q.While(func(draw int) bool {
		for i, b := range boards {
			if b.Mark(draw) {
				win, found = Win{Draw: draw, Board: b, Index: i}, true
				return false
			}
		}
		return true
	})
	if !found {
		return Win{}, ErrNoWinner
	}
	return win, nil
}

// LastWinner draws numbers in order and returns the last board to win.
// Each draw marks every board still in play; boards that won are then taken
// out of play, unless every board in play won on that draw. In that case the
// last of them in input order is the result; a strict reading of "remove
// every winner while more than one board is in play" would leave no board
// and report ErrNoWinner instead. Boards are modified.
func LastWinner(draws []int, boards []*Board) (Win, error) {
	inPlay := make([]int, len(boards))
	for i := range inPlay {
		inPlay[i] = i
	}
	q := aoc.NewQueue(draws...)
	for draw, ok := q.Pop(); ok && len(inPlay) > 0; draw, ok = q.Pop() {
		won := 0
		for _, i := range inPlay {
			if boards[i].Mark(draw) {
				won++
			}
		}
		if won == len(inPlay) {
			i := inPlay[len(inPlay)-1]
			return Win{Draw: draw, Board: boards[i], Index: i}, nil
		}
		inPlay = slices.DeleteFunc(inPlay, func(i int) bool {
			return boards[i].HasWon()
		})
	}
	return Win{}, ErrNoWinner
}
