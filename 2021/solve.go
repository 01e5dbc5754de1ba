package main

import (
	"fmt"

	"github.com/maisem/aoc2021"
	"github.com/maisem/aoc2021/bingo"
	"github.com/maisem/aoc2021/diagnostic"
	"github.com/maisem/aoc2021/sonar"
	"github.com/maisem/aoc2021/submarine"
)

type solver struct {
	*aoc.Puzzle
}

/*
want=7

199
200
208
210
200
207
240
269
260
263
*/
func (s solver) D1p1() any {
	depths := aoc.MustGet(sonar.ParseDepths(s.Reader()))
	return sonar.CountIncreases(depths, 1)
}

// want=5
func (s solver) D1p2() any {
	depths := aoc.MustGet(sonar.ParseDepths(s.Reader()))
	return sonar.CountIncreases(depths, 3)
}

/*
want=150

forward 5
down 5
forward 8
up 3
down 8
forward 2
*/
func (s solver) D2p1() any {
	return s.dive(submarine.Defect)
}

// want=900
func (s solver) D2p2() any {
	return s.dive(submarine.Working)
}

func (s solver) dive(model submarine.Model) int {
	sub := submarine.Sub{Model: model}
	s.ForLinesY(func(y int, line string) {
		m, err := submarine.ParseMove(line)
		if err != nil {
			panic(fmt.Errorf("line %d: %w", y+1, err))
		}
		sub.Drive(m)
	})
	s.Debugf("sub ended at %+v", sub)
	return sub.Position()
}

/*
want=198

00100
11110
10110
10111
10101
01111
00111
11100
10000
11001
00010
01010
*/
func (s solver) D3p1() any {
	r := aoc.MustGet(diagnostic.ParseReport(s.Reader()))
	s.Debugf("gamma=%d epsilon=%d", r.Gamma(), r.Epsilon())
	return r.PowerConsumption()
}

// want=230
func (s solver) D3p2() any {
	r := aoc.MustGet(diagnostic.ParseReport(s.Reader()))
	s.Debugf("oxygen=%d co2=%d", r.OxygenRating(), r.CO2Rating())
	return r.LifeSupportRating()
}

/*
want=4512

7,4,9,5,11,17,23,2,0,14,21,24,10,16,13,6,15,25,12,22,18,20,8,19,3,26,1

22 13 17 11  0
 8  2 23  4 24
21  9 14 16  7
 6 10  3 18  5
 1 12 20 15 19

 3 15  0  2 22
 9 18 13 17  5
19  8  7 25 23
20 11 10 24  4
14 21 16 12  6

14 21 17 24  4
10 16 15  9 19
18  8 23 26 20
22 11 13  6  5
 2  0 12  3  7
*/
func (s solver) D4p1() any {
	return s.playBingo(bingo.FirstWinner)
}

// want=1924
func (s solver) D4p2() any {
	return s.playBingo(bingo.LastWinner)
}

// playBingo plays a fresh game, so each part sees unmarked boards.
func (s solver) playBingo(play func([]int, []*bingo.Board) (bingo.Win, error)) int {
	draws, boards, err := bingo.Parse(s.Reader())
	aoc.MustDo(err)
	w := aoc.MustGet(play(draws, boards))
	s.Debugf("board %d won on %d:\n%v", w.Index, w.Draw, w.Board)
	return w.Score()
}
