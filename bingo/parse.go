package bingo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maisem/aoc2021"
)

// Parse reads a game: a line of comma separated draws followed by boards of
// 5 lines of 5 numbers each, separated by blank lines.
func Parse(r io.Reader) (draws []int, boards []*Board, err error) {
	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return nil, nil, err
		}
		return nil, nil, errors.New("bingo: missing draws")
	}
	draws, err = parseDraws(s.Text())
	if err != nil {
		return nil, nil, fmt.Errorf("line 1: %w", err)
	}

	var (
		rows      aoc.Grid[int]
		needBlank bool // a board just ended
		start     int  // line of the first row of rows
	)
	for line := 2; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			if len(rows) > 0 {
				return nil, nil, fmt.Errorf("line %d: board has %d rows, want %d", start, len(rows), Size)
			}
			needBlank = false
			continue
		}
		if needBlank {
			return nil, nil, fmt.Errorf("line %d: board has more than %d rows", line, Size)
		}
		row, err := parseRow(text)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rows) == 0 {
			start = line
		}
		rows = append(rows, row)
		if len(rows) == Size {
			b, err := NewBoard(rows)
			if err != nil {
				return nil, nil, fmt.Errorf("line %d: %w", start, err)
			}
			boards = append(boards, b)
			rows = nil
			needBlank = true
		}
	}
	if err := s.Err(); err != nil {
		return nil, nil, err
	}
	if len(rows) > 0 {
		return nil, nil, fmt.Errorf("line %d: board has %d rows, want %d", start, len(rows), Size)
	}
	if len(boards) == 0 {
		return nil, nil, errors.New("bingo: no boards")
	}
	return draws, boards, nil
}

func parseDraws(line string) ([]int, error) {
	var draws []int
	for _, f := range strings.Split(strings.TrimSpace(line), ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid draw: %w", err)
		}
		draws = append(draws, n)
	}
	return draws, nil
}

func parseRow(line string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) != Size {
		return nil, fmt.Errorf("row has %d numbers, want %d", len(fields), Size)
	}
	row := make([]int, 0, Size)
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number: %w", err)
		}
		row = append(row, n)
	}
	return row, nil
}
