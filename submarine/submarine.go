// Package submarine pilots the submarine through a list of moves.
package submarine

import (
	"fmt"
	"strconv"
	"strings"
)

type Direction int

const (
	Forward Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Move is one line of the planned course, e.g. "forward 5".
type Move struct {
	Dir    Direction
	Amount int
}

// ParseMove parses a line like "down 8".
func ParseMove(s string) (Move, error) {
	dir, amount, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Move{}, fmt.Errorf("invalid move %q", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	m := Move{Amount: n}
	switch dir {
	case "forward":
		m.Dir = Forward
	case "up":
		m.Dir = Up
	case "down":
		m.Dir = Down
	default:
		return Move{}, fmt.Errorf("invalid move %q: unknown direction %q", s, dir)
	}
	return m, nil
}

// Model is how a submarine interprets up and down.
type Model int

const (
	// Defect subs move up and down directly.
	Defect Model = iota
	// Working subs use up and down to adjust their aim, and dive along it
	// when moving forward.
	Working
)

type Sub struct {
	Model      Model
	Horizontal int
	Depth      int
	Aim        int
}

func (s *Sub) Drive(m Move) {
	switch s.Model {
	case Defect:
		switch m.Dir {
		case Forward:
			s.Horizontal += m.Amount
		case Up:
			s.Depth -= m.Amount
		case Down:
			s.Depth += m.Amount
		}
	case Working:
		switch m.Dir {
		case Forward:
			s.Horizontal += m.Amount
			s.Depth += s.Aim * m.Amount
		case Up:
			s.Aim -= m.Amount
		case Down:
			s.Aim += m.Amount
		}
	default:
		panic(fmt.Sprintf("unknown model %d", s.Model))
	}
}

// DriveAll drives every move in order.
func (s *Sub) DriveAll(moves []Move) {
	for _, m := range moves {
		s.Drive(m)
	}
}

// Position returns horizontal position multiplied by depth.
func (s *Sub) Position() int {
	return s.Horizontal * s.Depth
}
