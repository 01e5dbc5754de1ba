// Package sonar counts depth increases in a sonar sweep report.
package sonar

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maisem/aoc2021"
)

// ParseDepths reads one depth per line.
func ParseDepths(r io.Reader) ([]int, error) {
	var depths []int
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		d, err := strconv.Atoi(strings.TrimSpace(s.Text()))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		depths = append(depths, d)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return depths, nil
}

// CountIncreases returns how many times the sum of window consecutive
// depths is larger than the sum of the window before it.
func CountIncreases(depths []int, window int) int {
	if window < 1 {
		panic(fmt.Sprintf("sonar: bad window %d", window))
	}
	count := 0
	for i := 1; i+window <= len(depths); i++ {
		prev := aoc.Sum(depths[i-1 : i-1+window]...)
		cur := aoc.Sum(depths[i : i+window]...)
		if cur > prev {
			count++
		}
	}
	return count
}
