// Package diagnostic decodes the submarine's binary diagnostic report.
package diagnostic

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/maisem/aoc2021"
)

// Report is a list of equal width binary numbers, one bit per cell.
type Report struct {
	bits aoc.Grid[int]
}

// ParseReport reads one binary number per line.
func ParseReport(r io.Reader) (*Report, error) {
	var bits aoc.Grid[int]
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSpace(s.Text())
		if strings.Trim(text, "01") != "" || text == "" {
			return nil, fmt.Errorf("line %d: invalid binary number %q", line, text)
		}
		if len(bits) > 0 && len(text) != len(bits[0]) {
			return nil, fmt.Errorf("line %d: width %d, want %d", line, len(text), len(bits[0]))
		}
		bits = append(bits, aoc.Bits(text))
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if len(bits) == 0 {
		return nil, errors.New("empty report")
	}
	return &Report{bits: bits}, nil
}

// Width is the number of bits in each number.
func (r *Report) Width() int {
	return r.bits.Size().X
}

// Gamma returns the number made of the most common bit in each position.
// A position where exactly half the bits are set yields 0.
func (r *Report) Gamma() int {
	var sb strings.Builder
	n := len(r.bits)
	for _, col := range r.bits.Transpose() {
		if 2*aoc.Sum(col...) > n {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return int(aoc.ParseBinary(sb.String()))
}

// Epsilon is the complement of Gamma over the width of the report.
func (r *Report) Epsilon() int {
	mask := 1<<r.Width() - 1
	return r.Gamma() ^ mask
}

func (r *Report) PowerConsumption() int {
	return r.Gamma() * r.Epsilon()
}

// OxygenRating keeps the numbers with the most common bit in each position,
// preferring 1 on ties, until one remains.
func (r *Report) OxygenRating() int {
	return r.rating(func(ones, n int) int {
		if 2*ones >= n {
			return 1
		}
		return 0
	})
}

// CO2Rating keeps the numbers with the least common bit in each position,
// preferring 0 on ties, until one remains. A position where every
// remaining number has the same bit is skipped.
func (r *Report) CO2Rating() int {
	return r.rating(func(ones, n int) int {
		if 2*ones < n {
			return 1
		}
		return 0
	})
}

func (r *Report) LifeSupportRating() int {
	return r.OxygenRating() * r.CO2Rating()
}

// rating filters the rows by bit position; keep returns the bit value to
// keep given the count of ones among the n remaining rows.
func (r *Report) rating(keep func(ones, n int) int) int {
	rows := slices.Clone(r.bits)
	for pos := 0; len(rows) > 1 && pos < r.Width(); pos++ {
		ones := 0
		for _, row := range rows {
			ones += row[pos]
		}
		want := keep(ones, len(rows))
		if ones == 0 || ones == len(rows) {
			// Every row shares this bit; filtering on it would keep all or none.
			continue
		}
		rows = slices.DeleteFunc(rows, func(row []int) bool {
			return row[pos] != want
		})
	}
	return toInt(rows[0])
}

func toInt(bits []int) int {
	v := 0
	for _, b := range bits {
		v = v<<1 | b
	}
	return v
}
