package diagnostic

import (
	"strings"
	"testing"
)

const sample = `00100
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
`

func mustParse(t *testing.T, in string) *Report {
	t.Helper()
	r, err := ParseReport(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseReport: %v", err)
	}
	return r
}

func TestPowerConsumption(t *testing.T) {
	r := mustParse(t, sample)
	if got := r.Gamma(); got != 22 {
		t.Errorf("Gamma() = %v, want 22", got)
	}
	if got := r.Epsilon(); got != 9 {
		t.Errorf("Epsilon() = %v, want 9", got)
	}
	if got := r.PowerConsumption(); got != 198 {
		t.Errorf("PowerConsumption() = %v, want 198", got)
	}
}

func TestLifeSupportRating(t *testing.T) {
	r := mustParse(t, sample)
	if got := r.OxygenRating(); got != 23 {
		t.Errorf("OxygenRating() = %v, want 23", got)
	}
	if got := r.CO2Rating(); got != 10 {
		t.Errorf("CO2Rating() = %v, want 10", got)
	}
	if got := r.LifeSupportRating(); got != 230 {
		t.Errorf("LifeSupportRating() = %v, want 230", got)
	}
}

func TestRatingsSharedBits(t *testing.T) {
	tests := []struct {
		in          string
		oxygen, co2 int
	}{
		{"10\n11\n", 3, 2},
		{"011\n010\n", 3, 2},
		{"101\n", 5, 5},
		{"111\n111\n", 7, 7},
	}
	for _, tt := range tests {
		r := mustParse(t, tt.in)
		if got := r.OxygenRating(); got != tt.oxygen {
			t.Errorf("OxygenRating(%q) = %v, want %v", tt.in, got, tt.oxygen)
		}
		if got := r.CO2Rating(); got != tt.co2 {
			t.Errorf("CO2Rating(%q) = %v, want %v", tt.in, got, tt.co2)
		}
	}
}

func TestEpsilonKeepsLeadingZeros(t *testing.T) {
	// Gamma is 0011; its complement over 4 bits is 1100.
	r := mustParse(t, "0011\n0011\n1111\n")
	if got := r.Gamma(); got != 3 {
		t.Errorf("Gamma() = %v, want 3", got)
	}
	if got := r.Epsilon(); got != 12 {
		t.Errorf("Epsilon() = %v, want 12", got)
	}
}

func TestParseReportErrors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "empty report"},
		{"0101\n012\n", "line 2"},
		{"0101\n011\n", "line 2: width 3, want 4"},
		{"01\n\n10\n", "line 2"},
	}
	for _, tt := range tests {
		_, err := ParseReport(strings.NewReader(tt.in))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("ParseReport(%q) error = %v, want %q", tt.in, err, tt.want)
		}
	}
}
