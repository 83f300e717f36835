package model

import (
	"reflect"
	"regexp"
	"testing"
)

func TestSplitByLinesMatching(t *testing.T) {
	boundary := regexp.MustCompile(`^\S`)

	tests := []struct {
		name  string
		lines []string
		want  [][]string
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  [][]string{},
		},
		{
			name:  "no boundary keeps everything in one group",
			lines: []string{" a", " b"},
			want:  [][]string{{" a", " b"}},
		},
		{
			name:  "boundary line starts its own group",
			lines: []string{"A", " a1", "B", " b1", " b2"},
			want:  [][]string{{"A", " a1"}, {"B", " b1", " b2"}},
		},
		{
			name:  "lines before the first boundary form the first group",
			lines: []string{" lead", "A", " a1"},
			want:  [][]string{{" lead"}, {"A", " a1"}},
		},
		{
			name:  "consecutive boundaries",
			lines: []string{"A", "B", "C"},
			want:  [][]string{{"A"}, {"B"}, {"C"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitByLinesMatching(boundary, tt.lines)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			for i, g := range got {
				if len(g) == 0 {
					t.Errorf("group %d is empty", i)
				}
			}
		})
	}
}

func TestBoundaryPatterns(t *testing.T) {
	tests := []struct {
		line    string
		monitor bool
		mode    bool
		field   bool
	}{
		{"eDP connected primary 1920x1080+0+1080", true, false, false},
		{"  1920x1080 (0x56) 138.700MHz +HSync -VSync *current +preferred", false, true, false},
		{"        h: width  1920 start 1968 end 2000 total 2080", false, false, false},
		{"\tIdentifier: 0x52", false, false, true},
		{"\t\t00ffffffffffff0006af3d5700000000", false, false, false},
		{"\t           filter: ", false, false, false},
	}
	for _, tt := range tests {
		if got := monitorBoundary.MatchString(tt.line); got != tt.monitor {
			t.Errorf("monitorBoundary(%q) = %v, want %v", tt.line, got, tt.monitor)
		}
		if got := modeBoundary.MatchString(tt.line); got != tt.mode {
			t.Errorf("modeBoundary(%q) = %v, want %v", tt.line, got, tt.mode)
		}
		if got := fieldBoundary.MatchString(tt.line); got != tt.field {
			t.Errorf("fieldBoundary(%q) = %v, want %v", tt.line, got, tt.field)
		}
	}
}
