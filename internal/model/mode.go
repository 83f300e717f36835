package model

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Mode is one video mode offered by an output.
type Mode struct {
	ID        string  `yaml:"id"                  json:"id"`
	Width     int     `yaml:"width"               json:"width"`
	Height    int     `yaml:"height"              json:"height"`
	Refresh   float64 `yaml:"refresh"             json:"refresh"`
	Preferred bool    `yaml:"preferred,omitempty" json:"preferred,omitempty"`
	Current   bool    `yaml:"current,omitempty"   json:"current,omitempty"`
}

var (
	modeIDPattern     = regexp.MustCompile(`\((0x[0-9a-fA-F]+)\)`)
	bareModeIDPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)
	widthPattern      = regexp.MustCompile(`\bwidth\s+(\d+)`)
	heightPattern     = regexp.MustCompile(`\bheight\s+(\d+)`)
	refreshPattern    = regexp.MustCompile(`(\d+(?:\.\d+)?)Hz\b`)
)

// ParseMode builds a Mode from a mode stanza: the header line followed by
// its metric lines. Width, height and refresh rate are mandatory.
//
//	1920x1080 (0x56) 138.700MHz +HSync -VSync *current +preferred
//	      h: width  1920 start 1968 end 2000 total 2080 skew    0 clock  66.68KHz
//	      v: height 1080 start 1083 end 1088 total 1111           clock  60.02Hz
func ParseMode(lines []string) (*Mode, error) {
	if len(lines) == 0 {
		return nil, &FormatError{What: "mode header"}
	}
	header := strings.TrimSpace(lines[0])
	tokens := strings.Fields(header)
	m := &Mode{}

	if match := modeIDPattern.FindStringSubmatch(header); match != nil {
		m.ID = match[1]
	} else {
		for _, tok := range tokens {
			if bareModeIDPattern.MatchString(tok) {
				m.ID = tok
				break
			}
		}
	}
	if m.ID == "" && len(tokens) > 0 {
		m.ID = tokens[0]
	}

	for _, tok := range tokens {
		switch tok {
		case "+preferred":
			m.Preferred = true
		case "*current", "+current":
			m.Current = true
		}
	}

	metrics := lines[1:]
	w, ok := findInt(widthPattern, metrics)
	if !ok {
		return nil, &FormatError{What: "mode width", Line: header}
	}
	h, ok := findInt(heightPattern, metrics)
	if !ok {
		return nil, &FormatError{What: "mode height", Line: header}
	}
	m.Width, m.Height = w, h

	refresh, ok := findFloat(refreshPattern, metrics)
	if !ok {
		return nil, &FormatError{What: "mode refresh rate", Line: header}
	}
	m.Refresh = refresh
	return m, nil
}

// String renders the mode as "1920x1080 60Hz (0x56)". FindMode accepts this
// form back.
func (m *Mode) String() string {
	return fmt.Sprintf("%dx%d %dHz (%s)", m.Width, m.Height, int(math.Round(m.Refresh)), m.ID)
}

// Resolution renders the native size as "WxH".
func (m *Mode) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

func findInt(re *regexp.Regexp, lines []string) (int, bool) {
	for _, l := range lines {
		if match := re.FindStringSubmatch(l); match != nil {
			v, err := strconv.Atoi(match[1])
			if err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func findFloat(re *regexp.Regexp, lines []string) (float64, bool) {
	for _, l := range lines {
		if match := re.FindStringSubmatch(l); match != nil {
			v, err := strconv.ParseFloat(match[1], 64)
			if err == nil {
				return v, true
			}
		}
	}
	return 0, false
}
