package model

import (
	"fmt"
	"strings"
)

// Orientation is the rotation applied to an output.
type Orientation int

const (
	Normal Orientation = iota
	Left
	Inverted
	Right
)

var orientationNames = [...]string{"normal", "left", "inverted", "right"}

func (o Orientation) String() string {
	if o < Normal || o > Right {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// Rotated reports whether the orientation exchanges the horizontal and
// vertical axes.
func (o Orientation) Rotated() bool {
	return o == Left || o == Right
}

// ParseOrientation converts an xrandr rotation keyword to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	for i, name := range orientationNames {
		if strings.EqualFold(s, name) {
			return Orientation(i), nil
		}
	}
	return Normal, fmt.Errorf("unknown orientation: %q (expected normal, left, inverted, or right)", s)
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
