package panels

import (
	"fmt"
	"strings"
)

// State is the committed layout of the three panes.
type State int

const (
	// StateCenter shows only the center pane; both drawers are hidden.
	StateCenter State = iota
	// StateLeft reveals the left drawer.
	StateLeft
	// StateRight reveals the right drawer.
	StateRight
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateCenter:
		return "center"
	case StateLeft:
		return "left"
	case StateRight:
		return "right"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Valid reports whether s is one of the three layout states.
func (s State) Valid() bool {
	return s == StateCenter || s == StateLeft || s == StateRight
}

// ParseState parses "left", "center" or "right" (case-insensitive).
func ParseState(s string) (State, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center":
		return StateCenter, nil
	case "left":
		return StateLeft, nil
	case "right":
		return StateRight, nil
	default:
		return StateCenter, fmt.Errorf("unknown layout state %q (want left, center or right)", s)
	}
}

// States lists the states ordered by resting offset, most negative first.
var States = []State{StateLeft, StateCenter, StateRight}

// DrawerWidth is the width a drawer occupies for a container of the given
// width: everything except the strip of width/hangFactor that the center
// pane keeps on screen. Non-positive widths yield zero.
func DrawerWidth(width, hangFactor float64) float64 {
	if width <= 0 {
		return 0
	}
	return width - width/hangFactor
}

// RestingOffset is the settled horizontal position of the center pane for
// state s in a container of the given width.
func RestingOffset(s State, width, hangFactor float64) float64 {
	switch s {
	case StateRight:
		return DrawerWidth(width, hangFactor)
	case StateLeft:
		return -DrawerWidth(width, hangFactor)
	default:
		return 0
	}
}
