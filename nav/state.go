// Package nav holds the viewed region and step size, and the pan and
// jump transitions between them.
package nav

import (
	"math"

	"github.com/andareed/tcov/coverage"
	"github.com/pkg/errors"
)

// DefaultStep is the pan distance used when none is configured.
const DefaultStep = 10

// Action is one of the navigation transitions.
type Action int

const (
	PanLeft Action = iota
	PanRight
	SetStep
	Jump
)

func (a Action) String() string {
	switch a {
	case PanLeft:
		return "pan-left"
	case PanRight:
		return "pan-right"
	case SetStep:
		return "set-step"
	case Jump:
		return "jump"
	default:
		return "unknown"
	}
}

// Command is a navigation request. Step is read by SetStep, Region by Jump.
type Command struct {
	Action Action
	Step   int
	Region coverage.Region
}

// State is the currently displayed region and the pan step size.
type State struct {
	Region coverage.Region
	Step   int
}

// New returns a State viewing region, panning by step.
func New(region coverage.Region, step int) (State, error) {
	if err := region.Validate(); err != nil {
		return State{}, err
	}
	if step <= 0 {
		return State{}, errors.Errorf("step size must be positive, got %d", step)
	}
	return State{Region: region, Step: step}, nil
}

// Apply returns the state after cmd and whether cmd was accepted. A
// rejected command returns s unchanged. The region keeps its width on
// every pan; panning left stops at position 0 and a pan right that would
// overflow the coordinate range is rejected.
func (s State) Apply(cmd Command) (State, bool) {
	switch cmd.Action {
	case PanLeft:
		next := s
		next.Region = s.Region.Shift(max(0, s.Region.Start-s.Step))
		return next, true
	case PanRight:
		if s.Region.Start > math.MaxInt-s.Step-s.Region.Width() {
			return s, false
		}
		next := s
		next.Region = s.Region.Shift(s.Region.Start + s.Step)
		return next, true
	case SetStep:
		if cmd.Step <= 0 {
			return s, false
		}
		next := s
		next.Step = cmd.Step
		return next, true
	case Jump:
		if cmd.Region.Validate() != nil {
			return s, false
		}
		next := s
		next.Region = cmd.Region
		return next, true
	}
	return s, false
}

// PanLeft is shorthand for Apply(Command{Action: PanLeft}).
func (s State) PanLeft() State {
	next, _ := s.Apply(Command{Action: PanLeft})
	return next
}

// PanRight is shorthand for Apply(Command{Action: PanRight}).
func (s State) PanRight() State {
	next, _ := s.Apply(Command{Action: PanRight})
	return next
}
