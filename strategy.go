package dither

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tphakala/go-epd-dither/internal/decompose"
)

// Method selects the decomposition algorithm.
type Method int

const (
	// MethodOctahedron splits a six-colour octahedral palette around one of
	// its three pole axes. Fast, but only for palettes whose colours form a
	// convex octahedron.
	MethodOctahedron Method = iota

	// MethodBruteforce searches every tetrahedron, face and edge of the
	// palette. Works for any palette of two or more colours.
	MethodBruteforce

	// MethodNaive searches tetrahedra only and clips points outside them.
	MethodNaive
)

// AxisMode selects the octahedron axis per pixel.
type AxisMode int

const (
	AxisClosest  AxisMode = iota // axis whose centre line is nearest the colour
	AxisFurthest                 // axis whose centre line is farthest from the colour
	AxisAverage                  // mean of all three axes inside the octahedron
	AxisFixed                    // axis Strategy.Index
	AxisOfColor                  // the axis having palette colour Strategy.Index as a pole
)

// TieBreak chooses among tetrahedra that all contain a colour.
type TieBreak int

const (
	FavorMix      TieBreak = iota // spread the mixture over more primaries
	FavorDominant                 // prefer one dominant primary
)

// Strategy is a decomposition method with its parameters. The zero value
// is octahedron-closest.
type Strategy struct {
	Method Method

	// Axis and Index apply to MethodOctahedron.
	Axis  AxisMode
	Index int

	// TieBreak applies to MethodBruteforce and MethodNaive.
	TieBreak TieBreak
}

// Named strategies.
var (
	StrategyOctahedronClosest  = Strategy{Method: MethodOctahedron, Axis: AxisClosest}
	StrategyOctahedronFurthest = Strategy{Method: MethodOctahedron, Axis: AxisFurthest}
	StrategyOctahedronAverage  = Strategy{Method: MethodOctahedron, Axis: AxisAverage}
	StrategyBruteforceMix      = Strategy{Method: MethodBruteforce, TieBreak: FavorMix}
	StrategyBruteforceDominant = Strategy{Method: MethodBruteforce, TieBreak: FavorDominant}
	StrategyNaiveMix           = Strategy{Method: MethodNaive, TieBreak: FavorMix}
	StrategyNaiveDominant      = Strategy{Method: MethodNaive, TieBreak: FavorDominant}
)

const (
	axisPrefix  = "octahedron-axis:"
	colorPrefix = "octahedron-color:"
)

// String returns the name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s.Method {
	case MethodOctahedron:
		switch s.Axis {
		case AxisClosest:
			return "octahedron-closest"
		case AxisFurthest:
			return "octahedron-furthest"
		case AxisAverage:
			return "octahedron-average"
		case AxisFixed:
			return axisPrefix + strconv.Itoa(s.Index)
		case AxisOfColor:
			return colorPrefix + strconv.Itoa(s.Index)
		}
	case MethodBruteforce:
		if s.TieBreak == FavorDominant {
			return "bruteforce-favor-dominant"
		}
		return "bruteforce-favor-mix"
	case MethodNaive:
		if s.TieBreak == FavorDominant {
			return "naive-dominant"
		}
		return "naive-mix"
	}
	return fmt.Sprintf("Strategy(%d,%d,%d)", s.Method, s.Axis, s.Index)
}

// StrategyNames lists the accepted strategy names. <k> and <i> stand for
// an axis number and a palette index.
func StrategyNames() []string {
	return []string{
		"octahedron-closest", "octahedron-furthest", "octahedron-average",
		axisPrefix + "<k>", colorPrefix + "<i>",
		"bruteforce-favor-mix", "bruteforce-favor-dominant",
		"naive-mix", "naive-dominant",
	}
}

// ParseStrategy parses a strategy name as printed by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "octahedron-closest":
		return StrategyOctahedronClosest, nil
	case "octahedron-furthest":
		return StrategyOctahedronFurthest, nil
	case "octahedron-average":
		return StrategyOctahedronAverage, nil
	case "bruteforce-favor-mix":
		return StrategyBruteforceMix, nil
	case "bruteforce-favor-dominant":
		return StrategyBruteforceDominant, nil
	case "naive-mix":
		return StrategyNaiveMix, nil
	case "naive-dominant":
		return StrategyNaiveDominant, nil
	}

	for _, p := range []struct {
		prefix string
		axis   AxisMode
	}{{axisPrefix, AxisFixed}, {colorPrefix, AxisOfColor}} {
		rest, ok := strings.CutPrefix(name, p.prefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return Strategy{}, fmt.Errorf("%w: %q: expected a non-negative integer after %q",
				ErrUnknownStrategy, name, p.prefix)
		}
		return Strategy{Method: MethodOctahedron, Axis: p.axis, Index: n}, nil
	}
	return Strategy{}, fmt.Errorf("%w: %q (accepted: %s)",
		ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
}

func (s Strategy) validate() error {
	switch s.Method {
	case MethodOctahedron:
		if s.Axis < AxisClosest || s.Axis > AxisOfColor {
			return fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
		}
		if s.Index < 0 {
			return fmt.Errorf("%w: %s: negative index", ErrUnknownStrategy, s)
		}
	case MethodBruteforce, MethodNaive:
		if s.TieBreak != FavorMix && s.TieBreak != FavorDominant {
			return fmt.Errorf("%w: %s: unknown tie-break %d", ErrUnknownStrategy, s, s.TieBreak)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
	return nil
}

func (t TieBreak) internal() decompose.TieBreak {
	if t == FavorDominant {
		return decompose.FavorDominant
	}
	return decompose.FavorMix
}

// build constructs the decomposer for points.
func (s Strategy) build(points []r3.Vec, logger *slog.Logger) (decompose.Decomposer, error) {
	opt := decompose.WithLogger(logger)
	switch s.Method {
	case MethodBruteforce:
		b, err := decompose.NewBruteforce(points, opt)
		if err != nil {
			return nil, err
		}
		return b.Bind(s.TieBreak.internal()), nil
	case MethodNaive:
		n, err := decompose.NewNaive(points, opt)
		if err != nil {
			return nil, err
		}
		return n.Bind(s.TieBreak.internal()), nil
	}

	o, err := decompose.NewOctahedron(points, opt)
	if err != nil {
		return nil, err
	}
	var axis decompose.AxisStrategy
	switch s.Axis {
	case AxisFurthest:
		axis = decompose.Furthest
	case AxisAverage:
		axis = decompose.Average
	case AxisFixed:
		axis = decompose.Axis(s.Index)
	case AxisOfColor:
		k, ok := o.AxisFromColor(s.Index)
		if !ok {
			return nil, fmt.Errorf("%w: %s: palette has %d colors", ErrInvalidConfig, s, len(points))
		}
		axis = decompose.Axis(k)
	default:
		axis = decompose.Closest
	}
	logger.Debug("octahedron axes", "opposites", o.Opposites(), "axis", axis.String())
	return o.Bind(axis), nil
}
