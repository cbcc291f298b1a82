package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"affinelab/internal/geom"
)

// ErrInvalidInput is returned when the input box text cannot be turned into
// parameters for the active transform.
var ErrInvalidInput = errors.New("invalid transform input")

// InputError records which transform rejected which text.
type InputError struct {
	Kind   Kind
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s input %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

// Message is the text shown under the input box.
func (e *InputError) Message() string {
	return fmt.Sprintf("Invalid input. Please enter valid numbers for %s.", e.Kind)
}

type kindSpec struct {
	name   string
	prompt string
	arity  int
	apply  func(p geom.Polygon, v []float64) geom.Polygon
}

var kinds = map[Kind]kindSpec{
	KindTranslate: {
		name:   "Translate",
		prompt: "Enter tx,ty (e.g., 50,30):",
		arity:  2,
		apply:  func(p geom.Polygon, v []float64) geom.Polygon { return geom.Translate(p, v[0], v[1]) },
	},
	KindScale: {
		name:   "Scale",
		prompt: "Enter sx,sy (e.g., 1.5,1.2):",
		arity:  2,
		apply:  func(p geom.Polygon, v []float64) geom.Polygon { return geom.Scale(p, v[0], v[1]) },
	},
	KindRotate: {
		name:   "Rotate",
		prompt: "Enter angle (e.g., 45):",
		arity:  1,
		apply:  func(p geom.Polygon, v []float64) geom.Polygon { return geom.Rotate(p, v[0]) },
	},
	KindShear: {
		name:   "Shear",
		prompt: "Enter shx,shy (e.g., 0.3,0.2):",
		arity:  2,
		apply:  func(p geom.Polygon, v []float64) geom.Polygon { return geom.Shear(p, v[0], v[1]) },
	},
}

func (k Kind) String() string {
	if s, ok := kinds[k]; ok {
		return s.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Prompt is the hint shown above the input box.
func (k Kind) Prompt() string { return kinds[k].prompt }

// Arity is the number of comma-separated values the transform needs.
func (k Kind) Arity() int { return kinds[k].arity }

// Params is a successfully parsed input buffer.
type Params struct {
	Kind   Kind
	Values []float64
}

// Apply runs the transform on p.
func (pr Params) Apply(p geom.Polygon) geom.Polygon {
	return kinds[pr.Kind].apply(p, pr.Values)
}

// parseParams splits input on commas and parses each token as a float.
// The token count must match the kind's arity exactly.
func parseParams(kind Kind, input string) (Params, error) {
	fail := func(reason string) (Params, error) {
		return Params{}, &InputError{Kind: kind, Input: input, Reason: reason}
	}

	spec, ok := kinds[kind]
	if !ok {
		return fail("unknown transform")
	}
	if strings.TrimSpace(input) == "" {
		return fail("empty input")
	}

	tokens := strings.Split(input, ",")
	if len(tokens) != spec.arity {
		return fail(fmt.Sprintf("want %d values, got %d", spec.arity, len(tokens)))
	}

	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return fail(fmt.Sprintf("%q is not a number", strings.TrimSpace(tok)))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fail(fmt.Sprintf("%q is not finite", strings.TrimSpace(tok)))
		}
		values[i] = v
	}
	return Params{Kind: kind, Values: values}, nil
}

// commandKind maps a toolbar command to the parametric transform it opens.
func commandKind(cmd Command) (Kind, bool) {
	switch cmd {
	case CmdTranslate:
		return KindTranslate, true
	case CmdScale:
		return KindScale, true
	case CmdRotate:
		return KindRotate, true
	case CmdShear:
		return KindShear, true
	}
	return 0, false
}

func kindCommand(k Kind) Command {
	switch k {
	case KindTranslate:
		return CmdTranslate
	case KindScale:
		return CmdScale
	case KindRotate:
		return CmdRotate
	case KindShear:
		return CmdShear
	}
	return CmdNone
}
