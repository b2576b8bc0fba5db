package tuple

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every error returned from Parse
var ErrSyntax = errors.New("invalid tuple syntax")

const (
	kindPoint  = "point"
	kindVector = "vector"
	kindTuple  = "tuple"
)

// Kind names the tuple as "point", "vector" or "tuple"
func (t Tuple) Kind() string {
	switch {
	case t.IsPoint():
		return kindPoint
	case t.IsVector():
		return kindVector
	default:
		return kindTuple
	}
}

// String formats the tuple in the form accepted by Parse
func (t Tuple) String() string {
	components := []float64{t.X, t.Y, t.Z}
	kind := t.Kind()
	if kind == kindTuple {
		components = append(components, t.W)
	}

	parts := make([]string, len(components))
	for i, c := range components {
		parts[i] = strconv.FormatFloat(c, 'g', -1, 64)
	}
	return kind + "(" + strings.Join(parts, ", ") + ")"
}

// Parse reads a tuple written as point(x, y, z), vector(x, y, z),
// tuple(x, y, z, w), (x, y, z, w) or x, y, z, w
func Parse(s string) (Tuple, error) {
	input := strings.TrimSpace(s)
	kind := kindTuple
	body := input

	if open := strings.IndexByte(input, '('); open >= 0 {
		if !strings.HasSuffix(input, ")") {
			return Tuple{}, fmt.Errorf("%w: %q: missing closing parenthesis", ErrSyntax, s)
		}
		if name := strings.ToLower(strings.TrimSpace(input[:open])); name != "" {
			kind = name
		}
		body = input[open+1 : len(input)-1]
	}

	var arity int
	switch kind {
	case kindPoint, kindVector:
		arity = 3
	case kindTuple:
		arity = 4
	default:
		return Tuple{}, fmt.Errorf("%w: %q: unknown kind %q", ErrSyntax, s, kind)
	}

	fields := strings.Split(body, ",")
	if len(fields) != arity {
		return Tuple{}, fmt.Errorf("%w: %q: %s needs %d components, got %d", ErrSyntax, s, kind, arity, len(fields))
	}

	values := make([]float64, arity)
	for i, field := range fields {
		field = strings.TrimSpace(field)
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Tuple{}, fmt.Errorf("%w: %q: invalid component %q", ErrSyntax, s, field)
		}
		values[i] = v
	}

	switch kind {
	case kindPoint:
		return NewPoint(values[0], values[1], values[2]), nil
	case kindVector:
		return NewVector(values[0], values[1], values[2]), nil
	default:
		return New(values[0], values[1], values[2], values[3]), nil
	}
}
