package tuple

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleString(t *testing.T) {
	assert.Equal(t, "point(4.3, -4.2, 3.1)", NewPoint(4.3, -4.2, 3.1).String())
	assert.Equal(t, "vector(1, 0, -2.5)", NewVector(1, 0, -2.5).String())
	assert.Equal(t, "tuple(1, -2, 3, 4)", New(1, -2, 3, 4).String())
	assert.Equal(t, "tuple(1, 2, 3, 0.999999)", New(1, 2, 3, 0.999999).String())
}

func TestTupleKind(t *testing.T) {
	assert.Equal(t, "point", NewPoint(0, 0, 0).Kind())
	assert.Equal(t, "vector", NewVector(0, 0, 0).Kind())
	assert.Equal(t, "tuple", New(0, 0, 0, 2).Kind())
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected Tuple
	}{
		{"point(3, 2, 1)", NewPoint(3, 2, 1)},
		{"vector(1,-2,3)", NewVector(1, -2, 3)},
		{"tuple(1, -2, 3, 4)", New(1, -2, 3, 4)},
		{"(1, -2, 3, 4)", New(1, -2, 3, 4)},
		{"1,-2,3,4", New(1, -2, 3, 4)},
		{"  POINT ( 0.5 , 1e-3 , -7 )  ", NewPoint(0.5, 0.001, -7)},
		{"Vector(0, 0, 0)", NewVector(0, 0, 0)},
	} {
		result, err := Parse(tc.input)
		require.NoError(t, err, tc.input)
		assertTupleEqual(t, tc.expected, result)
		assert.Equal(t, tc.expected.W, result.W, tc.input)
	}
}

func TestParseInfAndNaN(t *testing.T) {
	result, err := Parse("tuple(+Inf, -Inf, NaN, 0)")
	require.NoError(t, err)

	assert.True(t, math.IsInf(result.X, 1))
	assert.True(t, math.IsInf(result.Y, -1))
	assert.True(t, math.IsNaN(result.Z))
	assert.True(t, result.IsVector())
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"point(1, 2)",
		"point(1, 2, 3, 1)",
		"vector()",
		"tuple(1, 2, 3)",
		"1, 2, 3",
		"point(1, 2, 3",
		"point(1, x, 3)",
		"matrix(1, 2, 3, 4)",
		"tuple(1, 2, 3, 4))",
	} {
		_, err := Parse(input)
		require.Error(t, err, input)
		assert.ErrorIs(t, err, ErrSyntax, input)
	}
}

func TestStringParsesBack(t *testing.T) {
	for _, a := range []Tuple{
		NewPoint(4.3, -4.2, 3.1),
		NewVector(-1, 2, -3),
		New(3.5, -7, 10.5, -14),
		New(1, 2, 3, 0.999999),
		New(1e-9, 1e20, -0.1, 2),
	} {
		result, err := Parse(a.String())
		require.NoError(t, err, a.String())
		assertTupleEqual(t, a, result)
		assert.Equal(t, a.Kind(), result.Kind())
	}
}
