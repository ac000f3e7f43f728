package version

import (
	"errors"
	"testing"

	"github.com/lutece-go/lutece-sql/core/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	V_1_0_0  = "1.0.0"
	V_1_1_1  = "1.1.1"
	V_1_0_9  = "1.0.9"
	V_1_0_10 = "1.0.10"
)

func compare(t *testing.T, a, b string) int {
	t.Helper()

	va, err := Parse(a)
	require.NoError(t, err)
	vb, err := Parse(b)
	require.NoError(t, err)

	return va.Compare(vb)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, compare(t, V_1_0_0, V_1_0_0))
	assert.Negative(t, compare(t, V_1_0_0, V_1_1_1))
	assert.Positive(t, compare(t, V_1_1_1, V_1_0_10))
	assert.Negative(t, compare(t, V_1_0_9, V_1_0_10))
	assert.Negative(t, compare(t, V_1_0_0, V_1_0_9))
	assert.Negative(t, compare(t, "1.0", V_1_0_0))
	assert.Positive(t, compare(t, "2", "1.9.9"))
}

func TestCompareIsAntisymmetric(t *testing.T) {
	versions := []string{"0", "1", "1.0", "1.0.0", "1.0.9", "1.0.10", "1.1.1", "2.0.0-SNAPSHOT", "10.2"}

	for _, a := range versions {
		assert.Equal(t, 0, compare(t, a, a), a)
		for _, b := range versions {
			assert.Equal(t, compare(t, a, b), -compare(t, b, a), "%s <> %s", a, b)
		}
	}
}

func TestCompareNil(t *testing.T) {
	v := MustParse(V_1_0_0)

	assert.Positive(t, v.Compare(nil))
	assert.Negative(t, (*Version)(nil).Compare(v))
	assert.Equal(t, 0, (*Version)(nil).Compare(nil))
}

func TestQualifiersDoNotAffectOrdering(t *testing.T) {
	assert.True(t, MustParse("2.0.0-SNAPSHOT").Equal(MustParse("2.0.0")))
	assert.True(t, MustParse("2.0.0-BETA1").Equal(MustParse("2.0.0")))
	assert.True(t, MustParse("2.0.0-rc").Equal(MustParse("2.0.0-ALPHA")))
}

func TestParseSnapshot(t *testing.T) {
	v, err := Parse("2.0.0-SNAPSHOT")
	require.NoError(t, err)

	assert.True(t, v.IsSnapshot())
	assert.False(t, v.IsUnstable())
	assert.Equal(t, []int{2, 0, 0}, v.Components())
	assert.Equal(t, MustParse("2.0.0").Components(), v.Components())

	v, err = Parse("3.1-snapshot")
	require.NoError(t, err)
	assert.True(t, v.IsSnapshot())
	assert.Equal(t, []int{3, 1}, v.Components())
}

func TestParseUnstable(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{"2.0.0-BETA1", []int{2, 0, 0}},
		{"2.0.0-beta", []int{2, 0, 0}},
		{"1.5-ALPHA-2", []int{1, 5}},
		{"7.0.0-RC-03", []int{7, 0, 0}},
		{"7.0.0-rc2", []int{7, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, v.IsUnstable())
			assert.False(t, v.IsSnapshot())
			assert.Equal(t, tt.expected, v.Components())
			assert.Equal(t, tt.input, v.Raw())
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{"", "1.a", "1..0", "1.0.", ".1", "+1", "-SNAPSHOT", "1.0-FINAL", "99999999999999999999"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, err := Parse(input)
			assert.Nil(t, v)
			require.Error(t, err)

			assert.True(t, errors.Is(err, errs.ErrParse))

			var parseErr *errs.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, errs.KIND_VERSION, parseErr.Kind)
			assert.Equal(t, input, parseErr.Input)
		})
	}
}

func TestParseOptional(t *testing.T) {
	v, err := ParseOptional(nil)
	assert.NoError(t, err)
	assert.Nil(t, v)

	text := V_1_0_9
	v, err = ParseOptional(&text)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 0, 9}, v.Components())
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("x") })
	assert.NotPanics(t, func() { MustParse(V_1_0_0) })
}

func TestComponentsIsACopy(t *testing.T) {
	v := MustParse(V_1_0_0)
	components := v.Components()
	components[0] = 42

	assert.Equal(t, []int{1, 0, 0}, v.Components())
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.0.10", MustParse(V_1_0_10).String())
	assert.Equal(t, "2.0.0", MustParse("2.0.0-SNAPSHOT").String())
	assert.Equal(t, "2.0.0-SNAPSHOT", MustParse("2.0.0-SNAPSHOT").Raw())
}
