package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitString(t *testing.T) {
	for _, _case := range []struct {
		s        string
		empties  bool
		expected []string
	}{
		{"", false, nil},
		{"", true, []string{""}},
		{"a,b", false, []string{"a", "b"}},
		{"a,,b,", false, []string{"a", "b"}},
		{",a,,b,", true, []string{"", "a", "", "b", ""}},
		{"abc", true, []string{"abc"}},
	} {
		assert.EqualValues(t, _case.expected, SplitString(_case.s, ',', _case.empties), "%q", _case.s)
	}
}

func TestNumericRange(t *testing.T) {
	for _, _case := range []struct {
		s        string
		expected []int
	}{
		{"", []int{}},
		{"3", []int{3}},
		{"1,3-5", []int{1, 3, 4, 5}},
		{"-3", []int{1, 2, 3}},
		{"8-", []int{8, 9, 10}},
		{"-", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"2-4,3-6,,1", []int{1, 2, 3, 4, 5, 6}},
		{"5-3", []int{}},
	} {
		r, err := NumericRange(_case.s, 1, 10)
		require.NoError(t, err, _case.s)
		assert.EqualValues(t, _case.expected, r, _case.s)
	}
}

func TestNumericRangeErrors(t *testing.T) {
	_, err := NumericRange("1-2-3", 1, 10)
	assert.EqualError(t, err, "bad range: 1-2-3")
	_, err = NumericRange("1,x", 1, 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad range: 1,x")
}
