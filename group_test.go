package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupFind(t *testing.T) {
	var g group
	g.add(newOption("--flag", false, Set(new(bool))))
	g.add(newOption("--value", false, Store(new(string))))
	g.add(newOption("--odd=name", false, Set(new(bool))))
	for _, _case := range []struct {
		arg    string
		name   string
		value  string
		inline bool
	}{
		{"--flag", "--flag", "", false},
		{"--value", "--value", "", false},
		{"--value=x", "--value", "x", true},
		{"--value==", "--value", "=", true},
		{"--value=", "--value", "", true},
		{"--flag=1", "--flag", "1", true},
		{"--odd=name", "--odd=name", "", false},
		{"--other", "", "", false},
		{"--other=x", "", "", false},
		{"plain", "", "", false},
	} {
		o, value, inline := g.find(_case.arg)
		if _case.name == "" {
			assert.Nil(t, o, _case.arg)
			continue
		}
		if assert.NotNil(t, o, _case.arg) {
			assert.Equal(t, _case.name, o.Name)
		}
		assert.Equal(t, _case.value, value, _case.arg)
		assert.Equal(t, _case.inline, inline, _case.arg)
	}
}

func TestGroupSorted(t *testing.T) {
	var g group
	for _, n := range []string{"--c", "-b", "--a"} {
		g.add(newOption(n, false, Set(new(bool))))
	}
	var names []string
	for _, o := range g.sorted() {
		names = append(names, o.Name)
	}
	assert.EqualValues(t, []string{"--a", "--c", "-b"}, names)
}

func TestGroupAcceptsArgs(t *testing.T) {
	var g group
	assert.True(t, g.acceptsArgs(0))
	assert.False(t, g.acceptsArgs(1))
	g.setBounds([]int{1, Unbounded})
	assert.False(t, g.acceptsArgs(0))
	assert.True(t, g.acceptsArgs(100))
	g.setBounds([]int{1, 2})
	assert.True(t, g.acceptsArgs(2))
	assert.False(t, g.acceptsArgs(3))
}

func TestOptionReset(t *testing.T) {
	o := newOption("--v", true, Store(new(string)))
	o.Matched = true
	o.Value = "x"
	o.reset()
	assert.False(t, o.Matched)
	assert.Empty(t, o.Value)
	assert.True(t, o.TakesValue())
	assert.False(t, newOption("--b", true, Set(new(bool))).TakesValue())
}
