package option

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
)

// Unbounded as the maximum of Args accepts any number of positional
// arguments.
const Unbounded = -1

// An alternative set of options together with the number of positional
// arguments accepted after them.
type group struct {
	options map[string]*Option
	minArgs int
	maxArgs int
	// Set when an option or bounds were given.
	touched bool
}

func (g *group) add(o *Option) {
	if _, ok := g.options[o.Name]; ok {
		panic(ConfigError{fmt.Sprintf("option %q defined more than once", o.Name)})
	}
	if g.options == nil {
		g.options = make(map[string]*Option)
	}
	g.options[o.Name] = o
	g.touched = true
}

func (g *group) setBounds(bounds []int) {
	switch len(bounds) {
	case 0:
		g.minArgs, g.maxArgs = 0, 0
	case 1:
		g.minArgs, g.maxArgs = bounds[0], Unbounded
	case 2:
		g.minArgs, g.maxArgs = bounds[0], bounds[1]
	default:
		panic(ConfigError{fmt.Sprintf("too many argument bounds: %v", bounds)})
	}
	if g.minArgs < 0 {
		panic(ConfigError{fmt.Sprintf("negative minimum argument count: %d", g.minArgs)})
	}
	if g.maxArgs != Unbounded && g.maxArgs < g.minArgs {
		panic(ConfigError{fmt.Sprintf("maximum argument count %d less than minimum %d", g.maxArgs, g.minArgs)})
	}
	g.touched = true
}

// Looks up an option by exact name, then by the part before the first '='.
// In the latter case the rest is returned as an inline value.
func (g *group) find(arg string) (o *Option, value string, inline bool) {
	if o, ok := g.options[arg]; ok {
		return o, "", false
	}
	name, sep, value := xstrings.Partition(arg, "=")
	if sep == "" {
		return nil, "", false
	}
	o, ok := g.options[name]
	if !ok {
		return nil, "", false
	}
	return o, value, true
}

func (g *group) reset() {
	for _, o := range g.options {
		o.reset()
	}
}

// Options in name order.
func (g *group) sorted() (ret []*Option) {
	for _, o := range g.options {
		ret = append(ret, o)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})
	return
}

func (g *group) acceptsArgs(n int) bool {
	if n < g.minArgs {
		return false
	}
	return g.maxArgs == Unbounded || n <= g.maxArgs
}

// The positional part of a usage line, for example "<arg> [<arg>...]".
func (g *group) argsHelp() string {
	var parts []string
	for range iter.N(g.minArgs) {
		parts = append(parts, "<arg>")
	}
	switch {
	case g.maxArgs == Unbounded:
		parts = append(parts, "[<arg>...]")
	case g.maxArgs > g.minArgs:
		n := g.maxArgs - g.minArgs
		s := strings.Repeat("[<arg> ", n-1) + "[<arg>" + strings.Repeat("]", n)
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

func (g *group) usageLine(program string) string {
	var parts []string
	if program != "" {
		parts = append(parts, program)
	}
	for _, o := range g.sorted() {
		parts = append(parts, o.help())
	}
	if a := g.argsHelp(); a != "" {
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
