package option

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const terminator = "--"

// Matches args against the options of g. On success the returned slice holds
// the positional arguments. An argumentError means g doesn't fit and the next
// group may be tried.
func (p *Program) parseGroup(args []string, g *group) (left []string, matched []*Option, err error) {
	g.reset()
	var pending *Option
	left = args
scan:
	for len(left) != 0 {
		a := left[0]
		if pending != nil {
			pending.Value = a
			pending.Matched = true
			matched = append(matched, pending)
			pending = nil
			left = left[1:]
			continue
		}
		o, value, inline := g.find(a)
		switch {
		case o != nil && o.TakesValue():
			if inline {
				o.Value = value
				o.Matched = true
				matched = append(matched, o)
			} else {
				pending = o
			}
		case o != nil:
			if inline {
				return nil, nil, argumentError{"illegal option value: " + a}
			}
			o.Matched = true
			matched = append(matched, o)
		case a == terminator:
			left = left[1:]
			break scan
		case strings.HasPrefix(a, "-"):
			return nil, nil, argumentError{"unknown option: " + a}
		default:
			break scan
		}
		left = left[1:]
	}
	if pending != nil {
		return nil, nil, argumentError{"missing option value: " + pending.Name}
	}
	for _, o := range g.sorted() {
		if o.Required && !o.Matched {
			return nil, nil, argumentError{"missing required argument: " + o.Name}
		}
	}
	if !g.acceptsArgs(len(left)) {
		return nil, nil, p.positionalError(g, left)
	}
	return
}

func (p *Program) positionalError(g *group, left []string) *UsageError {
	msg := "missing argument"
	if len(left) > g.minArgs {
		msg = fmt.Sprintf("excess argument: %q", left[g.maxArgs])
	}
	return &UsageError{Err: msg, Lines: p.Help()}
}

// Runs the callbacks in the order the options were matched.
func execOptions(matched []*Option) error {
	for _, o := range matched {
		err := o.exec()
		if err == nil {
			continue
		}
		if IsUsage(err) {
			return err
		}
		return errors.Wrapf(err, "option %s", o.Name)
	}
	return nil
}
