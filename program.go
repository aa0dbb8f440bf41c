package option

import (
	"io"
	"log"
	"os"
)

// Logger traces how arguments are matched against groups. Output is
// discarded unless redirected, for example with Logger.SetOutput(os.Stderr).
var Logger = log.New(io.Discard, "option: ", log.Lshortfile)

// Program holds alternative groups of options, tried in the order they were
// declared. It is not safe for concurrent use.
type Program struct {
	name        string
	description string
	errorWriter io.Writer

	groups []*group
	group  *group
	// The failures of the last Parse, one per group tried.
	errors []string
}

func New(opts ...programOpt) *Program {
	p := &Program{
		errorWriter: os.Stderr,
		group:       new(group),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Required adds an option that must be given when the current group is
// chosen.
func (p *Program) Required(name string, f Func) *Program {
	p.group.add(newOption(name, true, f))
	return p
}

// Optional adds an option to the current group.
func (p *Program) Optional(name string, f Func) *Program {
	p.group.add(newOption(name, false, f))
	return p
}

// Group closes the current group and starts a new one.
func (p *Program) Group() *Program {
	p.groups = append(p.groups, p.group)
	p.group = new(group)
	return p
}

// Args sets how many positional arguments the current group accepts, then
// closes it. With no bounds none are accepted. A single bound is the minimum
// with no maximum. Two bounds are the minimum and maximum, where the maximum
// may be Unbounded.
func (p *Program) Args(bounds ...int) *Program {
	p.group.setBounds(bounds)
	return p.Group()
}

// Closes the current group unless it was left empty after an earlier one.
func (p *Program) seal() {
	if p.group.touched || len(p.groups) == 0 {
		p.Group()
	}
}

// Parse tries each group in turn against args. For the first group that fits
// the callbacks of the given options are run, in the order they appeared, and
// the positional arguments are returned as a subslice of args. Otherwise a
// *UsageError is returned naming the first failure.
func (p *Program) Parse(args []string) ([]string, error) {
	p.seal()
	p.errors = nil
	for i, g := range p.groups {
		left, matched, err := p.parseGroup(args, g)
		if ae, ok := err.(argumentError); ok {
			Logger.Printf("group %d: %v", i, ae)
			p.errors = append(p.errors, ae.msg)
			continue
		}
		if err != nil {
			return nil, err
		}
		Logger.Printf("group %d matched %d options, %d arguments left", i, len(matched), len(left))
		if err := execOptions(matched); err != nil {
			return nil, err
		}
		return left, nil
	}
	return nil, p.Usage()
}
