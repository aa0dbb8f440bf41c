package option

import (
	"fmt"
	"io"

	"github.com/anacrolix/missinggo/v2"
)

// Help returns one usage line per group, without the "usage: " prefix.
func (p *Program) Help() (ret []string) {
	for _, g := range p.groups {
		ret = append(ret, g.usageLine(p.name))
	}
	if p.group.touched || len(p.groups) == 0 {
		ret = append(ret, p.group.usageLine(p.name))
	}
	return
}

// Usage returns the error reported when parsing fails, carrying the first
// failure of the last Parse if there was one. Callbacks can return it to
// abort parsing, for instance to handle --help.
func (p *Program) Usage() *UsageError {
	ue := &UsageError{Lines: p.Help()}
	if len(p.errors) != 0 {
		ue.Err = p.errors[0]
	}
	return ue
}

// WriteUsage writes the usage lines followed by the description.
func (p *Program) WriteUsage(w io.Writer) {
	fmt.Fprint(w, missinggo.Unchomp((&UsageError{Lines: p.Help()}).Error()))
	if p.description != "" {
		fmt.Fprintf(w, "\n%s", missinggo.Unchomp(p.description))
	}
}
