package option

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/anacrolix/missinggo/v2"
)

// Argv parses the process arguments and returns the positional ones. Errors
// are printed, then the process exits with status 2 for usage errors and 1
// otherwise. The program name defaults to the base name of os.Args[0].
func (p *Program) Argv() []string {
	if p.name == "" && len(os.Args) != 0 {
		p.name = filepath.Base(os.Args[0])
	}
	var args []string
	if len(os.Args) > 1 {
		args = os.Args[1:]
	}
	left, err := p.Parse(args)
	if err != nil {
		fmt.Fprint(p.errorWriter, missinggo.Unchomp(err.Error()))
		os.Exit(exitCode(err))
	}
	return left
}

func exitCode(err error) int {
	if IsUsage(err) {
		return 2
	}
	return 1
}
