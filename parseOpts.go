package option

import "io"

type programOpt func(p *Program)

// Sets the program name shown at the start of each usage line.
func Name(name string) programOpt {
	return func(p *Program) {
		p.name = name
	}
}

// Writes program description after the usage lines in WriteUsage.
func Description(desc string) programOpt {
	return func(p *Program) {
		p.description = desc
	}
}

// Where Argv reports errors. Defaults to os.Stderr.
func ErrorWriter(w io.Writer) programOpt {
	return func(p *Program) {
		p.errorWriter = w
	}
}
