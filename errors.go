package option

import (
	"strings"

	"golang.org/x/xerrors"
)

// An option level mistake in one group. Parse moves on to the next group
// when it sees one.
type argumentError struct {
	msg string
}

func (ae argumentError) Error() string {
	return ae.msg
}

// ConfigError is panicked when a Program is declared inconsistently, such as
// an option registered twice in a group or bad argument bounds.
type ConfigError struct {
	msg string
}

func (ce ConfigError) Error() string {
	return ce.msg
}

// UsageError is returned when the arguments match no group, when the number
// of positional arguments is wrong, or when a callback asks for it by
// returning Program.Usage.
type UsageError struct {
	// The first diagnostic, may be empty.
	Err string
	// One line per group, or per command for Commands.
	Lines []string
}

const (
	usagePrefix = "usage: "
	usageIndent = "       "
)

func (ue *UsageError) Error() string {
	var b strings.Builder
	if ue.Err != "" {
		b.WriteString(ue.Err)
		if len(ue.Lines) != 0 {
			b.WriteByte('\n')
		}
	}
	for i, l := range ue.Lines {
		if i == 0 {
			b.WriteString(usagePrefix)
		} else {
			b.WriteString("\n" + usageIndent)
		}
		b.WriteString(l)
	}
	return b.String()
}

// IsUsage reports whether err is, or wraps, a *UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return xerrors.As(err, &ue)
}
