package option

// A CommandFunc is run with the context and the arguments following the
// command name.
type CommandFunc[C any] func(ctx C, args []string) error

// Commands dispatches on the first argument to one of several registered
// commands, typically each parsing the rest with its own Program.
type Commands[C any] struct {
	program string
	// Registration order, used for usage lines.
	names    []string
	commands map[string]CommandFunc[C]
}

// NewCommands returns an empty dispatcher. A non-empty program is prefixed to
// each usage line.
func NewCommands[C any](program string) *Commands[C] {
	return &Commands[C]{
		program:  program,
		commands: make(map[string]CommandFunc[C]),
	}
}

func (me *Commands[C]) Command(name string, f CommandFunc[C]) *Commands[C] {
	if _, ok := me.commands[name]; ok {
		panic(ConfigError{"command " + name + " defined more than once"})
	}
	me.names = append(me.names, name)
	me.commands[name] = f
	return me
}

// Parse runs the command named by args[0]. A missing or unknown command gives
// a *UsageError listing the commands.
func (me *Commands[C]) Parse(ctx C, args []string) error {
	if len(args) == 0 {
		return me.Usage()
	}
	f, ok := me.commands[args[0]]
	if !ok {
		Logger.Printf("unknown command %q", args[0])
		return me.Usage()
	}
	return f(ctx, args[1:])
}

func (me *Commands[C]) Usage() *UsageError {
	ue := &UsageError{}
	for _, n := range me.names {
		if me.program != "" {
			n = me.program + " " + n
		}
		ue.Lines = append(ue.Lines, n)
	}
	return ue
}
