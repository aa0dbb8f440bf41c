package option

// Func is the callback run for a matched option. It is either a BoolFunc, for
// options that take no value, or a ValueFunc, for options that take one.
type Func interface {
	takesValue() bool
}

// Called when a boolean option was given.
type BoolFunc func() error

// Called with the matched option, whose Value holds the argument.
type ValueFunc func(o Option) error

func (BoolFunc) takesValue() bool  { return false }
func (ValueFunc) takesValue() bool { return true }

// Set returns a BoolFunc that sets b to true.
func Set(b *bool) BoolFunc {
	return func() error {
		*b = true
		return nil
	}
}

// Store returns a ValueFunc that stores the option value in s.
func Store(s *string) ValueFunc {
	return func(o Option) error {
		*s = o.Value
		return nil
	}
}

// Option is a named option registered in one group of a Program. The copy
// handed to a ValueFunc is only a view; changing it has no effect.
type Option struct {
	Name     string
	Required bool
	// True once the option was seen in the current parse attempt.
	Matched bool
	// The argument of a value option. Only meaningful when Matched.
	Value string

	f Func
}

func newOption(name string, required bool, f Func) *Option {
	if f == nil {
		panic(ConfigError{"nil callback for option " + name})
	}
	return &Option{
		Name:     name,
		Required: required,
		f:        f,
	}
}

// TakesValue reports whether the option consumes an argument.
func (me *Option) TakesValue() bool {
	return me.f.takesValue()
}

func (me *Option) reset() {
	me.Matched = false
	me.Value = ""
}

func (me *Option) exec() error {
	switch f := me.f.(type) {
	case BoolFunc:
		return f()
	case ValueFunc:
		return f(*me)
	default:
		panic(f)
	}
}

// The fragment of a usage line describing this option.
func (me *Option) help() string {
	s := me.Name
	if me.TakesValue() {
		s += " <value>"
	}
	if me.Required {
		return s
	}
	return "[" + s + "]"
}
