// Package option parses command line options and positional arguments
// against alternative groups of options.
//
// For example:
//  var verbose bool
//  var print string
//  args, err := option.New(option.Name("main")).
//      Optional("--verbose", option.Set(&verbose)).
//      Optional("--print", option.Store(&print)).
//      Args(0, option.Unbounded).
//      Parse(os.Args[1:])
//
// Options are given either as a BoolFunc, for options without a value, or a
// ValueFunc, for options taking one. A value follows the option as the next
// argument or after an equals sign, as in --print=x. Option scanning stops at
// the first positional argument or after "--".
//
// Group and Args close the current group and start another. Parse tries the
// groups in the order they were declared and uses the first that fits. If
// none does, or the chosen group gets the wrong number of positional
// arguments, a *UsageError is returned whose message is like:
//  missing required argument: --test
//  usage: test --test
//         test --other [<arg>...]
package option
