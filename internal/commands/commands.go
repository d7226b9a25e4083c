// Package commands is the console's command registry: each command owns a FlagSet and
// runs after its flags parse.
package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ErrMissingCommand is returned by Execute for an empty line.
var ErrMissingCommand = errors.New("missing command")

// Command is a console command with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds commands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a FlagSet that reports errors instead of exiting and prints nothing.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a command. fs may be nil for commands without flags; run is called after
// fs.Parse(args[1:]) succeeds.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Names returns the registered command names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Usage returns one "name  usage" line per command, sorted by name.
func (r *Registry) Usage() []string {
	out := make([]string, 0, len(r.cmds))
	for _, n := range r.Names() {
		out = append(out, strings.TrimSpace(n+"  "+r.cmds[n].Usage))
	}
	return out
}

// Parse splits a console line into words with shell quoting rules, so
// `env -preset "my preset"` keeps the quoted name whole. A blank line yields nil.
func Parse(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args, nil
}

// Execute runs the command in args[0] with args[1:] as flag arguments. Flags start from
// their defaults on every call. Returns an error for an unknown command, a parse error,
// or from Run().
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return ErrMissingCommand
	}
	name := args[0]
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	cmd.FlagSet.VisitAll(func(f *flag.Flag) {
		_ = f.Value.Set(f.DefValue)
	})
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return cmd.Run()
}
