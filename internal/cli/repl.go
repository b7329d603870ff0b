package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/quillvm/quill/internal/param"
	"github.com/quillvm/quill/internal/tlocal"
	"github.com/quillvm/quill/internal/value"
	"github.com/quillvm/quill/internal/vm"
)

// errQuit signals a clean exit from the REPL loop.
var errQuit = errors.New("quit")

const replHelp = `commands:
  local <name> <value>    declare a thread-local with an initial value
  param <name> <value>    declare a parameter and bind it as a callable
  get <name>              read a local or parameter in the current context
  set <name> <value>      write a local or parameter in the current context
  call <name> [args...]   invoke a parameter callable (try 2 args)
  spawn <label>           spawn a child of the current context
  switch <label>          make another context current
  ctx                     list contexts
  help                    show this help
  quit                    exit`

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively exercise thread-locals and parameters",
		Long: `Start an interactive session against a fresh root context.

Declare locals and parameters, read and write them, then spawn child
contexts and switch between them to watch copy-on-spawn isolation:
a child sees the parent's values as of the spawn, and writes on either
side stay invisible to the other.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
	return cmd
}

func runRepl(cmd *cobra.Command) error {
	state := newReplState(vm.UUIDv7Generator{})
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "quill repl - 'help' lists commands, 'quit' exits")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(fmt.Sprintf("quill(%s)> ", state.current))
		if err == liner.ErrPromptAborted {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		output, err := state.eval(input)
		if err == errQuit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		if output != "" {
			fmt.Fprintln(out, output)
		}
	}
}

// replState is the mutable session: one allocator, one namespace, and a
// set of labeled contexts starting from a single root.
type replState struct {
	alloc   *tlocal.Allocator
	ns      *param.Namespace
	locals  map[string]*tlocal.Local
	reg     *vm.Registry
	labels  map[string]string // label -> context ID
	current string
}

func newReplState(gen vm.IDGenerator) *replState {
	root := vm.NewRoot(gen)
	reg := vm.NewRegistry()
	reg.Add(root)
	return &replState{
		alloc:   tlocal.NewAllocator(),
		ns:      param.NewNamespace(),
		locals:  make(map[string]*tlocal.Local),
		reg:     reg,
		labels:  map[string]string{"main": root.ID()},
		current: "main",
	}
}

func (s *replState) context() *vm.Context {
	ctx, _ := s.reg.Get(s.labels[s.current])
	return ctx
}

// eval executes one REPL line and returns the text to print.
func (s *replState) eval(input string) (string, error) {
	fields := strings.Fields(input)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		return replHelp, nil

	case "quit", "exit":
		return "", errQuit

	case "local":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: local <name> <value>")
		}
		name := args[0]
		if _, dup := s.locals[name]; dup {
			return "", fmt.Errorf("local %q already declared", name)
		}
		l := s.context().NewLocal(s.alloc, name, parseScalar(args[1]), 0)
		s.locals[name] = l
		return l.String(), nil

	case "param":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: param <name> <value>")
		}
		p := param.Bind(s.ns, s.alloc, s.context(), args[0], parseScalar(args[1]), 0)
		return p.String(), nil

	case "get":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: get <name>")
		}
		v, err := s.read(args[0])
		if err != nil {
			return "", err
		}
		return value.Format(v), nil

	case "set":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: set <name> <value>")
		}
		prev, err := s.write(args[0], parseScalar(args[1]))
		if err != nil {
			return "", err
		}
		return "previous: " + value.Format(prev), nil

	case "call":
		if len(args) < 1 {
			return "", fmt.Errorf("usage: call <name> [args...]")
		}
		c, ok := s.ns.Lookup(args[0])
		if !ok {
			return "", fmt.Errorf("unknown parameter %q", args[0])
		}
		vals := make([]value.Value, len(args)-1)
		for i, a := range args[1:] {
			vals[i] = parseScalar(a)
		}
		result, err := c.Call(s.context(), vals...)
		if err != nil {
			return "", err
		}
		return value.Format(result), nil

	case "spawn":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: spawn <label>")
		}
		label := args[0]
		if _, dup := s.labels[label]; dup {
			return "", fmt.Errorf("context label %q already in use", label)
		}
		child := s.context().Spawn()
		s.reg.Add(child)
		s.labels[label] = child.ID()
		return fmt.Sprintf("spawned %s (%s) from %s", label, child.ID(), s.current), nil

	case "switch":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: switch <label>")
		}
		if _, ok := s.labels[args[0]]; !ok {
			return "", fmt.Errorf("unknown context label %q", args[0])
		}
		s.current = args[0]
		return "now in " + s.current, nil

	case "ctx":
		labels := make([]string, 0, len(s.labels))
		for label := range s.labels {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		var b strings.Builder
		for _, label := range labels {
			marker := " "
			if label == s.current {
				marker = "*"
			}
			fmt.Fprintf(&b, "%s %s (%s)\n", marker, label, s.labels[label])
		}
		return strings.TrimRight(b.String(), "\n"), nil

	default:
		return "", fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func (s *replState) read(name string) (value.Value, error) {
	if l, ok := s.locals[name]; ok {
		return s.context().Ref(l)
	}
	if c, ok := s.ns.Lookup(name); ok {
		return c.Call(s.context())
	}
	return nil, fmt.Errorf("unknown name %q", name)
}

func (s *replState) write(name string, v value.Value) (value.Value, error) {
	if l, ok := s.locals[name]; ok {
		return s.context().Set(l, v)
	}
	if c, ok := s.ns.Lookup(name); ok {
		return c.Call(s.context(), v)
	}
	return nil, fmt.Errorf("unknown name %q", name)
}

// parseScalar maps a REPL token onto a runtime value: null, booleans,
// integers, and strings, in that order of preference.
func parseScalar(tok string) value.Value {
	switch tok {
	case "null":
		return value.Null{}
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return value.Int(n)
	}
	return value.Str(strings.Trim(tok, `"`))
}
