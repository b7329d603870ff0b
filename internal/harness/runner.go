package harness

import (
	"fmt"
	"strings"

	"github.com/quillvm/quill/internal/param"
	"github.com/quillvm/quill/internal/tlocal"
	"github.com/quillvm/quill/internal/value"
	"github.com/quillvm/quill/internal/vm"
)

// MainLabel is the script handle of the root context.
const MainLabel = "main"

// TraceEvent records one executed step.
type TraceEvent struct {
	Seq    int    `json:"seq"`
	Op     string `json:"op"`
	Ctx    string `json:"ctx"`
	Target string `json:"target,omitempty"`
	Value  string `json:"value,omitempty"`
	Result string `json:"result,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	ScenarioName string       `json:"scenario_name"`
	Trace        []TraceEvent `json:"trace"`
}

type runner struct {
	alloc   *tlocal.Allocator
	ns      *param.Namespace
	locals  map[string]*tlocal.Local
	ctxs    map[string]*vm.Context
	current string
	trace   []TraceEvent
	seq     int
}

// Run executes the scenario and returns its trace.
//
// Context IDs come from a sequential generator ("ctx-1", "ctx-2", ...)
// so that repeated runs of the same scenario produce identical traces.
// An expectation miss, or an operation error the step did not declare,
// aborts the run with a descriptive error.
func Run(s *Scenario) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	root := vm.NewRoot(vm.NewSeqGenerator("ctx"))
	r := &runner{
		alloc:   tlocal.NewAllocator(),
		ns:      param.NewNamespace(),
		locals:  make(map[string]*tlocal.Local),
		ctxs:    map[string]*vm.Context{MainLabel: root},
		current: MainLabel,
	}

	if err := r.declare(s); err != nil {
		return nil, err
	}
	for i, step := range s.Script {
		if err := r.exec(step); err != nil {
			return nil, fmt.Errorf("script[%d] (%s %s): %w", i, step.Op, step.Target, err)
		}
	}
	for i, check := range s.Final {
		if err := r.checkFinal(check); err != nil {
			return nil, fmt.Errorf("final[%d]: %w", i, err)
		}
	}

	return &Result{ScenarioName: s.Name, Trace: r.trace}, nil
}

// declare creates the scenario's locals and parameters in the main
// context, all before any script step runs.
func (r *runner) declare(s *Scenario) error {
	main := r.ctxs[MainLabel]
	for _, d := range s.Locals {
		initial, flags, err := r.declInitial(d)
		if err != nil {
			return fmt.Errorf("local %s: %w", d.Name, err)
		}
		if _, dup := r.locals[d.Name]; dup {
			return fmt.Errorf("duplicate declaration %q", d.Name)
		}
		r.locals[d.Name] = main.NewLocal(r.alloc, d.Name, initial, flags)
	}
	for _, d := range s.Params {
		initial, flags, err := r.declInitial(d)
		if err != nil {
			return fmt.Errorf("param %s: %w", d.Name, err)
		}
		if _, dup := r.locals[d.Name]; dup {
			return fmt.Errorf("declaration %q is both a local and a param", d.Name)
		}
		param.Bind(r.ns, r.alloc, main, d.Name, initial, flags)
	}
	return nil
}

func (r *runner) declInitial(d Decl) (value.Value, tlocal.Flags, error) {
	initial, err := convertValue(d.Initial)
	if err != nil {
		return nil, 0, err
	}
	if !d.Lazy {
		return initial, 0, nil
	}
	concrete := initial
	return value.NewPromise(func() (value.Value, error) {
		return concrete, nil
	}), tlocal.FlagLazy, nil
}

func (r *runner) exec(step Step) error {
	ctx := r.ctxs[r.current]
	ev := TraceEvent{Op: step.Op, Ctx: r.current, Target: step.Target}

	switch step.Op {
	case "read":
		result, err := r.read(ctx, step.Target)
		if done, err := r.finish(&ev, step, result, err); done {
			return err
		}
		if err := checkExpect("result", result, step.Expect); err != nil {
			return err
		}

	case "write":
		v, err := convertValue(step.Value)
		if err != nil {
			return err
		}
		ev.Value = value.Format(v)
		prev, err := r.write(ctx, step.Target, v)
		if done, err := r.finish(&ev, step, prev, err); done {
			return err
		}
		if err := checkExpect("previous value", prev, step.ExpectPrev); err != nil {
			return err
		}

	case "call":
		c, ok := r.ns.Lookup(step.Target)
		if !ok {
			return fmt.Errorf("unknown parameter %q", step.Target)
		}
		args := make([]value.Value, len(step.Args))
		formatted := make([]string, len(step.Args))
		for i, raw := range step.Args {
			v, err := convertValue(raw)
			if err != nil {
				return err
			}
			args[i] = v
			formatted[i] = value.Format(v)
		}
		ev.Value = strings.Join(formatted, ", ")
		result, err := c.Call(ctx, args...)
		if done, err := r.finish(&ev, step, result, err); done {
			return err
		}
		if err := checkExpect("result", result, step.Expect); err != nil {
			return err
		}

	case "spawn":
		if _, dup := r.ctxs[step.As]; dup {
			return fmt.Errorf("context label %q already in use", step.As)
		}
		child := ctx.Spawn()
		r.ctxs[step.As] = child
		ev.Target = step.As
		ev.Result = child.ID()
		r.record(ev)

	case "switch":
		if _, ok := r.ctxs[step.To]; !ok {
			return fmt.Errorf("unknown context label %q", step.To)
		}
		r.current = step.To
		ev.Target = step.To
		r.record(ev)
	}
	return nil
}

// finish records the step's trace event and resolves its error
// expectation. The first return is true when the caller should stop
// (either an expected error was matched, or an unexpected one is being
// propagated).
func (r *runner) finish(ev *TraceEvent, step Step, result value.Value, err error) (bool, error) {
	if err != nil {
		ev.Result = "error: " + err.Error()
		r.record(*ev)
		if step.ExpectError == "" {
			return true, err
		}
		if !strings.Contains(err.Error(), step.ExpectError) {
			return true, fmt.Errorf("error %q does not contain %q", err.Error(), step.ExpectError)
		}
		return true, nil
	}
	ev.Result = value.Format(result)
	r.record(*ev)
	if step.ExpectError != "" {
		return true, fmt.Errorf("expected an error containing %q, got none", step.ExpectError)
	}
	return false, nil
}

func (r *runner) record(ev TraceEvent) {
	r.seq++
	ev.Seq = r.seq
	r.trace = append(r.trace, ev)
}

// read resolves target as a local first, then as a parameter.
func (r *runner) read(ctx *vm.Context, target string) (value.Value, error) {
	if l, ok := r.locals[target]; ok {
		return ctx.Ref(l)
	}
	if c, ok := r.ns.Lookup(target); ok {
		return c.Call(ctx)
	}
	return nil, fmt.Errorf("unknown target %q", target)
}

func (r *runner) write(ctx *vm.Context, target string, v value.Value) (value.Value, error) {
	if l, ok := r.locals[target]; ok {
		return ctx.Set(l, v)
	}
	if c, ok := r.ns.Lookup(target); ok {
		return c.Call(ctx, v)
	}
	return nil, fmt.Errorf("unknown target %q", target)
}

func (r *runner) checkFinal(check FinalCheck) error {
	ctx, ok := r.ctxs[check.Ctx]
	if !ok {
		return fmt.Errorf("unknown context label %q", check.Ctx)
	}
	got, err := r.read(ctx, check.Target)
	if err != nil {
		return fmt.Errorf("read %s in %s: %w", check.Target, check.Ctx, err)
	}
	if err := checkExpect(fmt.Sprintf("%s in %s", check.Target, check.Ctx), got, check.Expect); err != nil {
		return err
	}
	return nil
}
