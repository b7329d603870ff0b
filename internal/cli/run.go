package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillvm/quill/internal/harness"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Execute a scenario and print its trace",
		Long: `Execute a scenario file against the thread-local subsystem.

The scenario declares thread-locals and parameters, scripts reads,
writes, parameter calls, and context spawns, and states expectations
about the results. The trace of every executed step is printed.

Example:
  quill run ./scenarios/spawn_isolation.yaml
  quill run --format json ./scenarios/lazy_defaults.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(opts, args[0], cmd)
		},
	}

	return cmd
}

func runScenario(opts *RunOptions, path string, cmd *cobra.Command) error {
	// Configure logging based on verbose flag
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))

	slog.Debug("loading scenario", "path", path)
	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load scenario", err)
	}

	slog.Debug("running scenario", "name", scenario.Name,
		"locals", len(scenario.Locals), "params", len(scenario.Params),
		"steps", len(scenario.Script))
	result, err := harness.Run(scenario)
	if err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("scenario %s failed", scenario.Name), err)
	}

	if opts.Format == "json" {
		f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return f.Success(result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "scenario %s: %d step(s)\n", result.ScenarioName, len(result.Trace))
	for _, ev := range result.Trace {
		fmt.Fprintln(out, formatEvent(ev))
	}
	return nil
}

// formatEvent renders one trace line for text output.
func formatEvent(ev harness.TraceEvent) string {
	s := fmt.Sprintf("%3d  [%s] %s", ev.Seq, ev.Ctx, ev.Op)
	if ev.Target != "" {
		s += " " + ev.Target
	}
	if ev.Value != "" {
		s += " " + ev.Value
	}
	if ev.Result != "" {
		s += " -> " + ev.Result
	}
	return s
}
