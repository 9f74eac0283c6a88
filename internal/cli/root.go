// Package cli is the homeprice command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"homeprice/internal/config"
)

// env is what every command runs with once flags, environment and the
// config file have been merged.
type env struct {
	cfg    config.Config
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

type rootFlags struct {
	configPath string
	endpoint   string
	logLevel   string
	logFile    string
}

// resolveConfig merges the config file, the environment and explicit flags,
// in increasing precedence.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (config.Config, error) {
	var cfg config.Config
	if f.configPath != "" {
		c, err := config.Load(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = c
	}
	cfg = cfg.ApplyEnv()
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = f.endpoint
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	return cfg.WithDefaults(), nil
}

// BuildRootCmd constructs the command tree wired to the fn* actions.
func BuildRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &rootFlags{}
	e := &env{stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	var closer io.Closer = nopCloser{}

	root := &cobra.Command{
		Use:           "homeprice",
		Short:         "House price prediction client, terminal form and stub server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", envStr("HOMEPRICE_CONFIG", ""), "Config file (.yaml, .yml, .json or .toml)")
	pf.StringVar(&f.endpoint, "endpoint", config.DefaultEndpoint, "Prediction service base URL (defaults HOMEPRICE_ENDPOINT)")
	pf.StringVar(&f.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug|info|warn|error|off (defaults HOMEPRICE_LOG_LEVEL)")
	pf.StringVar(&f.logFile, "log-file", "", "Write logs to this file, rotated")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, f)
		if err != nil {
			return err
		}
		e.cfg = cfg
		// the terminal form owns the screen; it only logs to a file
		fallback := stderr
		if cmd.Name() == "form" {
			fallback = nil
		}
		e.log, closer = newLogger(cfg.LogLevel, cfg.LogFile, fallback)
		return nil
	}
	root.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return closer.Close()
	}

	root.AddCommand(newPredictCmd(e), newFormCmd(e), newHealthCmd(e), newFieldsCmd(e), newStubServerCmd(e))

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(stdout, true) }})
	completionCmd.AddCommand(&cobra.Command{Use: "powershell", Short: "PowerShell completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenPowerShellCompletionWithDesc(stdout) }})
	root.AddCommand(completionCmd)

	return root
}

func newPredictCmd(e *env) *cobra.Command {
	var (
		opts   predictOptions
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Submit one prediction built from an input file and --set values",
		Example: "  homeprice predict --input house.yaml\n" +
			"  homeprice predict --input house.toml --set bhk=3 --animate\n" +
			"  homeprice predict --input house.json --watch",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strict") {
				e.cfg.Strict = strict
			}
			if opts.watch {
				return fnWatch(cmd.Context(), e, opts)
			}
			return fnPredict(cmd.Context(), e, opts)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&opts.input, "input", "i", "", "Input file with the property fields (.yaml, .yml, .json or .toml)")
	fl.StringArrayVar(&opts.sets, "set", nil, "Override one field, key=value (repeatable)")
	fl.BoolVar(&opts.animate, "animate", false, "Animate the price counters")
	fl.BoolVar(&opts.watch, "watch", false, "Re-submit whenever the input file changes")
	fl.StringVar(&opts.metricsAddr, "metrics-addr", "", "With --watch, serve Prometheus metrics on this address")
	fl.BoolVar(&strict, "strict", false, "Refuse to send fields that do not parse")
	return cmd
}

func newFormCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Run the interactive terminal form",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return fnForm(cmd.Context(), e) },
	}
}

func newHealthCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Query the prediction service health",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return fnHealth(cmd.Context(), e) },
	}
}

func newFieldsCmd(e *env) *cobra.Command {
	var style string
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the field schema",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, args []string) error { return fnFields(e, style) },
	}
	cmd.Flags().StringVar(&style, "style", "auto", "Rendering style: auto|dark|light|notty|ascii")
	return cmd
}

func newStubServerCmd(e *env) *cobra.Command {
	var addr string
	var origins []string
	cmd := &cobra.Command{
		Use:   "stub-server",
		Short: "Serve a deterministic stand-in for the prediction service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				e.cfg.StubAddr = addr
			}
			if cmd.Flags().Changed("cors-origin") {
				e.cfg.CORSOrigins = origins
			}
			return fnStubServer(cmd.Context(), e)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.DefaultStubAddr, "HTTP listen address")
	cmd.Flags().StringArrayVar(&origins, "cors-origin", nil, "Allowed CORS origin (repeatable)")
	return cmd
}

// Main runs the command line and returns the process exit status.
func Main(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := BuildRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		if !IsPredictionFailed(err) {
			fmt.Fprintln(stderr, "error:", err)
		}
		return 1
	}
	return 0
}
