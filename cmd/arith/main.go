// Command arith runs the arith operations from the command line.
//
// Every command except finish prints a report in text, JSON or YAML.
// finish exits with the status FinishPositively maps its argument to.
// Put -- before negative operands so they are not read as flags:
//
//	arith sum -- -3 4
//	arith finish -- -3
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexshd/arith"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// Set by build flags.
var version = "dev"

// exitError asks main to exit with code without printing anything.
// Commands use it when the report already explains the outcome.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// app holds the settings shared by every command after flags and the
// config file are resolved.
type app struct {
	stdout io.Writer
	stderr io.Writer
	format string
	styles Styles
	logger *slog.Logger
	names  arith.NameRegistry
	laws   *arith.LawRegistry
	exit   func(int)
}

// newLogger returns a tint-backed logger writing to w.
func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	configPath string
	format     string
	logLevel   string
	noColor    bool
}

// resolve merges the config file and flags into a.
func (g *globalFlags) resolve(cmd *cobra.Command, a *app) error {
	explicit := cmd.Flags().Changed("config")
	cfg, err := loadConfig(g.configPath, explicit)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		if err := validateFormat(g.format); err != nil {
			return err
		}
		cfg.Format = g.format
	}
	if cmd.Flags().Changed("log-level") {
		level, err := parseLevel(g.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = g.noColor
	}

	a.format = cfg.Format
	a.styles = DefaultStyles()
	if cfg.NoColor {
		a.styles = PlainStyles()
	}
	a.logger = newLogger(a.stderr, cfg.LogLevel, cfg.NoColor)
	a.logger.Debug("config resolved",
		"path", g.configPath, "format", cfg.Format, "level", cfg.LogLevel)
	return nil
}

// newRootCmd wires every command to a. Tests pass their own writers.
func newRootCmd(a *app) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "arith",
		Short: "arith: integer operations with explicit result channels",
		Long: `arith exposes sum, square, Addition, the valid names registry,
law verification and the finish exit helper as commands.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.resolve(cmd, a)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", defaultConfigPath, "path to YAML config file")
	pf.StringVar(&flags.format, "format", formatText, "output format: text, json, or yaml")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, or error")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newSumCmd(a))
	root.AddCommand(newSquareCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newNamesCmd(a))
	root.AddCommand(newLawsCmd(a))
	root.AddCommand(newFinishCmd(a))
	root.AddCommand(newSchemaCmd(a))

	return root
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		format: formatText,
		styles: DefaultStyles(),
		logger: newLogger(stderr, slog.LevelWarn, false),
		names:  arith.DefaultNames(),
		laws:   arith.NewLawRegistry(),
		exit:   arith.FinishPositively,
	}
}

func main() {
	if err := newRootCmd(newApp(os.Stdout, os.Stderr)).Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
