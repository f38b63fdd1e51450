// Package main provides the CLI entrypoint for chesspace.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/verte-zerg/chesspace/internal/config"
	"github.com/verte-zerg/chesspace/internal/logging"
	"github.com/verte-zerg/chesspace/internal/model"
	"github.com/verte-zerg/chesspace/internal/pacing"
	"github.com/verte-zerg/chesspace/internal/report"
)

const (
	defaultMoves   = 40
	defaultDisplay = 1
	defaultFormat  = formatPlain
	plotHeight     = 8
)

const (
	formatPlain = "plain"
	formatTable = "table"
)

var (
	paceMoves      int
	paceLichess    bool
	paceDisplay    int
	paceOpening    int
	pacePercentage int
	paceFormat     string
	pacePlot       bool
	paceColor      bool
	paceVerbose    bool
	paceConfigPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "chesspace <minutes> <increment>",
		Short:         "Calculate timestamps to pace yourself in a chess game",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(cmd.ErrOrStderr(), paceVerbose)
		},
		RunE: runPaceCmd,
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&paceMoves, "moves", "m", defaultMoves, "moves to be played")
	flags.BoolVarP(&paceLichess, "lichess", "l", false, "lichess clock (no increment on the first move)")
	flags.IntVarP(&paceDisplay, "display", "d", defaultDisplay, "display every <display> move")
	flags.IntVarP(&pacePercentage, "percentage", "p", 0, "percentage of total time for the opening (requires --opening)")
	flags.IntVarP(&paceOpening, "opening", "o", 0, "number of opening moves (played twice as fast unless --percentage is set)")
	flags.StringVar(&paceFormat, "format", defaultFormat, "schedule format: plain or table")
	flags.BoolVar(&pacePlot, "plot", false, "append a plot of the clock")
	flags.BoolVar(&paceColor, "color", false, "force colored output")
	flags.StringVar(&paceConfigPath, "config", config.DefaultConfigPath(), "config file path")
	flags.SetNormalizeFunc(normalizeFlagName)
	rootCmd.PersistentFlags().BoolVarP(&paceVerbose, "verbose", "v", false, "write debug diagnostics to stderr")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// normalizeFlagName maps --rounds onto --moves.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "rounds" {
		name = "moves"
	}
	return pflag.NormalizedName(name)
}

func runPaceCmd(cmd *cobra.Command, args []string) error {
	minutes, err := parseCount("minutes", args[0])
	if err != nil {
		return err
	}
	increment, err := parseCount("increment", args[1])
	if err != nil {
		return err
	}

	fileCfg, err := config.Load(paceConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "moves", &paceMoves, fileCfg.Moves)
	applyBoolConfig(cmd, "lichess", &paceLichess, fileCfg.Lichess)
	applyIntConfig(cmd, "display", &paceDisplay, fileCfg.Display)
	applyStringConfig(cmd, "format", &paceFormat, fileCfg.Format)
	applyBoolConfig(cmd, "plot", &pacePlot, fileCfg.Plot)

	tc := model.TimeControl{
		StartingMinutes:  minutes,
		IncrementSeconds: increment,
		Moves:            paceMoves,
		Lichess:          paceLichess,
		Display:          paceDisplay,
		Opening:          optionalInt(cmd, "opening", paceOpening, fileCfg.Opening),
		Percentage:       optionalInt(cmd, "percentage", pacePercentage, fileCfg.Percentage),
	}
	if err := validateFormat(paceFormat); err != nil {
		return err
	}

	plan, schedule, err := pacing.Run(tc)
	if err != nil {
		return err
	}
	log.Debug().
		Stringer("policy", plan.Policy).
		Dur("total", plan.TotalTime).
		Dur("opening_per_move", plan.OpeningPerMove).
		Dur("remaining_per_move", plan.RemainingPerMove).
		Int("opening_moves", plan.OpeningMoves).
		Int("rows", len(schedule)).
		Msg("plan resolved")

	out := cmd.OutOrStdout()
	opts := report.Options{Color: report.ShouldUseColor(out, paceColor)}
	if err := report.RenderSummary(out, tc, plan); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	switch paceFormat {
	case formatTable:
		err = report.RenderTable(out, schedule, opts)
	default:
		err = report.RenderSchedule(out, schedule, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if pacePlot {
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := report.RenderCurve(out, schedule, 0, plotHeight, opts); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeDefaultConfig creates the commented template unless a config exists.
func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	log.Debug().Str("path", path).Msg("wrote default config")
	return nil
}

func parseCount(name, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a non-negative integer", name, raw)
	}
	return v, nil
}

// optionalInt returns the flag value when set, else the config value, else nil.
func optionalInt(cmd *cobra.Command, name string, flagValue int, value *int) *int {
	if cmd.Flags().Changed(name) {
		v := flagValue
		return &v
	}
	return value
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateFormat(format string) error {
	switch format {
	case formatPlain, formatTable:
		return nil
	default:
		return fmt.Errorf("--format must be %q or %q", formatPlain, formatTable)
	}
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# chesspace configuration
# Uncomment a value to enable it. Environment variables (CHESSPACE_*) override
# these values and CLI flags override both.

[pace]
# moves = %d          # Moves to be played
# lichess = false     # No increment on the first move
# display = %d         # Display every Nth move
# opening = 10        # Number of opening moves
# percentage = 30     # Percentage of total time for the opening (needs opening)
# format = %q    # plain or table
# plot = false        # Append a plot of the clock
`,
		defaultMoves,
		defaultDisplay,
		defaultFormat,
	)
}
