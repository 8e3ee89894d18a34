package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/jparise/juration/internal/juration"
	"github.com/jparise/juration/internal/tracks"
	"github.com/spf13/cobra"
)

// colorMode represents when to use colored output.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// String is used both by fmt.Print and by Cobra in help text.
func (c *colorMode) String() string {
	return string(*c)
}

// Set must have pointer receiver to validate and set the value.
func (c *colorMode) Set(v string) error {
	switch v {
	case "auto", "always", "never":
		*c = colorMode(v)
		return nil
	default:
		return fmt.Errorf("must be one of \"auto\", \"always\", or \"never\"")
	}
}

// Type is only used in help text.
func (c *colorMode) Type() string {
	return "colorMode"
}

// formatFlag is a juration.Format that validates itself as a flag value.
type formatFlag juration.Format

func (f *formatFlag) String() string {
	return string(*f)
}

func (f *formatFlag) Set(v string) error {
	format, err := juration.ParseFormat(v)
	if err != nil {
		return fmt.Errorf("must be one of \"micro\", \"short\", \"long\", or \"chrono\"")
	}
	*f = formatFlag(format)
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

var (
	version = "dev"

	// Flags.
	color      = colorAuto
	format     = formatFlag(juration.DefaultFormat)
	units      int
	join       bool
	extensions []string
	excludes   []string
	ignoreCase bool
	total      bool
	jobs       int
)

var rootCmd = &cobra.Command{
	Use:   "juration",
	Short: "Parse and format natural-language durations",
	Long: `juration converts between human-readable durations and seconds.

Durations are written with any mix of units and joining words:
  30s, 5m, 1h30m
  2.5 hours
  1 hour and 30 minutes
  1 year, 2 weeks plus 3 days

Recognized units are seconds, minutes, hours, days, weeks, months
(2628000 seconds) and years (31536000 seconds), as full words,
abbreviations (sec, min, hr, dy, wk, mth, yr) or single letters.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var parseCmd = &cobra.Command{
	Use:   "parse <duration>...",
	Short: "Convert durations to seconds",
	Long: `Convert each duration to a number of seconds, printed one per line.

Examples:
  juration parse "1 hour and 30 minutes"
  juration parse 5m30s 2.5h
  juration parse --join 1 hour 30 minutes`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var stringifyCmd = &cobra.Command{
	Use:     "stringify <seconds>...",
	Aliases: []string{"humanize"},
	Short:   "Convert seconds to human-readable durations",
	Long: `Convert each number of seconds to a human-readable duration.

Formats:
  micro   1h 1m 1s
  short   1 hr 1 min 1 sec
  long    1 hour 1 minute 1 second
  chrono  1:01:01

Examples:
  juration stringify 500
  juration stringify --format long 3661
  juration humanize --units 1 90061`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateUnits,
	RunE:    runStringify,
}

var tracksCmd = &cobra.Command{
	Use:   "tracks [<pattern>...]",
	Short: "List audio files with their lengths",
	Long: `List audio files with their title, artist and length.

<pattern> is a glob pattern to match files:
  *              Match any characters (e.g., "*.mp3")
  **             Match across directories (e.g., "**/*.flac")
  {...}          Match alternatives (e.g., "*.{mp3,m4a}")

Pattern defaults to "` + tracks.DefaultPattern + `".

Examples:
  juration tracks
  juration tracks "albums/**/*.mp3" --total
  juration tracks -e m4b --format chrono "audiobooks/**"
  juration tracks -E "*intro*" -i "**/*.flac"`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if jobs < 1 || jobs > 100 {
			return fmt.Errorf("--jobs must be between 1 and 100, got %d", jobs)
		}
		return validateUnits(cmd, args)
	},
	RunE: runTracks,
}

func init() {
	for _, c := range []*cobra.Command{stringifyCmd, tracksCmd} {
		c.Flags().VarP(&format, "format", "f",
			"output format: micro, short, long, chrono")
		c.Flags().IntVarP(&units, "units", "u", 0,
			"maximum number of units to show (0 shows all)")
	}

	parseCmd.Flags().BoolVar(&join, "join", false,
		"parse all arguments as a single duration")

	tracksCmd.Flags().Var(&color, "color",
		"colorize output: auto, always, never")
	tracksCmd.Flags().StringSliceVarP(&extensions, "extension", "e", []string{},
		"filter by file extension (can be specified multiple times)")
	tracksCmd.Flags().StringSliceVarP(&excludes, "exclude", "E", []string{},
		"exclude patterns (can be specified multiple times)")
	tracksCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false,
		"case-insensitive extension and exclude matching")
	tracksCmd.Flags().BoolVar(&total, "total", false,
		"show the total length of all tracks")
	tracksCmd.Flags().IntVarP(&jobs, "jobs", "j", 10,
		"maximum concurrent file reads")

	rootCmd.AddCommand(parseCmd, stringifyCmd, tracksCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func validateUnits(_ *cobra.Command, _ []string) error {
	if units < 0 {
		return fmt.Errorf("--units must be 0 or greater, got %d", units)
	}
	return nil
}

// parseInputs returns the durations to parse: each argument on its own, or
// all of them as one when join is set.
func parseInputs(args []string, join bool) []string {
	if join {
		return []string{strings.Join(args, " ")}
	}
	return args
}

// parseSeconds parses a stringify argument.
func parseSeconds(s string) (float64, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seconds %q: %w", s, juration.ErrNonNumericInput)
	}
	return seconds, nil
}

// trackPatterns returns the glob patterns to list, defaulting to all
// supported audio files.
func trackPatterns(args []string) []string {
	if len(args) == 0 {
		return []string{tracks.DefaultPattern}
	}
	return args
}

func runParse(cmd *cobra.Command, args []string) error {
	for _, input := range parseInputs(args, join) {
		seconds, err := juration.Parse(input)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", input, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(seconds, 'f', -1, 64))
	}
	return nil
}

func runStringify(cmd *cobra.Command, args []string) error {
	opts := juration.Options{Format: juration.Format(format), Units: units}

	for _, arg := range args {
		seconds, err := parseSeconds(arg)
		if err != nil {
			return err
		}

		s, err := juration.Stringify(seconds, opts)
		if err != nil {
			return fmt.Errorf("cannot stringify %s: %w", arg, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
	}
	return nil
}

func runTracks(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	terminal := term.FromEnv()

	var colorize bool
	switch color {
	case colorAlways:
		colorize = true
	case colorNever:
		colorize = false
	case colorAuto:
		colorize = terminal.IsColorEnabled()
	}

	// Align columns for terminals; scripts get tab-separated output.
	var width int
	if terminal.IsTerminalOutput() {
		width, _, _ = terminal.Size()
		if width <= 0 {
			width = 80
		}
	}

	opts := &tracks.Options{
		Patterns:   trackPatterns(args),
		Excludes:   excludes,
		Extensions: extensions,
		IgnoreCase: ignoreCase,
		Format:     juration.Format(format),
		Units:      units,
		Total:      total,
		Jobs:       jobs,
	}

	l := tracks.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), colorize, width)
	return l.List(ctx, opts)
}
