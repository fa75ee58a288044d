package cmd

import (
	"fmt"
	"os"
	"time"

	colour "github.com/fatih/color"
	"github.com/nickromney-org/localtime/pkg/localtime"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via SetVersionInfo from main)
	appVersion = "dev"
	buildTime  = "unknown"
	gitCommit  = "unknown"

	// now is replaced in tests
	now = time.Now

	// Colours for output
	green  = colour.New(colour.FgGreen, colour.Bold)
	yellow = colour.New(colour.FgYellow, colour.Bold)
	red    = colour.New(colour.FgRed, colour.Bold)
	cyan   = colour.New(colour.FgCyan)
	grey   = colour.New(colour.FgHiBlack)
)

// options holds the flags shared by every command
type options struct {
	timeZone       string
	enableTimezone bool
	military       bool
	localZone      string
	verbose        bool
	jsonOutput     bool
	ciOutput       bool
	quiet          bool
	showVersion    bool
	githubToken    string
}

// SetVersionInfo sets the version information from the main package
func SetVersionInfo(version, build, commit string) {
	appVersion = version
	buildTime = build
	gitCommit = commit
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "localtime [instant]",
		Short: "Render a timestamp as local date/time text",
		Long: `Render an instant as a full timestamp and a short time of day.

The instant may be epoch milliseconds, RFC 3339, or a date string such as
"Fri Jan 12 2018 20:15:13 GMT+0800". It defaults to now. Output uses the
local zone unless a timezone is enabled; unknown zones fall back to local.`,
		Example: `  # Current time in the local zone
  localtime

  # Render in Sydney
  localtime "Fri Jan 12 2018 20:15:13 GMT+0000" -z Australia/Sydney

  # 24-hour clock, reproducible local zone
  localtime 1515759313000 -m --local UTC

  # JSON output for automation
  localtime 2018-01-12T20:15:13Z -z US/Alaska --json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.timeZone, "timezone", "z", os.Getenv("LOCALTIME_TIMEZONE"), "IANA timezone to render in (or LOCALTIME_TIMEZONE env var)")
	flags.BoolVarP(&opts.enableTimezone, "enable-timezone", "e", false, "render in --timezone instead of the local zone (default: on when a zone is set)")
	flags.BoolVarP(&opts.military, "military", "m", false, "24-hour short time without AM/PM")
	flags.StringVarP(&opts.localZone, "local", "l", "", "zone treated as local (default: host zone)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.BoolVar(&opts.jsonOutput, "json", false, "output as JSON")
	flags.BoolVar(&opts.ciOutput, "ci", false, "format output for CI/GitHub Actions")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "print the short time only")
	rootCmd.Flags().BoolVar(&opts.showVersion, "version", false, "show version information")

	rootCmd.AddCommand(newReleaseCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		red.Fprintf(rootCmd.ErrOrStderr(), "❌ Error: %v\n", err)
		return err
	}
	return nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()

	if opts.showVersion {
		fmt.Fprintf(out, "localtime %s\n", appVersion)
		fmt.Fprintf(out, "Build time: %s\n", buildTime)
		fmt.Fprintf(out, "Git commit: %s\n", gitCommit)
		return nil
	}

	instant := localtime.InstantOf(now())
	if len(args) == 1 {
		parsed, err := localtime.ParseInstant(args[0])
		if err != nil {
			return err
		}
		instant = parsed
	}

	formatter, err := newFormatter(opts)
	if err != nil {
		return err
	}

	config := displayConfig(cmd, opts, instant)
	return output(cmd, opts, config, formatter.Format(config), nil)
}

// newFormatter builds a Formatter honouring --local
func newFormatter(opts *options) (*localtime.Formatter, error) {
	if opts.localZone == "" {
		return localtime.New(), nil
	}

	loc, err := time.LoadLocation(opts.localZone)
	if err != nil {
		return nil, fmt.Errorf("invalid local zone %q: %w", opts.localZone, err)
	}
	return localtime.New(localtime.WithLocal(loc)), nil
}

// displayConfig maps flags to a DisplayConfig. A non-empty zone enables
// timezone rendering unless --enable-timezone is given explicitly.
func displayConfig(cmd *cobra.Command, opts *options, instant localtime.Instant) localtime.DisplayConfig {
	enable := opts.timeZone != ""
	if cmd.Flags().Changed("enable-timezone") {
		enable = opts.enableTimezone
	}

	return localtime.DisplayConfig{
		EventTime:       instant,
		EnableTimezone:  enable,
		TimeZone:        opts.timeZone,
		UseMilitaryTime: opts.military,
	}
}
