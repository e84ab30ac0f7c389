// Package cli implements the cal command line: flag parsing, validation,
// error reporting and the selfcheck subcommand.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"monthcal/internal/calendar"
	"monthcal/internal/config"
	"monthcal/internal/logging"
)

type app struct {
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
	log    *zap.Logger

	month   int
	year    int
	opts    config.Options
	verbose bool
}

// Main runs cal with args (without the program name) and returns the exit code.
func Main(args []string, stdout, stderr io.Writer, now func() time.Time) int {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		now:    now,
		log:    zap.NewNop(),
	}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	cmd, err := root.ExecuteC()
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(stderr, "cal: %v\n", err)
	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	return ExitError
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cal [-m MONTH] [-y YEAR]",
		Short: "Display a calendar for one month",
		Long: `cal prints a month calendar in the layout of the Unix cal utility.

Without flags the current month is shown with today in reverse video.
Month and weekday names are Japanese when LC_ALL or LANG starts with "ja".`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return parseErrorf("unexpected argument %q", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = logging.New(a.stderr, a.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: a.runCalendar,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return parseError(err)
	})

	f := cmd.Flags()
	f.IntVarP(&a.month, "month", "m", 0, "month to display (1-12, default current month)")
	f.IntVarP(&a.year, "year", "y", 0, "year to display (default current year)")
	f.StringVar(&a.opts.Locale, "locale", "", "output language: ja or en (default from LC_ALL/LANG)")
	f.StringVar(&a.opts.Color, "color", "", "highlight today: always, auto or never (default always)")

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.opts.ConfigPath, "config", "", "defaults file (default $"+config.EnvConfig+" or the user config dir)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")

	cmd.AddCommand(a.selfcheckCmd(), a.configCmd())
	return cmd
}

func (a *app) runCalendar(cmd *cobra.Command, _ []string) error {
	opts := a.opts
	if cmd.Flags().Changed("month") {
		opts.Month = &a.month
	}
	if cmd.Flags().Changed("year") {
		opts.Year = &a.year
	}
	if err := validate(opts); err != nil {
		return err
	}

	file, src, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if src != "" {
		a.log.Debug("loaded config", zap.String("path", src))
	}

	s, err := config.Resolve(opts, file, a.now())
	if err != nil {
		return err
	}
	req := s.Request
	hl := s.Color.Enabled(fd(a.stdout))
	a.log.Debug("resolved request",
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
		zap.Stringer("locale", req.Locale),
		zap.String("color", string(s.Color)),
		zap.Bool("highlight", hl && req.IncludesToday()),
	)

	_, err = io.WriteString(cmd.OutOrStdout(), calendar.Render(req, calendar.NewHighlighter(hl)))
	return err
}

// validate checks the flag values before anything else is resolved.
func validate(opts config.Options) error {
	if opts.Month != nil && (*opts.Month < 1 || *opts.Month > 12) {
		return invalidMonth(*opts.Month)
	}
	if opts.Year != nil && (*opts.Year < calendar.MinYear || *opts.Year > calendar.MaxYear) {
		return invalidYear(*opts.Year)
	}
	if opts.Locale != "" {
		if _, err := calendar.ParseLocale(opts.Locale); err != nil {
			return parseError(err)
		}
	}
	if opts.Color != "" {
		if _, err := config.ParseColor(opts.Color); err != nil {
			return parseError(err)
		}
	}
	return nil
}

// fd returns the descriptor behind w, or -1 when w is not a file.
func fd(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}
