package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"monthcal/internal/selfcheck"
)

func (a *app) selfcheckCmd() *cobra.Command {
	var (
		from, to int
		quiet    bool
	)
	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify the calendar layout for every month in a range of years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := selfcheck.Options{From: from, To: to, Log: a.log}
			if !quiet {
				opts.Progress = a.stderr
			}
			r, err := selfcheck.Run(opts)
			if err != nil {
				return err
			}
			for _, f := range r.Failures {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d months, %d failures\n", r.Checked, len(r.Failures))
			if !r.OK() {
				return fmt.Errorf("selfcheck: %d failures", len(r.Failures))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", selfcheck.DefaultFrom, "first year to check")
	cmd.Flags().IntVar(&to, "to", selfcheck.DefaultTo, "last year to check")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")
	return cmd
}
