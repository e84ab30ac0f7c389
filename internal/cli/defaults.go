package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"monthcal/internal/calendar"
	"monthcal/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the defaults file",
	}
	cmd.AddCommand(a.configSaveCmd())
	return cmd
}

func (a *app) configSaveCmd() *cobra.Command {
	var locale, color string
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Store --locale and --color as defaults",
		Long: `save writes the given values to the defaults file named by --config,
$MONTHCAL_CONFIG or the user config directory. Values not given are kept.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return parseErrorf("unexpected argument %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if locale == "" && color == "" {
				return parseErrorf("nothing to save: give --locale or --color")
			}
			if locale != "" {
				l, err := calendar.ParseLocale(locale)
				if err != nil {
					return parseError(err)
				}
				locale = l.String()
			}
			if color != "" {
				c, err := config.ParseColor(color)
				if err != nil {
					return parseError(err)
				}
				color = string(c)
			}

			path, _, err := config.Path(a.opts.ConfigPath)
			if err != nil {
				return err
			}
			// A missing or unreadable file is replaced rather than merged.
			f, _, err := config.Load(path)
			if err != nil {
				f = config.File{}
			}
			if locale != "" {
				f.Locale = locale
			}
			if color != "" {
				f.Color = color
			}
			if err := f.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved defaults to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "", "default output language: ja or en")
	cmd.Flags().StringVar(&color, "color", "", "default highlight mode: always, auto or never")
	return cmd
}
