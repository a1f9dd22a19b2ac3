package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OneDeadKey/xkalamine/internal/messages"
	"github.com/OneDeadKey/xkalamine/internal/xkb"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask := ""
			if len(args) == 1 {
				mask = args[0]
			}

			mgr := xkb.NewManager(xkb.RealSystem{}, opts.resolveRoot(), cmd.OutOrStdout())
			installed, err := mgr.List(mask)
			if err != nil {
				return err
			}
			shown := installed
			if all {
				if shown, err = mgr.ListAll(mask); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, locale := range shown.Locales() {
				for _, name := range shown.Variants(locale) {
					suffix := ""
					if !installed.Has(locale, name) {
						suffix = messages.ListNotInstalled
					}
					_, _ = fmt.Fprintf(out, "%s/%s\t%s%s\n", locale, name, shown[locale][name].Description, suffix)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include layouts declared in the registry but not installed")
	return cmd
}
