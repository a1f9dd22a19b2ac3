package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OneDeadKey/xkalamine/internal/messages"
	"github.com/OneDeadKey/xkalamine/internal/xkb"
)

func newCleanCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CleanUse,
		Short: messages.CleanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := xkb.NewManager(xkb.RealSystem{}, opts.resolveRoot(), nil)
			cleaned, err := mgr.Clean()
			if err != nil {
				return err
			}
			if len(cleaned) == 0 {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), messages.DryRunNoChanges)
				return nil
			}
			for _, path := range cleaned {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.RegistryCleanedFmt, path)
			}
			return nil
		},
	}
}
