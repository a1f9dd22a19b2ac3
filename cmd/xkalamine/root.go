package main

import (
	"github.com/spf13/cobra"

	"github.com/OneDeadKey/xkalamine/internal/messages"
	"github.com/OneDeadKey/xkalamine/internal/xkb"
)

// rootOptions carries the flags shared by every subcommand.
type rootOptions struct {
	system bool
}

// resolveRoot picks the XKB configuration root for the requested scope.
func (o *rootOptions) resolveRoot() string {
	if o.system {
		return xkb.SystemDir()
	}
	return xkb.UserDir()
}

// ensureReady bootstraps the user-scope tree; the system tree is the
// distribution's responsibility and is never created here.
func (o *rootOptions) ensureReady(sys xkb.System) error {
	if o.system {
		return nil
	}
	return xkb.EnsureConfigReady(sys, o.resolveRoot())
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.system, "system", false, "operate on the system-wide XKB tree instead of the user-scope one")
	cmd.AddCommand(newInstallCmd(opts))
	cmd.AddCommand(newRemoveCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newCleanCmd(opts))
	return cmd
}
