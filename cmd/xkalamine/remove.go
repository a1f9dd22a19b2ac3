package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OneDeadKey/xkalamine/internal/messages"
	"github.com/OneDeadKey/xkalamine/internal/xkb"
)

func newRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   messages.RemoveUse,
		Short: messages.RemoveShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, variant, err := splitLayoutArg(args[0])
			if err != nil {
				return err
			}

			index := xkb.Index{}
			index.Remove(locale, variant)

			sys := xkb.RealSystem{}
			if err := opts.ensureReady(sys); err != nil {
				return err
			}
			root := opts.resolveRoot()
			mgr := xkb.NewManager(sys, root, cmd.OutOrStdout())
			if err := mgr.Update(index); err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), color.RedString(messages.RemovedFmt, locale, variant, root))
			return nil
		},
	}
}

// splitLayoutArg parses a <locale>/<variant> argument.
func splitLayoutArg(arg string) (string, string, error) {
	parts := strings.Split(arg, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf(messages.RemoveBadArgFmt, arg)
	}
	return parts[0], parts[1], nil
}
