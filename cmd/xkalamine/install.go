package main

import (
	"fmt"
	"io"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/OneDeadKey/xkalamine/internal/layout"
	"github.com/OneDeadKey/xkalamine/internal/messages"
	"github.com/OneDeadKey/xkalamine/internal/xkb"
)

func newInstallCmd(opts *rootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := layout.Load(args[0])
			if err != nil {
				return err
			}

			index := xkb.Index{}
			index.Add(l.Locale, l.Variant, &xkb.Definition{
				Description: l.Description,
				Symbols:     l.Symbols,
			})

			sys := xkb.RealSystem{}
			root := opts.resolveRoot()
			mgr := xkb.NewManager(sys, root, cmd.OutOrStdout())

			// Preview tolerates a missing tree, so a dry run never
			// bootstraps one.
			if dryRun {
				return printPreviews(cmd.OutOrStdout(), mgr, index)
			}
			if err := opts.ensureReady(sys); err != nil {
				return err
			}
			if err := mgr.Update(index); err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), color.GreenString(messages.InstalledFmt, l.Locale, l.Variant, root))
			if shadowed, err := mgr.HasCustomSymbols(); err == nil && shadowed && l.Locale != "custom" {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), color.YellowString(messages.CustomSymbolsWarning))
			}
			if !opts.system && !xkb.WaylandSession() {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), messages.X11SessionHintFmt, l.Locale, l.Variant)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the changes without writing them")
	return cmd
}

// printPreviews renders the files an update would rewrite as unified diffs.
func printPreviews(out io.Writer, mgr *xkb.Manager, index xkb.Index) error {
	previews, err := mgr.Preview(index)
	if err != nil {
		return err
	}
	if len(previews) == 0 {
		_, _ = fmt.Fprint(out, messages.DryRunNoChanges)
		return nil
	}
	for _, preview := range previews {
		diff := udiff.Unified(preview.Path, preview.Path+" (updated)", preview.Old, preview.New)
		_, _ = fmt.Fprint(out, diff)
	}
	return nil
}
