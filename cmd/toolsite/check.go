package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/toolsite/internal/content"
)

var errIncomplete = errors.New("translations incomplete")

func newCheckCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report translation keys missing per locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			missing := 0
			for _, c := range content.CheckCoverage(a.tr, a.pages.Registry(), a.pages.Locales()) {
				if c.Complete() {
					fmt.Fprintf(out, "%s: ok\n", c.Locale)
					continue
				}
				missing += len(c.Missing)
				fmt.Fprintf(out, "%s: %d missing\n  %s\n", c.Locale, len(c.Missing), strings.Join(c.Missing, "\n  "))
			}
			if strict && missing > 0 {
				return fmt.Errorf("%w: %d keys", errIncomplete, missing)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any key is missing")
	return cmd
}
