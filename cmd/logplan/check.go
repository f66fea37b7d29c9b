package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errDiagnostics = errors.New("templates with unresolved expressions found")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [identity...]",
		Short: "Report message templates with unresolved expressions",
		Long: "check compiles every selected method and lists each placeholder whose\n" +
			"expression does not resolve to a parameter. It fails when any is found.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := opts.compile(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			found := 0
			for _, c := range plans {
				for _, r := range c.plan.Params() {
					if !r.IsStatic() {
						continue
					}
					found++
					if _, err := fmt.Fprintf(out, "%s: %s\n", c.method.Identity(), r.Text()); err != nil {
						return err
					}
				}
			}
			if found > 0 {
				return fmt.Errorf("%w: %d", errDiagnostics, found)
			}
			_, err = fmt.Fprintf(out, "%d plans ok\n", len(plans))
			return err
		},
	}
}
