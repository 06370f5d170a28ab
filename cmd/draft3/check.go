package main

import (
	"fmt"

	"github.com/spf13/cobra"

	draft3 "github.com/restdocs/draft3-go"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <schema>",
		Short: "Check that a schema document is well-formed draft-03",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			opts := []draft3.CheckOption{draft3.WithRequireSupportedDraft()}
			if strictly {
				opts = append(opts,
					draft3.WithRejectUnknownKeywords(),
					draft3.WithRejectUnknownFormats(),
				)
			}
			if err := s.Check(opts...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	cmd.Flags().BoolVar(&strictly, "strict", false, "Reject unknown keywords and unknown format names")
	return cmd
}
