package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restdocs/draft3-go/canonicaljson"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <schema>",
		Short: "Render a draft-03 schema document as JSON Schema 2020-12",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(args[0])
			if err != nil {
				return err
			}
			modern, err := s.Modernize()
			if err != nil {
				return err
			}
			if jsonOut {
				out, err := canonicaljson.Marshal(modern)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			out, err := json.MarshalIndent(modern, "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
