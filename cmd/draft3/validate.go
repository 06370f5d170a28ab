package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restdocs/draft3-go/canonicaljson"
)

func newValidateCmd() *cobra.Command {
	var schemaRef string

	cmd := &cobra.Command{
		Use:   "validate -s <schema> <instance.json>",
		Short: "Validate a JSON document against a schema",
		Long: `Validate a JSON document against a draft-03 schema document.

The schema is a file path or a catalog reference such as
"catalog:customers.get". Violations are printed one per line (or as
canonical JSON with --json). A non-conformant instance exits 2; unreadable
or malformed inputs exit 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSchema(schemaRef)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			res, err := s.ValidateJSON(data)
			if err != nil {
				return err
			}
			log.Debug().Int("violations", len(res.Violations)).Msg("validation finished")

			if jsonOut {
				out, err := canonicaljson.Marshal(res)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			} else if res.Valid() {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
			} else {
				for _, v := range res.Violations {
					fmt.Fprintln(cmd.OutOrStdout(), v)
				}
			}

			if !res.Valid() {
				return errNonConformant
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaRef, "schema", "s", "", "Schema file or catalog:<name> reference")
	_ = cmd.MarkFlagRequired("schema")
	return cmd
}
