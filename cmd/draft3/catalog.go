package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restdocs/draft3-go/catalog"
)

func newCatalogCmd() *cobra.Command {
	var show string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List or print the embedded accounting-API schema documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if show != "" {
				b, err := catalog.Raw(show)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(b))
				return nil
			}
			for _, name := range catalog.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&show, "show", "", "Print the named document instead of listing")
	return cmd
}
