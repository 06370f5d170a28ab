package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	draft3 "github.com/restdocs/draft3-go"
	"github.com/restdocs/draft3-go/catalog"
)

// errNonConformant marks a negative validation result so main can exit with
// a distinct code. Configuration errors (unreadable files, malformed
// schemas) surface as ordinary errors.
var errNonConformant = errors.New("instance does not conform to schema")

var (
	debug    bool
	jsonOut  bool
	log      zerolog.Logger
	strictly bool
)

func execRootCmd(args []string) error {
	rootCmd := &cobra.Command{
		Use:           "draft3",
		Short:         "Work with the accounting API's draft-03 JSON Schema documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if debug {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit results as canonical JSON")

	rootCmd.AddCommand(
		newCheckCmd(),
		newValidateCmd(),
		newConvertCmd(),
		newCatalogCmd(),
	)

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errNonConformant) {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

// loadSchema reads a schema from a file path or, with the "catalog:" prefix,
// from the embedded catalog (e.g. "catalog:customers.get").
func loadSchema(ref string) (*draft3.Schema, error) {
	if name, ok := strings.CutPrefix(ref, "catalog:"); ok {
		log.Debug().Str("name", name).Msg("loading schema from embedded catalog")
		return catalog.Load(name)
	}
	b, err := os.ReadFile(ref)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", ref).Int("bytes", len(b)).Msg("loaded schema document")
	s := new(draft3.Schema)
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ref, err)
	}
	return s, nil
}
