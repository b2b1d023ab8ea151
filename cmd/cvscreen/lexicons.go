package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-screener/internal/lexicon"
	"github.com/jonathan/cv-screener/internal/schemas"
)

var lexiconsCommand = &cobra.Command{
	Use:   "lexicons",
	Short: "Inspect and validate lexicon overlay files",
}

var lexiconsValidateCommand = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a lexicon overlay JSON file against its schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runLexiconsValidateCmd,
}

func init() {
	lexiconsCommand.AddCommand(lexiconsValidateCommand)
	rootCmd.AddCommand(lexiconsCommand)
}

func runLexiconsValidateCmd(_ *cobra.Command, args []string) error {
	path := args[0]

	schemaPath := schemas.ResolveSchemaPath(schemas.LexiconsSchemaPath)
	if schemaPath == "" {
		return fmt.Errorf("lexicon schema not found (expected %s)", schemas.LexiconsSchemaPath)
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return err
	}

	// Schema-valid files must also merge cleanly over the defaults.
	if _, err := lexicon.Load(path); err != nil {
		return err
	}

	fmt.Printf("%s is valid\n", path)
	return nil
}
