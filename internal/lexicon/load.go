package lexicon

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-screener/internal/schemas"
)

// Load reads a lexicon configuration file, validates it against the
// lexicon JSON Schema when the schema can be resolved, and overlays it
// on the built-in defaults. Sets absent from the file keep their
// defaults, so a deployment can override just the gazetteer.
func Load(path string) (Lexicons, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicons{}, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.LexiconsSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return Lexicons{}, fmt.Errorf("lexicon file %s: %w", path, err)
		}
	}

	var loaded Lexicons
	if err := json.Unmarshal(data, &loaded); err != nil {
		return Lexicons{}, fmt.Errorf("failed to parse lexicon JSON %s: %w", path, err)
	}

	return Default().Merge(loaded), nil
}
