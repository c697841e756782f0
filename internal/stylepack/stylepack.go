// Package stylepack loads and validates style-pack configuration documents.
package stylepack

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/spot/internal/types"
)

const (
	// DefaultPath is the conventional on-disk location of the style
	// pack, relative to the working directory.
	DefaultPath = "style/stylepack.json"

	// PathEnvVar overrides DefaultPath when set. A .env file in the
	// working directory is honored.
	PathEnvVar = "SPOT_STYLE_PACK"
)

// Load reads a style pack from the given JSON file. An empty path
// falls back to the SPOT_STYLE_PACK environment variable, then to
// style/stylepack.json. The raw document is checked against the pack
// schema before unmarshaling, so shape violations (e.g. a string where
// a list belongs) fail fast with an *InvalidStylePackError instead of
// producing a misleading report. Missing fields are fine and behave
// as empty collections.
func Load(path string) (*types.StylePack, error) {
	if path == "" {
		path = defaultPath()
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style pack %s: %w", path, err)
	}

	return Parse(data)
}

// Parse validates raw style-pack JSON against the pack schema and
// unmarshals it.
func Parse(data []byte) (*types.StylePack, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var pack types.StylePack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, &InvalidStylePackError{
			Message: "failed to parse style pack JSON",
			Cause:   err,
		}
	}

	return &pack, nil
}

// validateDocument runs the JSON Schema check over a raw pack document.
func validateDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(Schema)
	documentLoader := gojsonschema.NewStringLoader(string(data))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &InvalidStylePackError{
			Message: "style pack is not valid JSON",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	fieldErrors := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		fieldErrors = append(fieldErrors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return &InvalidStylePackError{
		Message: "style pack failed schema validation",
		Fields:  fieldErrors,
	}
}

// defaultPath resolves the style-pack location from the environment,
// honoring a .env file the way the rest of the toolkit does.
func defaultPath() string {
	_ = godotenv.Load()

	if path := os.Getenv(PathEnvVar); path != "" {
		return path
	}
	return DefaultPath
}
