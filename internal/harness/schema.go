package harness

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed results_schema.json
var resultsSchema []byte

// ValidateResultsJSON checks serialized results against the embedded JSON
// schema. It guards the artifact contract before anything hits disk.
func ValidateResultsJSON(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(resultsSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var msgs []string
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("results do not match schema: %s", strings.Join(msgs, "; "))
}
