// Package schemas holds the JSON contract of the screening API.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed match_result.schema.json
var matchResultSchema []byte

var matchResultLoader = gojsonschema.NewBytesLoader(matchResultSchema)

// ValidateScreeningResponse checks a successful /api/screen-resume body.
func ValidateScreeningResponse(doc []byte) error {
	result, err := gojsonschema.Validate(matchResultLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validate screening response: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("screening response does not match schema: %s", strings.Join(msgs, "; "))
}
