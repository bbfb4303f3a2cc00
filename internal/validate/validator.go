// Package validate checks synthesized widget definitions before they
// reach the dashboard. Validation runs two passes that report together:
// a JSON-schema pass for required fields and enum membership, and a
// referential pass that checks every groupBy and filter field against
// the declared source's field whitelist.
package validate

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/gridwise-ai/gridwise/internal/lexicon"
	"github.com/gridwise-ai/gridwise/pkg/widget"
)

//go:embed schema.json
var schemaJSON []byte

var definitionSchema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("validate: bad embedded schema: %v", err))
	}
	return s
}

// Result lists every violation found; Valid is true iff Errors is empty.
type Result struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// Definition validates a data-widget definition. Checks do not
// short-circuit: every violation is reported. A nil definition is a
// violation like any other, not a panic.
func Definition(def *widget.Definition) Result {
	if def == nil {
		return Result{Errors: []string{"definition is nil"}}
	}

	errs := []string{}

	errs = append(errs, schemaErrors(def)...)
	errs = append(errs, referenceErrors(def)...)

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func schemaErrors(def *widget.Definition) []string {
	doc, err := json.Marshal(def)
	if err != nil {
		return []string{fmt.Sprintf("definition is not serializable: %v", err)}
	}
	res, err := definitionSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return []string{fmt.Sprintf("schema validation failed: %v", err)}
	}

	var out []string
	for _, e := range res.Errors() {
		out = append(out, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return out
}

func referenceErrors(def *widget.Definition) []string {
	fields, known := lexicon.SourceFields[def.Source]
	if !known {
		// The schema pass already reports the bad source value; without
		// a whitelist there is nothing to check fields against.
		return nil
	}

	var out []string
	for _, g := range def.GroupBy {
		if !contains(fields, g) {
			out = append(out, fmt.Sprintf("groupBy field %q is not valid for source %q", g, def.Source))
		}
	}
	for _, f := range def.Filters {
		if !contains(fields, f.Field) {
			out = append(out, fmt.Sprintf("filter field %q is not valid for source %q", f.Field, def.Source))
		}
	}
	return out
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
