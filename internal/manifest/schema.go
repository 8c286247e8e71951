package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	k8syaml "sigs.k8s.io/yaml"
)

const schemaURL = "https://github.com/ib-77/result/schema/manifest.schema.json"

//go:embed schema/manifest.schema.json
var schemaJSON []byte

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func manifestSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("adding manifest schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateSchema checks raw YAML against the embedded JSON schema.
func validateSchema(data []byte) error {
	schema, err := manifestSchema()
	if err != nil {
		return err
	}

	asJSON, err := k8syaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("%w: converting YAML: %v", ErrInvalidManifest, err)
	}

	dec := json.NewDecoder(bytes.NewReader(asJSON))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: decoding JSON: %v", ErrInvalidManifest, err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: schema: %v", ErrInvalidManifest, err)
	}
	return nil
}
