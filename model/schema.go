package model

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema for the model configuration Document.
// The schema can be published alongside config files so editors validate
// them as they are written.
func Schema() ([]byte, error) {
	return json.MarshalIndent(jsonschema.Reflect(&Document{}), "", "  ")
}
