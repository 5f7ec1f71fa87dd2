package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
)

// Downgrade serializes a normalized document into the 2.0 wire format.
//
// The mutated v3 model is rendered back to bytes, reloaded through the
// kin-openapi loader and converted down. Constructs the older dialect
// cannot express are dropped by the converter; the normalizer has
// already rescued the ones worth keeping.
func Downgrade(doc *Document) ([]byte, error) {
	rendered, err := doc.Model.Render()
	if err != nil {
		return nil, fmt.Errorf("rendering normalized document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	v3doc, err := loader.LoadFromData(rendered)
	if err != nil {
		return nil, fmt.Errorf("reloading normalized document: %w", err)
	}

	v2doc, err := openapi2conv.FromV3(v3doc)
	if err != nil {
		return nil, fmt.Errorf("converting to 2.0: %w", err)
	}

	return json.MarshalIndent(v2doc, "", "  ")
}
