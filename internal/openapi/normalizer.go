package openapi

import (
	"log/slog"
	"strings"

	v3high "github.com/pb33f/libopenapi/datamodel/high/v3"
)

// Normalize rewrites a parsed document in place so that it survives the
// downgrade to the 2.0 dialect:
//
//   - missing operation ids are synthesized (when generateIDs is set),
//   - named example maps are collapsed into single examples,
//   - request body examples are backfilled into their schemas.
//
// The traversal never fails: malformed or absent sub-nodes are skipped.
// Paths, operations, parameters and responses are visited in declaration
// order and are never added, removed or reordered.
func Normalize(doc *Document, generateIDs bool) {
	if doc == nil || doc.DocumentModel == nil {
		return
	}
	paths := doc.Model.Paths
	if paths == nil || paths.PathItems == nil {
		return
	}

	for path, pathItem := range paths.PathItems.FromOldest() {
		if pathItem == nil {
			continue
		}
		for method, op := range pathItem.GetOperations().FromOldest() {
			if op == nil {
				continue
			}

			if generateIDs && strings.TrimSpace(op.OperationId) == "" {
				op.OperationId = SynthesizeOperationID(method, path, pathItem.Parameters)
				slog.Debug("synthesized operation id",
					"method", method, "path", path, "operationId", op.OperationId)
			}

			if op.Responses != nil && op.Responses.Codes != nil {
				for _, response := range op.Responses.Codes.FromOldest() {
					if response == nil || response.Content == nil {
						continue
					}
					for contentType, mediaType := range response.Content.FromOldest() {
						if ConsolidateExamples(mediaType) {
							slog.Debug("consolidated response examples",
								"method", method, "path", path, "contentType", contentType)
						}
					}
				}
			}

			for _, param := range op.Parameters {
				if param == nil || param.Content == nil {
					continue
				}
				for _, mediaType := range param.Content.FromOldest() {
					ConsolidateExamples(mediaType)
				}
			}

			if op.RequestBody != nil && op.RequestBody.Content != nil {
				for _, mediaType := range op.RequestBody.Content.FromOldest() {
					ConsolidateExamples(mediaType)
					backfillSchemaExample(mediaType)
				}
			}
		}
	}
}

// backfillSchemaExample copies a media type's example onto its schema
// when the schema has none of its own. The schema may be shared between
// content nodes, so the copy is visible everywhere it is referenced.
func backfillSchemaExample(mediaType *v3high.MediaType) {
	if mediaType == nil || emptyNode(mediaType.Example) || mediaType.Schema == nil {
		return
	}
	schema := mediaType.Schema.Schema()
	if schema == nil || !emptyNode(schema.Example) {
		return
	}
	schema.Example = mediaType.Example
}
