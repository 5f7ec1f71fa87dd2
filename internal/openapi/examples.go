package openapi

import (
	v3high "github.com/pb33f/libopenapi/datamodel/high/v3"
	"gopkg.in/yaml.v3"
)

// ConsolidateExamples collapses the named examples of a media type into
// the single example field the 2.0 dialect supports.
//
// It only acts when the single example is empty and at least one named
// example exists; the value of the first named example in declaration
// order is assigned, whatever it holds. Later entries are never
// consulted. Returns true if the media type now carries an example.
func ConsolidateExamples(mediaType *v3high.MediaType) bool {
	if mediaType == nil || !emptyNode(mediaType.Example) {
		return false
	}
	if mediaType.Examples == nil || mediaType.Examples.Len() == 0 {
		return false
	}

	example := mediaType.Examples.First().Value()
	if example == nil {
		return false
	}

	mediaType.Example = example.Value
	return !emptyNode(mediaType.Example)
}

// emptyNode reports whether a yaml node carries no value.
func emptyNode(node *yaml.Node) bool {
	return node == nil || node.Kind == 0
}
