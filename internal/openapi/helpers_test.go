//go:build !integration

package openapi

import (
	"testing"

	"gopkg.in/yaml.v3"
)

// newTestDocument parses an inline spec and fails the test on any error.
func newTestDocument(t *testing.T, src string) *Document {
	t.Helper()

	doc, err := NewDocument([]byte(src))
	if err != nil {
		t.Fatalf("failed to build test document: %v", err)
	}
	return doc
}

// newYamlNode returns the root node of an inline yaml value.
func newYamlNode(t *testing.T, src string) *yaml.Node {
	t.Helper()

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(src), &node); err != nil {
		t.Fatalf("failed to parse yaml value: %v", err)
	}
	return node.Content[0]
}
