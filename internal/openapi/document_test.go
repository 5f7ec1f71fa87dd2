//go:build !integration

package openapi

import (
	"os"
	"path/filepath"
	"testing"

	assert2 "github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	t.Run("valid document keeps its version tag", func(t *testing.T) {
		assert := assert2.New(t)
		doc := newTestDocument(t, usersSpec)

		assert.Equal("3.0.3", doc.Version)
		assert.NotNil(doc.Model.Paths)
	})

	t.Run("garbage input fails", func(t *testing.T) {
		assert := assert2.New(t)
		doc, err := NewDocument([]byte("not: [an openapi document"))
		assert.Nil(doc)
		assert.Error(err)
	})

	t.Run("2.0 input is rejected", func(t *testing.T) {
		assert := assert2.New(t)
		doc, err := NewDocument([]byte(`
swagger: '2.0'
info:
  title: t
  version: 1.0.0
paths: {}
`))
		assert.Nil(doc)
		assert.ErrorIs(err, ErrAlreadyTargetDialect)
	})
}

func TestNewDocumentFromFile(t *testing.T) {
	t.Parallel()

	t.Run("file-not-found", func(t *testing.T) {
		assert := assert2.New(t)
		doc, err := NewDocumentFromFile(filepath.Join("non-existent.yml"))
		assert.Nil(doc)
		assert.Error(err)
	})

	t.Run("loads from disk", func(t *testing.T) {
		assert := assert2.New(t)

		path := filepath.Join(t.TempDir(), "users.yml")
		err := os.WriteFile(path, []byte(usersSpec), 0o644)
		assert.NoError(err)

		doc, err := NewDocumentFromFile(path)
		assert.NoError(err)
		assert.Equal("3.0.3", doc.Version)
	})
}
