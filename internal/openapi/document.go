package openapi

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pb33f/libopenapi"
	v3high "github.com/pb33f/libopenapi/datamodel/high/v3"
)

var (
	// ErrAlreadyTargetDialect is returned when the source document is already Swagger 2.0.
	ErrAlreadyTargetDialect = errors.New("document is already in the 2.0 dialect")
)

// Document wraps a built OpenAPI 3.x model together with the
// version tag detected in the source bytes.
type Document struct {
	*libopenapi.DocumentModel[v3high.Document]

	// Version is the source dialect version, e.g. "3.0.3".
	Version string
}

// NewDocumentFromFile creates a new Document from a file path.
func NewDocumentFromFile(filePath string) (*Document, error) {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return NewDocument(src)
}

// NewDocument parses raw bytes and builds the v3 model.
// Unlike a tolerant loader, any model-building error is treated as a
// validation failure: the caller gets every underlying error joined
// and no document.
func NewDocument(src []byte) (*Document, error) {
	lib, err := libopenapi.NewDocument(src)
	if err != nil {
		return nil, err
	}

	version := lib.GetVersion()
	if strings.HasPrefix(version, "2.") {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyTargetDialect, version)
	}

	model, errs := lib.BuildV3Model()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Document{
		DocumentModel: model,
		Version:       version,
	}, nil
}
