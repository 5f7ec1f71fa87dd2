package converter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oasdown/oasdown/internal/config"
	"github.com/oasdown/oasdown/internal/files"
	"github.com/oasdown/oasdown/internal/openapi"
)

// outputSuffix replaces the source extension on converted documents.
const outputSuffix = ".swagger.json"

var (
	ErrSourceNotFound = errors.New("source path does not exist")
	ErrNotRegularFile = errors.New("not a regular file")
)

// Converter runs the downgrade pipeline over one file or a directory tree.
type Converter struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Converter {
	return &Converter{cfg: cfg}
}

// Run converts the given source location.
//
// A directory is walked recursively and every recognized document is
// converted in discovery order, one at a time. The first file that fails
// aborts the whole batch; files after it are not attempted.
func (c *Converter) Run(src string) error {
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, src)
	}
	if err != nil {
		return err
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			return fmt.Errorf("%w: %s", ErrNotRegularFile, src)
		}
		return c.convertFile(src)
	}

	sources, err := files.CollectSources(src)
	if err != nil {
		return err
	}

	for _, rel := range sources {
		if err := c.convertFile(filepath.Join(src, rel)); err != nil {
			return fmt.Errorf("[%s]: %w", rel, err)
		}
	}

	return nil
}

// convertFile runs parse -> normalize -> downgrade -> save for one file.
func (c *Converter) convertFile(srcPath string) error {
	doc, err := openapi.NewDocumentFromFile(srcPath)
	if err != nil {
		return err
	}
	slog.Info("loaded document", "file", srcPath, "version", doc.Version)

	openapi.Normalize(doc, c.cfg.GenerateOperationIDs)

	out, err := openapi.Downgrade(doc)
	if err != nil {
		return err
	}

	dstPath := c.destPath(srcPath)
	if err := files.SaveFile(dstPath, out); err != nil {
		return err
	}
	slog.Info("converted", "file", srcPath, "output", dstPath)

	return nil
}

// destPath derives the output location: the source base name with its
// extension replaced by the 2.0 suffix, inside the output directory.
func (c *Converter) destPath(srcPath string) string {
	base := filepath.Base(srcPath)
	ext := filepath.Ext(base)
	return filepath.Join(c.cfg.Output, base[:len(base)-len(ext)]+outputSuffix)
}
