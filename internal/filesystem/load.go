package filesystem

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lutece-go/lutece-sql/core/catalog"
	"github.com/lutece-go/lutece-sql/internal/conf"
	"go.uber.org/zap"
)

// LoadCatalog walks sourceDir and records every SQL file recognized as a migration script.
//
// Paths are handed to the classifier relative to sourceDir and slash separated, so sourceDir is
// expected to be the directory holding "sql/" (usually "src").
func LoadCatalog(logger *zap.Logger, sourceDir string) (*catalog.Catalog, error) {
	c := catalog.NewCatalog(logger)

	err := filepath.WalkDir(sourceDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), conf.SQL_EXTENSION) {
			return nil
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		c.Add(filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}
