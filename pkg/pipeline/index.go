package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pumltools/svg2puml/pkg/errors"
)

// IndexName is the umbrella document written at the output root.
const IndexName = "all_sprites.puml"

// WriteIndex walks outputRoot for sprite documents and writes an index that
// includes each one, sorted lexicographically by relative path and excluding
// the index itself. Paths are emitted with forward slashes regardless of
// platform. It returns the index path and the number of includes written.
func WriteIndex(outputRoot string) (string, int, error) {
	indexPath := filepath.Join(outputRoot, IndexName)

	var includes []string
	err := filepath.WalkDir(outputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".puml") || path == indexPath {
			return nil
		}
		rel, relErr := filepath.Rel(outputRoot, path)
		if relErr != nil {
			return relErr
		}
		includes = append(includes, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return "", 0, errors.Wrap(errors.ErrCodeDirectory, err, "walk output root %s", outputRoot)
	}

	sort.Strings(includes)

	var sb strings.Builder
	sb.WriteString("@startuml\n")
	sb.WriteString("' Index file for all generated sprites\n\n")
	for _, inc := range includes {
		sb.WriteString("!include " + inc + "\n")
	}
	sb.WriteString("\n@enduml\n")

	if err := os.WriteFile(indexPath, []byte(sb.String()), 0o644); err != nil {
		return "", 0, errors.Wrap(errors.ErrCodeIO, err, "write index %s", indexPath)
	}
	return indexPath, len(includes), nil
}
