package sprite

import (
	"path"
	"strings"
)

// Identifier derives the sprite identifier for a file from its slash-form
// path relative to the input root. The .svg extension is stripped (matching
// the case-insensitive tree walk) and every character outside [A-Za-z0-9_]
// becomes '_', yielding a valid PlantUML sprite name. The mapping is
// deterministic: the same relative path always produces the same identifier,
// within and across runs.
//
// Two distinct relative paths can normalize to the same identifier
// (a/b.svg and a_b.svg); the pipeline detects and reports such collisions.
func Identifier(rel string) string {
	if ext := path.Ext(rel); strings.EqualFold(ext, ".svg") {
		rel = rel[:len(rel)-len(ext)]
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_':
			return r
		default:
			return '_'
		}
	}, rel)
}
