package filepaths

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob returns file paths matching pattern.
//
// Unlike [path/filepath.Glob], this supports ** for recursive directory
// matching. Pattern syntax follows doublestar conventions:
//   - `*` matches any sequence of non-separator characters.
//   - `**` matches any sequence including separators (recursive).
//   - `?` matches any single non-separator character.
//   - `[abc]` / `[a-z]` match a character set or range.
func Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	return matches, nil
}

// ContainsGlobChars reports whether s contains glob metacharacters.
func ContainsGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// Expand expands paths (some of which may be glob patterns) into a sorted,
// deduplication-free list of concrete file paths. A literal path with no
// glob metacharacters passes through unchanged, even if it does not exist.
// A glob pattern matching nothing is an error.
func Expand(paths ...string) ([]string, error) {
	var result []string

	for _, path := range paths {
		if !ContainsGlobChars(path) {
			result = append(result, path)

			continue
		}

		matches, err := Glob(path)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q: no matching files", path)
		}

		result = append(result, matches...)
	}

	sort.Strings(result)

	return result, nil
}
