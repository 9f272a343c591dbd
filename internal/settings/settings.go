// Package settings loads the repository's TOML settings document and
// flattens it into the substitution map used for templated config installs.
package settings

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Map holds flattened key/value pairs for template substitution.
type Map map[string]string

// sectionHeader matches top-level TOML table headers in document order.
var sectionHeader = regexp.MustCompile(`(?m)^\s*\[([^\[\]]+)\]`)

// Load reads a settings file and flattens it into a Map.
//
// A two-level document is flattened twice: a value under [section] is
// reachable both as "section_key" and as bare "key". Bare keys from later
// sections overwrite earlier ones of the same name — last write wins, no
// collision detection. The builtin keys "home" and "repo" are injected
// last and therefore always override user-declared keys of the same name.
//
// A missing or malformed file yields an empty Map together with the error;
// callers treat that as a warning, not a failure.
func Load(path, home, repoRoot string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Map{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	flat := Map{}
	for _, section := range sectionOrder(data, doc) {
		switch values := doc[section].(type) {
		case map[string]any:
			for _, key := range sortedKeys(values) {
				str, ok := formatValue(values[key])
				if !ok {
					continue // deeper nesting is not a substitution value
				}
				flat[section+"_"+key] = str
				flat[key] = str // bare key, last section wins
			}
		default:
			if str, ok := formatValue(doc[section]); ok {
				flat[section] = str
			}
		}
	}

	// Builtins go in last so they cannot be shadowed.
	flat["home"] = home
	flat["repo"] = repoRoot

	return flat, nil
}

// sectionOrder returns top-level keys in document order. Table headers are
// taken from the raw text so that last-write-wins follows the file; any
// remaining top-level keys (bare scalars) are appended sorted.
func sectionOrder(data []byte, doc map[string]any) []string {
	var order []string
	seen := make(map[string]bool, len(doc))

	for _, m := range sectionHeader.FindAllSubmatch(data, -1) {
		name := string(m[1])
		if _, ok := doc[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}

	var rest []string
	for key := range doc {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatValue renders a TOML scalar as a substitution string.
// Non-scalar values (nested tables, arrays) are skipped.
func formatValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), true
	case time.Time:
		return val.Format(time.RFC3339), true
	default:
		return "", false
	}
}
