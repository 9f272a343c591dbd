// Package template performs shell-style variable substitution for
// templated config entries.
//
// Substitution is "safe": tokens without a matching key are left verbatim
// and expansion never fails. This keeps config files with incidental $
// characters (prompts, PATH references) intact unless a key is declared.
package template

import (
	"regexp"
	"strings"
)

// token matches $$, ${name}, $name, or a lone $ in that order.
var token = regexp.MustCompile(`\$(?:(\$)|\{([_a-zA-Z][_a-zA-Z0-9]*)\}|([_a-zA-Z][_a-zA-Z0-9]*))?`)

// Expand replaces every $key or ${key} token whose key exists in vars with
// its value. $$ produces a literal $. Unknown tokens and stray $ characters
// are left unchanged.
func Expand(text string, vars map[string]string) string {
	return token.ReplaceAllStringFunc(text, func(match string) string {
		if match == "$$" {
			return "$"
		}

		name := match[1:]
		name = strings.TrimPrefix(name, "{")
		name = strings.TrimSuffix(name, "}")
		if name == "" {
			return match // lone $
		}

		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}
