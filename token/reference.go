/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "regexp"

// curlyBracePattern matches {token.path} references.
var curlyBracePattern = regexp.MustCompile(`\{([^{}]+)\}`)

// fullRefPattern matches a value that is exactly one reference and
// nothing else.
var fullRefPattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

// ParseFullRef extracts the token path when the entire value is a single
// curly brace reference. Returns the path and true if so.
func ParseFullRef(value string) (string, bool) {
	matches := fullRefPattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return "", false
	}
	return matches[1], true
}

// HasRef returns true if the value contains a curly brace reference.
func HasRef(value string) bool {
	return curlyBracePattern.MatchString(value)
}

// ExtractRefs extracts all curly brace reference paths from a string.
func ExtractRefs(value string) []string {
	matches := curlyBracePattern.FindAllStringSubmatch(value, -1)
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) >= 2 {
			refs = append(refs, m[1])
		}
	}
	return refs
}

// ReplaceRefs replaces each {path} occurrence using the supplied function.
// The function receives the path and returns the replacement text and
// whether a replacement should happen; on false the original {path} text
// is kept.
func ReplaceRefs(value string, replace func(path string) (string, bool)) string {
	return curlyBracePattern.ReplaceAllStringFunc(value, func(match string) string {
		path := match[1 : len(match)-1]
		if text, ok := replace(path); ok {
			return text
		}
		return match
	})
}
