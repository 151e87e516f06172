/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token model shared by the gvanim pipeline.
package token

import "strings"

// Tier names in resolution order. Legacy and flat sources load everything
// into the primitives tier.
const (
	TierPrimitives = "primitives"
	TierSemantic   = "semantic"
	TierComponent  = "component"
)

// Modes recognized as theme buckets. An empty Mode means the token is
// shared between themes.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// Token represents a single design token record, normalized across all
// three source layouts.
type Token struct {
	// Path is the key chain from the source root, unique within its tier.
	// A trailing "dark"/"light" segment is kept in the path; Mode records it.
	Path []string

	// Value is the raw decoded value: string, float64, bool, a composite
	// map[string]any, or a plain []any sequence. Strings may contain
	// {dot.path} alias expressions before resolution.
	Value any

	// Resolved is the value after alias resolution. Nil until the resolver
	// has run.
	Resolved any

	// Type is the declared or inherited $type tag, if any.
	Type string

	// Mode is the theme bucket ("dark", "light") or empty for shared tokens.
	Mode string

	// Tier is the resolution tier this token was loaded into.
	Tier string

	// FilePath is the source file this token was loaded from.
	FilePath string
}

// DotPath returns the dot-joined path, the key aliases use to reference
// this token.
func (t *Token) DotPath() string {
	return strings.Join(t.Path, ".")
}

// NamePath returns the path used for CSS property naming: the full path
// with the trailing mode segment dropped. The mode selects the theme
// bucket, it does not contribute to the name.
func (t *Token) NamePath() []string {
	if t.Mode != "" && len(t.Path) > 0 && t.Path[len(t.Path)-1] == t.Mode {
		return t.Path[:len(t.Path)-1]
	}
	return t.Path
}

// CSSVariableName returns the custom property name for this token,
// e.g. "--color-accent-primary" or "--rh-color-accent-primary".
func (t *Token) CSSVariableName(prefix string) string {
	name := strings.Join(t.NamePath(), "-")
	if prefix != "" {
		return "--" + strings.ReplaceAll(prefix, ".", "-") + "-" + name
	}
	return "--" + name
}

// NormalizeMode sets Mode from a trailing "dark"/"light" path segment or
// key suffix. Loaders call this once per token after building the path.
func (t *Token) NormalizeMode() {
	if len(t.Path) == 0 {
		return
	}
	last := t.Path[len(t.Path)-1]
	switch last {
	case ModeDark, ModeLight:
		t.Mode = last
		return
	}
	// Legacy sources encode mode as a key suffix ("accent-dark").
	for _, mode := range []string{ModeDark, ModeLight} {
		if trimmed, ok := strings.CutSuffix(last, "-"+mode); ok && trimmed != "" {
			t.Mode = mode
			segs := make([]string, len(t.Path))
			copy(segs, t.Path)
			segs[len(segs)-1] = trimmed
			t.Path = append(segs, mode)
			return
		}
	}
}
