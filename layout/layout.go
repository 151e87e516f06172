/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package layout detects which of the three token source layouts a
// directory uses.
package layout

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	gvfs "bennypowers.dev/gvanim/fs"
)

// Format identifies a token source layout.
type Format int

const (
	// Unknown is the zero value.
	Unknown Format = iota

	// Legacy is the fixed-filename key/value layout (colors.json etc.).
	Legacy

	// FlatAlias is a flat directory of alias-capable *.tokens.* files.
	FlatAlias

	// ThreeTier splits the alias-capable format across primitives/,
	// semantic/ and component/ subdirectories.
	ThreeTier
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case Legacy:
		return "legacy"
	case FlatAlias:
		return "flat-alias"
	case ThreeTier:
		return "three-tier"
	default:
		return "unknown"
	}
}

// DefinitionFilePattern matches alias-capable token definition files.
var DefinitionFilePattern = "*.tokens.{json,jsonc,yaml,yml}"

// IsDefinitionFile returns true if name is a qualifying token definition file.
func IsDefinitionFile(name string) bool {
	matched, _ := doublestar.Match(DefinitionFilePattern, filepath.Base(name))
	return matched
}

// Detect selects the ingestion strategy for the token source root.
// The check is purely structural; no file content is parsed.
//
// Rules: a primitives/ subdirectory containing at least one definition
// file selects ThreeTier; otherwise any top-level definition file selects
// FlatAlias; otherwise Legacy.
func Detect(filesystem gvfs.FileSystem, root string) (Format, error) {
	if !filesystem.Exists(root) {
		return Unknown, fmt.Errorf("%w: token source root %s", ErrMissingInput, root)
	}

	primitives := filepath.Join(root, "primitives")
	if hasDefinitionFile(filesystem, primitives) {
		return ThreeTier, nil
	}

	if hasDefinitionFile(filesystem, root) {
		return FlatAlias, nil
	}

	return Legacy, nil
}

// hasDefinitionFile returns true if dir contains at least one qualifying
// definition file. Unreadable or absent directories count as empty.
func hasDefinitionFile(filesystem gvfs.FileSystem, dir string) bool {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsDefinitionFile(entry.Name()) {
			return true
		}
	}
	return false
}
