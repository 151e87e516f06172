/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package loader reads token source files into normalized token lists.
package loader

import (
	"fmt"
	"path/filepath"
	"sort"

	gvfs "bennypowers.dev/gvanim/fs"
	"bennypowers.dev/gvanim/layout"
	"bennypowers.dev/gvanim/token"
)

// Set holds the loaded tokens split by resolution tier. Legacy and
// flat-alias sources load everything into Primitives.
type Set struct {
	Format     layout.Format
	Primitives []*token.Token
	Semantic   []*token.Token
	Component  []*token.Token
}

// All returns every loaded token in tier order.
func (s *Set) All() []*token.Token {
	result := make([]*token.Token, 0, len(s.Primitives)+len(s.Semantic)+len(s.Component))
	result = append(result, s.Primitives...)
	result = append(result, s.Semantic...)
	result = append(result, s.Component...)
	return result
}

// Load reads the token source root using the detected format.
func Load(filesystem gvfs.FileSystem, root string, format layout.Format) (*Set, error) {
	set := &Set{Format: format}

	switch format {
	case layout.Legacy:
		tokens, err := loadLegacy(filesystem, root)
		if err != nil {
			return nil, err
		}
		set.Primitives = tokens

	case layout.FlatAlias:
		tokens, err := loadTierDir(filesystem, root, token.TierPrimitives)
		if err != nil {
			return nil, err
		}
		set.Primitives = tokens

	case layout.ThreeTier:
		tiers := []struct {
			dir  string
			name string
			dst  *[]*token.Token
		}{
			{"primitives", token.TierPrimitives, &set.Primitives},
			{"semantic", token.TierSemantic, &set.Semantic},
			{"component", token.TierComponent, &set.Component},
		}
		for _, tier := range tiers {
			dir := filepath.Join(root, tier.dir)
			if !filesystem.Exists(dir) {
				// A design system may define no overrides for a tier.
				continue
			}
			tokens, err := loadTierDir(filesystem, dir, tier.name)
			if err != nil {
				return nil, err
			}
			*tier.dst = tokens
		}

	default:
		return nil, fmt.Errorf("%w: unknown source format", layout.ErrMissingInput)
	}

	return set, nil
}

// loadTierDir flattens every definition file in dir into one tier.
func loadTierDir(filesystem gvfs.FileSystem, dir, tier string) ([]*token.Token, error) {
	entries, err := filesystem.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", layout.ErrMissingInput, dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !layout.IsDefinitionFile(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var result []*token.Token
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", layout.ErrMissingInput, path)
		}

		tokens, err := Flatten(data, path)
		if err != nil {
			return nil, err
		}
		for _, t := range tokens {
			t.Tier = tier
		}
		result = append(result, tokens...)
	}

	return result, nil
}
