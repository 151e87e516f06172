/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"

	gvfs "bennypowers.dev/gvanim/fs"
	"bennypowers.dev/gvanim/layout"
	"bennypowers.dev/gvanim/token"
)

// legacyMetaKey is the metadata entry stripped from legacy category files.
const legacyMetaKey = "$meta"

// legacyFile maps a fixed legacy filename to its category segment and
// token type tag.
type legacyFile struct {
	name     string
	category string
	typeTag  string
}

// legacyFiles are the fixed per-category files of the legacy layout.
var legacyFiles = []legacyFile{
	{"colors.json", "color", "color"},
	{"spacing.json", "space", "dimension"},
	{"radius.json", "radius", "dimension"},
	{"typography.json", "typography", ""},
	{"shadows.json", "shadow", "shadow"},
}

// loadLegacy reads the fixed per-category key/value files. Individual
// files may be absent, but a source with none of them is missing input.
// Legacy values are already literal; no alias syntax is supported.
func loadLegacy(filesystem gvfs.FileSystem, root string) ([]*token.Token, error) {
	var result []*token.Token
	found := false

	for _, lf := range legacyFiles {
		path := filepath.Join(root, lf.name)
		if !filesystem.Exists(path) {
			continue
		}
		found = true

		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", layout.ErrMissingInput, path)
		}

		var raw map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", layout.ErrUnparseable, path, err)
		}
		delete(raw, legacyMetaKey)

		keys := make([]string, 0, len(raw))
		for k := range raw {
			if strings.HasPrefix(k, metaPrefix) {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			t := &token.Token{
				Path:     []string{lf.category, key},
				Value:    raw[key],
				Type:     lf.typeTag,
				Tier:     token.TierPrimitives,
				FilePath: path,
			}
			t.NormalizeMode()
			result = append(result, t)
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no legacy category files in %s", layout.ErrMissingInput, root)
	}

	return result, nil
}
