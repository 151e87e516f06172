/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/gvanim/layout"
	"bennypowers.dev/gvanim/token"
)

// metaPrefix marks metadata keys skipped during flattening.
const metaPrefix = "$"

// Flatten parses alias-capable JSON(C) or YAML token data and descends
// the nested group tree. A node bearing a $value marker is a leaf token
// whose path is the key chain from the root; other map nodes are groups.
// $-prefixed keys are metadata and are skipped, except that a group $type
// is inherited by descendant tokens without their own.
func Flatten(data []byte, filePath string) ([]*token.Token, error) {
	raw, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", layout.ErrUnparseable, filePath, err)
	}

	var result []*token.Token
	extract(raw, nil, "", filePath, &result)
	return result, nil
}

// decode parses JSON(C) or YAML into a string-keyed map.
func decode(data []byte) (map[string]any, error) {
	if isLikelyJSON(data) {
		var raw map[string]any
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	var yamlRaw any
	if err := yaml.Unmarshal(data, &yamlRaw); err != nil {
		return nil, err
	}
	normalized, ok := normalizeMap(yamlRaw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("root must be an object")
	}
	return normalized, nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

// normalizeMap recursively converts map[interface{}]interface{} to
// map[string]any. YAML with numeric keys (like "10:") creates
// map[interface{}]interface{}, which must be normalized for our
// string-keyed processing.
func normalizeMap(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeMap(val)
		}
		return x
	case map[any]any:
		result := make(map[string]any, len(x))
		for k, val := range x {
			result[fmt.Sprintf("%v", k)] = normalizeMap(val)
		}
		return result
	case []any:
		for i, val := range x {
			x[i] = normalizeMap(val)
		}
		return x
	default:
		return v
	}
}

// extract walks a group node, appending leaf tokens to result.
// inheritedType is passed down from parent groups for $type inheritance.
func extract(data map[string]any, path []string, inheritedType, filePath string, result *[]*token.Token) {
	currentType := inheritedType
	if groupType, ok := data["$type"].(string); ok {
		currentType = groupType
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if strings.HasPrefix(k, metaPrefix) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		node, ok := data[key].(map[string]any)
		if !ok {
			continue
		}

		childPath := make([]string, len(path)+1)
		copy(childPath, path)
		childPath[len(path)] = key

		if value, hasValue := node["$value"]; hasValue {
			t := &token.Token{
				Path:     childPath,
				Value:    value,
				Type:     currentType,
				FilePath: filePath,
			}
			if typeStr, ok := node["$type"].(string); ok {
				t.Type = typeStr
			}
			t.NormalizeMode()
			*result = append(*result, t)
			continue
		}

		extract(node, childPath, currentType, filePath, result)
	}
}
