/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package css turns resolved tokens into custom-property declarations
// and assembles the final stylesheet.
package css

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"bennypowers.dev/gvanim/token"
)

// Bucket identifies the theme scope a declaration belongs to.
type Bucket int

const (
	BucketRoot Bucket = iota
	BucketDark
	BucketLight
)

// Declaration is one emitted custom-property line.
type Declaration struct {
	Name     string
	Value    string
	Category Category
	Group    string
}

// Buckets holds the emitted declarations per theme scope.
type Buckets struct {
	Root  []Declaration
	Dark  []Declaration
	Light []Declaration
}

// For returns the declarations of one bucket.
func (b *Buckets) For(bucket Bucket) []Declaration {
	switch bucket {
	case BucketDark:
		return b.Dark
	case BucketLight:
		return b.Light
	default:
		return b.Root
	}
}

// Emit converts resolved tokens into declarations grouped by theme
// bucket and ordered by the fixed category order. A token's mode decides
// its bucket; the mode segment never appears in the property name.
func Emit(tokens []*token.Token, prefix string) *Buckets {
	buckets := &Buckets{}

	for _, t := range tokens {
		category, group := Categorize(t)
		decls := declarationsFor(t, prefix, category, group)

		switch t.Mode {
		case token.ModeDark:
			buckets.Dark = append(buckets.Dark, decls...)
		case token.ModeLight:
			buckets.Light = append(buckets.Light, decls...)
		default:
			buckets.Root = append(buckets.Root, decls...)
		}
	}

	sortBucket(buckets.Root)
	sortBucket(buckets.Dark)
	sortBucket(buckets.Light)
	return buckets
}

// sortBucket orders declarations by category, then group label for
// catch-alls, preserving emission order within a group.
func sortBucket(decls []Declaration) {
	sort.SliceStable(decls, func(i, j int) bool {
		if decls[i].Category != decls[j].Category {
			return decls[i].Category < decls[j].Category
		}
		return decls[i].Group < decls[j].Group
	})
}

// declarationsFor formats one token into declarations. Typography
// composites expand to size, line-height, and weight lines in that
// order, adjacent per style name.
func declarationsFor(t *token.Token, prefix string, category Category, group string) []Declaration {
	name := t.CSSVariableName(prefix)
	value := t.Resolved
	if value == nil {
		value = t.Value
	}

	switch v := value.(type) {
	case map[string]any:
		switch category {
		case CategoryTypography:
			return typographyDeclarations(name, v, category, group)
		case CategoryShadow:
			return []Declaration{{name, formatShadow(v), category, group}}
		default:
			return compositeDeclarations(name, v, category, group)
		}
	default:
		return []Declaration{{name, formatValue(value, t, category), category, group}}
	}
}

// typographyFields are the composite style fields in emission order.
var typographyFields = []struct {
	key    string
	suffix string
	length bool
}{
	{"size", "size", true},
	{"lineHeight", "line-height", false},
	{"weight", "weight", false},
}

func typographyDeclarations(name string, style map[string]any, category Category, group string) []Declaration {
	var decls []Declaration
	for _, field := range typographyFields {
		raw, ok := style[field.key]
		if !ok {
			continue
		}
		value := scalarString(raw)
		if n, isNum := raw.(float64); isNum && field.length {
			value = formatNumber(n) + "px"
		}
		decls = append(decls, Declaration{name + "-" + field.suffix, value, category, group})
	}
	return decls
}

// formatShadow collapses a structured shadow record into one
// space-joined CSS shadow expression. Geometry fields default to 0.
func formatShadow(shadow map[string]any) string {
	parts := make([]string, 0, 5)
	for _, key := range []string{"offsetX", "offsetY", "blur", "spread"} {
		raw, ok := shadow[key]
		if !ok {
			if key == "spread" {
				continue
			}
			parts = append(parts, "0")
			continue
		}
		if n, isNum := raw.(float64); isNum {
			if n == 0 {
				parts = append(parts, "0")
			} else {
				parts = append(parts, formatNumber(n)+"px")
			}
			continue
		}
		parts = append(parts, scalarString(raw))
	}
	if color, ok := shadow["color"]; ok {
		parts = append(parts, scalarString(color))
	}
	return strings.Join(parts, " ")
}

// compositeDeclarations flattens an unrecognized composite into one
// declaration per field, sorted by field name, so nothing is dropped.
func compositeDeclarations(name string, composite map[string]any, category Category, group string) []Declaration {
	fields := make([]string, 0, len(composite))
	for field := range composite {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	decls := make([]Declaration, 0, len(fields))
	for _, field := range fields {
		decls = append(decls, Declaration{name + "-" + field, scalarString(composite[field]), category, group})
	}
	return decls
}

// formatValue renders a scalar or sequence token value. Dimension
// numerics get px, duration numerics get ms, easing control point
// sequences become cubic-bezier().
func formatValue(value any, t *token.Token, category Category) string {
	switch v := value.(type) {
	case float64:
		switch {
		case category == CategoryDimension:
			return formatNumber(v) + "px"
		case isDuration(t):
			return formatNumber(v) + "ms"
		default:
			return formatNumber(v)
		}
	case []any:
		return formatSequence(v, category)
	default:
		return scalarString(value)
	}
}

// isDuration reports whether a motion token holds a time value.
func isDuration(t *token.Token) bool {
	if t.Type == "duration" {
		return true
	}
	return len(t.Path) > 0 && t.Path[0] == "duration"
}

// formatSequence renders a list value. Four numeric control points in
// the motion category format as a cubic-bezier() timing function; other
// lists (font stacks etc.) join with commas.
func formatSequence(seq []any, category Category) string {
	parts := make([]string, len(seq))
	numeric := true
	for i, item := range seq {
		if n, ok := item.(float64); ok {
			parts[i] = formatNumber(n)
		} else {
			numeric = false
			parts[i] = scalarString(item)
		}
	}
	if numeric && len(seq) == 4 && (category == CategoryMotion || category == CategoryTypography) {
		return "cubic-bezier(" + strings.Join(parts, ", ") + ")"
	}
	return strings.Join(parts, ", ")
}

// scalarString renders any plain value as text.
func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return formatNumber(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatNumber renders a float without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
