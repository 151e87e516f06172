/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/gvanim/token"
)

// Category is the closed set of emission categories. Tokens whose
// leading path segment matches no standard category fall into CatchAll,
// grouped by that segment, so freeform component-tier tokens are
// preserved in organized output rather than dropped.
type Category int

const (
	CategoryColor Category = iota
	CategoryDimension
	CategoryShadow
	CategoryOpacity
	CategoryZIndex
	CategoryMotion
	CategoryTypography
	CategoryCatchAll
)

// categoryOrder is the fixed output order inside every block.
var categoryOrder = []Category{
	CategoryColor,
	CategoryDimension,
	CategoryShadow,
	CategoryOpacity,
	CategoryZIndex,
	CategoryMotion,
	CategoryTypography,
	CategoryCatchAll,
}

// String returns the category label used in output comments.
func (c Category) String() string {
	switch c {
	case CategoryColor:
		return "color"
	case CategoryDimension:
		return "dimension"
	case CategoryShadow:
		return "shadow"
	case CategoryOpacity:
		return "opacity"
	case CategoryZIndex:
		return "z-index"
	case CategoryMotion:
		return "motion"
	case CategoryTypography:
		return "typography"
	default:
		return "other"
	}
}

// segmentCategories maps recognized leading path segments to categories.
var segmentCategories = map[string]Category{
	"color":      CategoryColor,
	"colors":     CategoryColor,
	"dimension":  CategoryDimension,
	"size":       CategoryDimension,
	"space":      CategoryDimension,
	"spacing":    CategoryDimension,
	"radius":     CategoryDimension,
	"border":     CategoryDimension,
	"shadow":     CategoryShadow,
	"shadows":    CategoryShadow,
	"blur":       CategoryShadow,
	"opacity":    CategoryOpacity,
	"z-index":    CategoryZIndex,
	"zindex":     CategoryZIndex,
	"duration":   CategoryMotion,
	"easing":     CategoryMotion,
	"motion":     CategoryMotion,
	"animation":  CategoryMotion,
	"typography": CategoryTypography,
	"font":       CategoryTypography,
	"text":       CategoryTypography,
}

// Categorize returns the token's category and its group label. For
// CatchAll the group is the leading path segment; otherwise it is the
// category name.
func Categorize(t *token.Token) (Category, string) {
	if len(t.Path) == 0 {
		return CategoryCatchAll, "other"
	}
	leading := t.Path[0]
	if cat, ok := segmentCategories[leading]; ok {
		return cat, cat.String()
	}
	return CategoryCatchAll, leading
}

var titleCaser = cases.Title(language.English)

// Heading returns the comment heading for a group label, e.g. "Z Index".
func Heading(group string) string {
	return titleCaser.String(group)
}
