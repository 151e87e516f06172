/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css

import "strings"

// The enhancement generators are pure functions of the already-emitted
// declarations, never of raw tokens. Each is independently toggled, and
// absence of qualifying input yields no output.

// typedSyntax maps a property-name prefix (after the variable prefix is
// stripped) to its @property syntax descriptor. Prefixes with no safe
// descriptor (shadow composites, font-family, easing, border-style) are
// skipped.
var typedSyntax = []struct {
	prefix string
	syntax string
}{
	{"color", "<color>"},
	{"font-size", "<length>"},
	{"font-weight", "<number>"},
	{"line-height", "<length>"},
	{"border-width", "<length>"},
	{"size", "<length>"},
	{"space", "<length>"},
	{"spacing", "<length>"},
	{"blur", "<length>"},
	{"radius", "<length>"},
	{"opacity", "<number>"},
	{"z-index", "<integer>"},
	{"duration", "<time>"},
}

// TypedProperty is one inferred @property registration.
type TypedProperty struct {
	Name    string
	Syntax  string
	Initial string
}

// TypedProperties infers @property registrations from the root and dark
// declaration lines. The first occurrence of a property name wins and
// supplies the initial value.
func TypedProperties(b *Buckets, prefix string) []TypedProperty {
	seen := make(map[string]bool)
	var result []TypedProperty

	for _, decl := range append(append([]Declaration{}, b.Root...), b.Dark...) {
		if seen[decl.Name] {
			continue
		}
		seen[decl.Name] = true

		syntax, ok := syntaxFor(stripPrefix(decl.Name, prefix))
		if !ok {
			continue
		}
		result = append(result, TypedProperty{decl.Name, syntax, decl.Value})
	}

	return result
}

func syntaxFor(bare string) (string, bool) {
	for _, entry := range typedSyntax {
		if bare == entry.prefix || strings.HasPrefix(bare, entry.prefix+"-") {
			return entry.syntax, true
		}
	}
	return "", false
}

// accentSegments classify a color property as an interactive or
// brand-identity role.
var accentSegments = map[string]bool{
	"accent":      true,
	"brand":       true,
	"destructive": true,
	"teal":        true,
}

// isAccent reports whether a bare (prefix-stripped) color property name
// qualifies for derived interaction-state and shade variants. Shadow
// colors, overlays, and alpha-suffixed variants never qualify.
func isAccent(bare string) bool {
	if strings.Contains(bare, "shadow") ||
		strings.Contains(bare, "overlay") ||
		strings.Contains(bare, "alpha") {
		return false
	}
	for _, segment := range strings.Split(bare, "-") {
		if accentSegments[segment] {
			return true
		}
	}
	return false
}

// InteractionStates derives hover and active variants for accent colors,
// per theme bucket, mixing toward white and black in the OKLab space.
// usable reports whether a declaration's value parsed as a color.
func InteractionStates(b *Buckets, prefix string, usable func(Declaration) bool) *Buckets {
	derive := func(decls []Declaration) []Declaration {
		var result []Declaration
		for _, decl := range decls {
			if decl.Category != CategoryColor || !isAccent(stripPrefix(decl.Name, prefix)) || !usable(decl) {
				continue
			}
			base := "var(" + decl.Name + ")"
			result = append(result,
				Declaration{decl.Name + "-hover", "color-mix(in oklab, " + base + " 90%, white)", CategoryColor, decl.Group},
				Declaration{decl.Name + "-active", "color-mix(in oklab, " + base + " 80%, black)", CategoryColor, decl.Group},
			)
		}
		return result
	}

	return &Buckets{
		Root:  derive(b.Root),
		Dark:  derive(b.Dark),
		Light: derive(b.Light),
	}
}

// DualThemeCollapse emits one root-level light-dark() declaration for
// every color property present in both the dark and light buckets, light
// argument first. Properties present in only one bucket are excluded.
// The caller must declare the color-scheme capability on the root scope.
func DualThemeCollapse(b *Buckets) []Declaration {
	light := make(map[string]Declaration, len(b.Light))
	for _, decl := range b.Light {
		if decl.Category == CategoryColor {
			light[decl.Name] = decl
		}
	}

	var result []Declaration
	for _, dark := range b.Dark {
		if dark.Category != CategoryColor {
			continue
		}
		lightDecl, ok := light[dark.Name]
		if !ok {
			continue
		}
		value := "light-dark(" + lightDecl.Value + ", " + dark.Value + ")"
		result = append(result, Declaration{dark.Name, value, CategoryColor, dark.Group})
	}
	return result
}

// RelativeShades derives lighter and darker accent variants using
// relative oklch() syntax, one pair per bucket the base appears in.
// Requires color-space conversion to be enabled.
func RelativeShades(b *Buckets, prefix string, usable func(Declaration) bool) *Buckets {
	derive := func(decls []Declaration) []Declaration {
		var result []Declaration
		for _, decl := range decls {
			if decl.Category != CategoryColor || !isAccent(stripPrefix(decl.Name, prefix)) || !usable(decl) {
				continue
			}
			base := "var(" + decl.Name + ")"
			result = append(result,
				Declaration{decl.Name + "-lighter", "oklch(from " + base + " calc(l * 1.2) c h)", CategoryColor, decl.Group},
				Declaration{decl.Name + "-darker", "oklch(from " + base + " calc(l * 0.8) c h)", CategoryColor, decl.Group},
			)
		}
		return result
	}

	return &Buckets{
		Root:  derive(b.Root),
		Dark:  derive(b.Dark),
		Light: derive(b.Light),
	}
}

// stripPrefix removes the leading "--" and the configured variable
// prefix from a property name for classification.
func stripPrefix(name, prefix string) string {
	bare := strings.TrimPrefix(name, "--")
	if prefix != "" {
		bare = strings.TrimPrefix(bare, strings.ReplaceAll(prefix, ".", "-")+"-")
	}
	return bare
}

// Empty reports whether no bucket holds any declaration.
func (b *Buckets) Empty() bool {
	return len(b.Root) == 0 && len(b.Dark) == 0 && len(b.Light) == 0
}
