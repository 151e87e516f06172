/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css

import (
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/gvanim/diag"
	"bennypowers.dev/gvanim/oklch"
)

// Options control the optional output stages.
type Options struct {
	Prefix       string
	OKLCH        bool
	Enhancements bool
}

const (
	selectorRoot     = ":root"
	selectorDark     = `[data-theme="dark"]`
	selectorLight    = `[data-theme="light"]`
	selectorUnthemed = ":root:not([data-theme])"
)

// Generate assembles the stylesheet from emitted declarations. Block
// order is fixed: base blocks, media fallbacks, the color-space
// conversion block, then the enhancement blocks. Optional blocks with
// no qualifying declarations are omitted entirely.
func Generate(buckets *Buckets, opts Options, diags *diag.Collector) []byte {
	reportUnparseable(buckets, diags)

	var sb strings.Builder

	writeBlock(&sb, selectorRoot, buckets.Root, 0)
	writeBlock(&sb, selectorDark, buckets.Dark, 0)
	writeBlock(&sb, selectorLight, buckets.Light, 0)
	writeMediaFallback(&sb, "dark", buckets.Dark)
	writeMediaFallback(&sb, "light", buckets.Light)

	if opts.OKLCH {
		writeOKLCHBlock(&sb, buckets)
	}

	if opts.Enhancements {
		writeTypedProperties(&sb, buckets, opts.Prefix)
		writeInteractionStates(&sb, buckets, opts.Prefix)
		writeDualTheme(&sb, buckets)
		if opts.OKLCH {
			writeRelativeShades(&sb, buckets, opts.Prefix)
		}
	}

	return []byte(sb.String())
}

// parseableColor reports whether a declaration's value is usable as a
// color input for derived properties.
func parseableColor(d Declaration) bool {
	value := strings.TrimSpace(d.Value)
	if strings.HasPrefix(value, "oklch(") {
		return true
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// reportUnparseable records one unparseable-color diagnostic per color
// property whose value is neither a valid color nor an unresolved alias
// (those already carry their own diagnostic).
func reportUnparseable(buckets *Buckets, diags *diag.Collector) {
	reported := make(map[string]bool)
	for _, bucket := range [][]Declaration{buckets.Root, buckets.Dark, buckets.Light} {
		for _, decl := range bucket {
			if decl.Category != CategoryColor || reported[decl.Name] {
				continue
			}
			if strings.Contains(decl.Value, "{") || parseableColor(decl) {
				continue
			}
			reported[decl.Name] = true
			diags.Add(diag.UnparseableColor, decl.Name, "value %q is not a recognized color", decl.Value)
		}
	}
}

// writeBlock writes one selector block with category comment headings.
func writeBlock(sb *strings.Builder, selector string, decls []Declaration, depth int) {
	if len(decls) == 0 {
		return
	}
	pad := strings.Repeat("  ", depth)
	inner := strings.Repeat("  ", depth+1)

	sb.WriteString(pad + selector + " {\n")
	group := ""
	for _, decl := range decls {
		if decl.Group != group {
			if group != "" {
				sb.WriteString("\n")
			}
			group = decl.Group
			sb.WriteString(inner + "/* " + Heading(group) + " */\n")
		}
		sb.WriteString(inner + decl.Name + ": " + decl.Value + ";\n")
	}
	sb.WriteString(pad + "}\n\n")
}

// writeMediaFallback applies a theme's declarations to unthemed roots
// that match the corresponding system preference.
func writeMediaFallback(sb *strings.Builder, scheme string, decls []Declaration) {
	if len(decls) == 0 {
		return
	}
	sb.WriteString("@media (prefers-color-scheme: " + scheme + ") {\n")
	writeBlock(sb, selectorUnthemed, decls, 1)
	trimBlankLine(sb)
	sb.WriteString("}\n\n")
}

// writeOKLCHBlock re-declares every convertible color inside an
// @supports guard, keeping the source value on a -srgb companion
// property. Colors that fail to convert keep only their base
// declaration.
func writeOKLCHBlock(sb *strings.Builder, buckets *Buckets) {
	convert := func(decls []Declaration) []Declaration {
		var result []Declaration
		for _, decl := range decls {
			if decl.Category != CategoryColor {
				continue
			}
			converted, ok := oklch.Convert(decl.Value)
			if !ok || converted == decl.Value {
				continue
			}
			result = append(result,
				Declaration{decl.Name + "-srgb", decl.Value, CategoryColor, decl.Group},
				Declaration{decl.Name, converted, CategoryColor, decl.Group},
			)
		}
		return result
	}

	converted := &Buckets{
		Root:  convert(buckets.Root),
		Dark:  convert(buckets.Dark),
		Light: convert(buckets.Light),
	}
	if converted.Empty() {
		return
	}

	sb.WriteString("@supports (color: oklch(0% 0 0)) {\n")
	writeBlock(sb, selectorRoot, converted.Root, 1)
	writeBlock(sb, selectorDark, converted.Dark, 1)
	writeBlock(sb, selectorLight, converted.Light, 1)
	trimBlankLine(sb)
	sb.WriteString("}\n\n")
}

// writeTypedProperties registers inferred @property rules. @property
// needs no @supports guard; unsupporting engines ignore the at-rule.
func writeTypedProperties(sb *strings.Builder, buckets *Buckets, prefix string) {
	for _, prop := range TypedProperties(buckets, prefix) {
		sb.WriteString("@property " + prop.Name + " {\n")
		sb.WriteString("  syntax: \"" + prop.Syntax + "\";\n")
		sb.WriteString("  inherits: true;\n")
		sb.WriteString("  initial-value: " + prop.Initial + ";\n")
		sb.WriteString("}\n\n")
	}
}

func writeInteractionStates(sb *strings.Builder, buckets *Buckets, prefix string) {
	derived := InteractionStates(buckets, prefix, parseableColor)
	if derived.Empty() {
		return
	}
	sb.WriteString("@supports (color: color-mix(in oklab, red, blue)) {\n")
	writeBlock(sb, selectorRoot, derived.Root, 1)
	writeBlock(sb, selectorDark, derived.Dark, 1)
	writeBlock(sb, selectorLight, derived.Light, 1)
	trimBlankLine(sb)
	sb.WriteString("}\n\n")
}

func writeDualTheme(sb *strings.Builder, buckets *Buckets) {
	collapsed := DualThemeCollapse(buckets)
	if len(collapsed) == 0 {
		return
	}
	sb.WriteString("@supports (color: light-dark(red, blue)) {\n")
	sb.WriteString("  " + selectorRoot + " {\n")
	sb.WriteString("    color-scheme: light dark;\n\n")
	sb.WriteString("    /* " + Heading(CategoryColor.String()) + " */\n")
	for _, decl := range collapsed {
		sb.WriteString("    " + decl.Name + ": " + decl.Value + ";\n")
	}
	sb.WriteString("  }\n")
	sb.WriteString("}\n\n")
}

func writeRelativeShades(sb *strings.Builder, buckets *Buckets, prefix string) {
	derived := RelativeShades(buckets, prefix, parseableColor)
	if derived.Empty() {
		return
	}
	sb.WriteString("@supports (color: oklch(from red calc(l * 1.2) c h)) {\n")
	writeBlock(sb, selectorRoot, derived.Root, 1)
	writeBlock(sb, selectorDark, derived.Dark, 1)
	writeBlock(sb, selectorLight, derived.Light, 1)
	trimBlankLine(sb)
	sb.WriteString("}\n\n")
}

// trimBlankLine removes the blank line a nested writeBlock leaves
// before a closing brace.
func trimBlankLine(sb *strings.Builder) {
	s := sb.String()
	if strings.HasSuffix(s, "\n\n") {
		sb.Reset()
		sb.WriteString(s[:len(s)-1])
	}
}
