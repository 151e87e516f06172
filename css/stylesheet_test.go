/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css_test

import (
	"strings"
	"testing"

	"bennypowers.dev/gvanim/css"
	"bennypowers.dev/gvanim/diag"
	"bennypowers.dev/gvanim/token"
)

func generate(t *testing.T, tokens []*token.Token, opts css.Options) (string, *diag.Collector) {
	t.Helper()
	diags := diag.NewCollector()
	buckets := css.Emit(tokens, opts.Prefix)
	sheet := css.Generate(buckets, opts, diags)
	return string(sheet), diags
}

func TestGenerate_BlockOrder(t *testing.T) {
	tokens := []*token.Token{
		resolved("color.surface", "#FFFFFF"),
		resolved("color.surface.dark", "#1A1A2E"),
		resolved("color.surface.light", "#FFF8F0"),
	}
	sheet, _ := generate(t, tokens, css.Options{})

	order := []string{
		":root {",
		`[data-theme="dark"] {`,
		`[data-theme="light"] {`,
		"@media (prefers-color-scheme: dark) {",
		":root:not([data-theme])",
		"@media (prefers-color-scheme: light) {",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(sheet, marker)
		if idx < 0 {
			t.Fatalf("missing block %q in:\n%s", marker, sheet)
		}
		if idx < last {
			t.Errorf("block %q out of order", marker)
		}
		last = idx
	}
}

func TestGenerate_FlagsOffOmitOptionalBlocks(t *testing.T) {
	tokens := []*token.Token{resolved("color.accent", "#00A8A8")}
	sheet, _ := generate(t, tokens, css.Options{})

	for _, marker := range []string{"@supports", "@property", "light-dark(", "color-mix("} {
		if strings.Contains(sheet, marker) {
			t.Errorf("unexpected %q with all flags off:\n%s", marker, sheet)
		}
	}
}

func TestGenerate_OKLCHBlock(t *testing.T) {
	tokens := []*token.Token{resolved("color.accent", "#FF6B35")}
	sheet, _ := generate(t, tokens, css.Options{OKLCH: true})

	if !strings.Contains(sheet, "@supports (color: oklch(0% 0 0)) {") {
		t.Fatalf("missing oklch supports block:\n%s", sheet)
	}
	if !strings.Contains(sheet, "--color-accent-srgb: #FF6B35;") {
		t.Errorf("missing srgb fallback property:\n%s", sheet)
	}
	if !strings.Contains(sheet, "--color-accent: oklch(") {
		t.Errorf("missing converted property:\n%s", sheet)
	}
	// The base block still carries the source value.
	if !strings.Contains(sheet, "--color-accent: #FF6B35;") {
		t.Errorf("base declaration must keep the source value:\n%s", sheet)
	}
}

func TestGenerate_OKLCHBlockOmittedWithoutConvertibles(t *testing.T) {
	tokens := []*token.Token{resolved("space.md", float64(16))}
	sheet, _ := generate(t, tokens, css.Options{OKLCH: true})

	if strings.Contains(sheet, "@supports") {
		t.Errorf("no colors means no oklch block:\n%s", sheet)
	}
}

func TestGenerate_Enhancements(t *testing.T) {
	tokens := []*token.Token{
		resolved("color.accent.dark", "#FF8C5A"),
		resolved("color.accent.light", "#FF6B35"),
	}
	sheet, _ := generate(t, tokens, css.Options{Enhancements: true})

	if !strings.Contains(sheet, "@property --color-accent {") {
		t.Errorf("missing @property registration:\n%s", sheet)
	}
	if !strings.Contains(sheet, "@supports (color: color-mix(in oklab, red, blue)) {") {
		t.Errorf("missing interaction block:\n%s", sheet)
	}
	if !strings.Contains(sheet, "color-scheme: light dark;") {
		t.Errorf("missing color-scheme:\n%s", sheet)
	}
	if !strings.Contains(sheet, "--color-accent: light-dark(#FF6B35, #FF8C5A);") {
		t.Errorf("missing light-dark collapse:\n%s", sheet)
	}
	// Relative shades need the OKLCH flag too.
	if strings.Contains(sheet, "oklch(from") {
		t.Errorf("relative shades must require the oklch flag:\n%s", sheet)
	}
}

func TestGenerate_RelativeShadesRequireBothFlags(t *testing.T) {
	tokens := []*token.Token{resolved("color.accent", "#FF6B35")}
	sheet, _ := generate(t, tokens, css.Options{OKLCH: true, Enhancements: true})

	if !strings.Contains(sheet, "@supports (color: oklch(from red calc(l * 1.2) c h)) {") {
		t.Fatalf("missing relative shades block:\n%s", sheet)
	}
	if !strings.Contains(sheet, "--color-accent-lighter: oklch(from var(--color-accent) calc(l * 1.2) c h);") {
		t.Errorf("missing lighter shade:\n%s", sheet)
	}
}

func TestGenerate_EnhancementOrder(t *testing.T) {
	tokens := []*token.Token{
		resolved("color.accent.dark", "#FF8C5A"),
		resolved("color.accent.light", "#FF6B35"),
	}
	sheet, _ := generate(t, tokens, css.Options{OKLCH: true, Enhancements: true})

	order := []string{
		"@property ",
		"color-mix(in oklab, red, blue)",
		"light-dark(red, blue)",
		"oklch(from red",
	}
	last := -1
	for _, marker := range order {
		idx := strings.Index(sheet, marker)
		if idx < 0 {
			t.Fatalf("missing enhancement %q in:\n%s", marker, sheet)
		}
		if idx < last {
			t.Errorf("enhancement %q out of order", marker)
		}
		last = idx
	}
}

func TestGenerate_CategoryHeadings(t *testing.T) {
	tokens := []*token.Token{
		resolved("color.accent", "#00A8A8"),
		resolved("space.md", float64(16)),
	}
	sheet, _ := generate(t, tokens, css.Options{})

	if !strings.Contains(sheet, "/* Color */") {
		t.Errorf("missing color heading:\n%s", sheet)
	}
	if !strings.Contains(sheet, "/* Dimension */") {
		t.Errorf("missing dimension heading:\n%s", sheet)
	}
}

func TestGenerate_UnparseableColorDiagnostic(t *testing.T) {
	tokens := []*token.Token{
		resolved("color.bad", "not-a-hex-color-###"),
		resolved("color.unresolved", "{color.missing}"),
	}
	_, diags := generate(t, tokens, css.Options{})

	unparseable := diags.OfKind(diag.UnparseableColor)
	if len(unparseable) != 1 {
		t.Fatalf("expected 1 unparseable diagnostic, got %d", len(unparseable))
	}
	if unparseable[0].Path != "--color-bad" {
		t.Errorf("diagnostic should name the property, got %s", unparseable[0].Path)
	}
}

func TestGenerate_NamedColorsParse(t *testing.T) {
	// Named CSS colors are valid color values, just not oklch-convertible.
	tokens := []*token.Token{resolved("color.accent", "rebeccapurple")}
	_, diags := generate(t, tokens, css.Options{})

	if len(diags.OfKind(diag.UnparseableColor)) != 0 {
		t.Errorf("named colors must not warn: %v", diags.All())
	}
}
