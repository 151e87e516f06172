/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver_test

import (
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/gvanim/diag"
	"bennypowers.dev/gvanim/resolver"
	"bennypowers.dev/gvanim/token"
)

func tok(path string, value any) *token.Token {
	return &token.Token{Path: strings.Split(path, "."), Value: value}
}

func TestResolveFlat_FullAliasPreservesType(t *testing.T) {
	tokens := []*token.Token{
		tok("space.md", float64(16)),
		tok("space.gutter", "{space.md}"),
	}

	r := resolver.New(diag.NewCollector())
	if _, err := r.ResolveFlat(tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[1].Resolved != float64(16) {
		t.Errorf("expected float64 16, got %T %v", tokens[1].Resolved, tokens[1].Resolved)
	}
}

func TestResolveFlat_ChainedAlias(t *testing.T) {
	tokens := []*token.Token{
		tok("color.teal.500", "#00A8A8"),
		tok("color.accent", "{color.teal.500}"),
		tok("color.link", "{color.accent}"),
	}

	r := resolver.New(diag.NewCollector())
	if _, err := r.ResolveFlat(tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[2].Resolved != "#00A8A8" {
		t.Errorf("expected #00A8A8, got %v", tokens[2].Resolved)
	}
}

func TestResolveFlat_EmbeddedAliasesStringify(t *testing.T) {
	tokens := []*token.Token{
		tok("border.width", float64(1)),
		tok("color.border", "#CCCCCC"),
		tok("border.default", "{border.width}px solid {color.border}"),
	}

	r := resolver.New(diag.NewCollector())
	if _, err := r.ResolveFlat(tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := tokens[2].Resolved.(string)
	if !ok {
		t.Fatalf("expected string, got %T", tokens[2].Resolved)
	}
	if got != "1px solid #CCCCCC" {
		t.Errorf("expected interpolated string, got %q", got)
	}
	if strings.ContainsAny(got, "{}") {
		t.Errorf("resolved value must not contain braces: %q", got)
	}
}

func TestResolveFlat_UnresolvedKeepsText(t *testing.T) {
	tokens := []*token.Token{
		tok("color.accent", "{color.missing}"),
	}

	diags := diag.NewCollector()
	r := resolver.New(diags)
	if _, err := r.ResolveFlat(tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens[0].Resolved != "{color.missing}" {
		t.Errorf("expected literal alias text, got %v", tokens[0].Resolved)
	}

	unresolved := diags.OfKind(diag.UnresolvedReference)
	if len(unresolved) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(unresolved))
	}
	if !strings.Contains(unresolved[0].Message, "color.missing") {
		t.Errorf("diagnostic should name the path: %s", unresolved[0].Message)
	}
}

func TestResolveFlat_CycleFails(t *testing.T) {
	tokens := []*token.Token{
		tok("color.a", "{color.b}"),
		tok("color.b", "{color.a}"),
	}

	r := resolver.New(diag.NewCollector())
	_, err := r.ResolveFlat(tokens)
	if !errors.Is(err, resolver.ErrCyclicReference) {
		t.Fatalf("expected ErrCyclicReference, got %v", err)
	}
	if !strings.Contains(err.Error(), "color.a") || !strings.Contains(err.Error(), "color.b") {
		t.Errorf("error should name the chain: %v", err)
	}
}

func TestResolveFlat_SelfReference(t *testing.T) {
	tokens := []*token.Token{
		tok("color.a", "{color.a}"),
	}

	r := resolver.New(diag.NewCollector())
	if _, err := r.ResolveFlat(tokens); !errors.Is(err, resolver.ErrCyclicReference) {
		t.Errorf("expected ErrCyclicReference, got %v", err)
	}
}

func TestResolveFlat_CompositeFields(t *testing.T) {
	tokens := []*token.Token{
		tok("color.shadow", "#00000040"),
		tok("shadow.card", map[string]any{
			"offsetY": float64(2),
			"blur":    float64(8),
			"color":   "{color.shadow}",
		}),
	}

	r := resolver.New(diag.NewCollector())
	if _, err := r.ResolveFlat(tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	composite, ok := tokens[1].Resolved.(map[string]any)
	if !ok {
		t.Fatalf("expected composite, got %T", tokens[1].Resolved)
	}
	if composite["color"] != "#00000040" {
		t.Errorf("expected resolved field, got %v", composite["color"])
	}
	if composite["blur"] != float64(8) {
		t.Errorf("literal field changed: %v", composite["blur"])
	}
}

func TestResolveFlat_SequencePassthrough(t *testing.T) {
	curve := []any{float64(0.4), float64(0), float64(0.2), float64(1)}
	tokens := []*token.Token{
		tok("easing.standard", curve),
	}

	r := resolver.New(diag.NewCollector())
	if _, err := r.ResolveFlat(tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := tokens[0].Resolved.([]any)
	if !ok || len(got) != 4 {
		t.Errorf("expected 4-element sequence, got %v", tokens[0].Resolved)
	}
}

func TestResolveTiers_LaterScopeShadows(t *testing.T) {
	primitives := []*token.Token{
		tok("color.accent", "#111111"),
	}
	semantic := []*token.Token{
		tok("color.accent", "#222222"),
	}
	component := []*token.Token{
		tok("button.bg", "{color.accent}"),
	}

	r := resolver.New(diag.NewCollector())
	if _, err := r.ResolveTiers(primitives, semantic, component); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if component[0].Resolved != "#222222" {
		t.Errorf("expected the semantic scope to shadow primitives, got %v", component[0].Resolved)
	}
}

func TestResolveTiers_NoSameTierReference(t *testing.T) {
	// A tier's own tokens are not visible while that tier resolves.
	primitives := []*token.Token{
		tok("color.teal", "#00A8A8"),
		tok("color.accent", "{color.teal}"),
	}

	diags := diag.NewCollector()
	r := resolver.New(diags)
	if _, err := r.ResolveTiers(primitives, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if primitives[1].Resolved != "{color.teal}" {
		t.Errorf("expected literal alias text, got %v", primitives[1].Resolved)
	}
	if len(diags.OfKind(diag.UnresolvedReference)) != 1 {
		t.Errorf("expected 1 unresolved diagnostic, got %d", len(diags.All()))
	}
}

func TestResolveTiers_SemanticSeesPrimitives(t *testing.T) {
	primitives := []*token.Token{
		tok("color.teal.500", "#00A8A8"),
	}
	semantic := []*token.Token{
		tok("color.accent", "{color.teal.500}"),
	}

	r := resolver.New(diag.NewCollector())
	lookup, err := r.ResolveTiers(primitives, semantic, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if semantic[0].Resolved != "#00A8A8" {
		t.Errorf("expected resolved primitive, got %v", semantic[0].Resolved)
	}

	value, ok := lookup.Get("color.accent")
	if !ok || value != "#00A8A8" {
		t.Errorf("expected final lookup to hold resolved value, got %v %v", value, ok)
	}
}

func TestResolveFlat_DiagnosticsDeduplicated(t *testing.T) {
	tokens := []*token.Token{
		tok("border.a", "{missing.path} {missing.path}"),
	}

	diags := diag.NewCollector()
	r := resolver.New(diags)
	if _, err := r.ResolveFlat(tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(diags.OfKind(diag.UnresolvedReference)); got != 1 {
		t.Errorf("expected 1 deduplicated diagnostic, got %d", got)
	}
}
