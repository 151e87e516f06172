/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver substitutes alias expressions in token values against
// layered lookups, producing fully literal values.
package resolver

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"bennypowers.dev/gvanim/diag"
	"bennypowers.dev/gvanim/token"
)

// ErrCyclicReference indicates an alias chain revisited a path already
// being resolved.
var ErrCyclicReference = errors.New("cyclic token reference")

// Resolver resolves alias expressions and records unresolved-reference
// diagnostics on its collector.
type Resolver struct {
	diags  *diag.Collector
	warned map[string]bool
}

// New creates a resolver reporting to the given collector.
func New(diags *diag.Collector) *Resolver {
	return &Resolver{
		diags:  diags,
		warned: make(map[string]bool),
	}
}

// ResolveFlat resolves a single-tier token list against a lookup over its
// own raw values. Aliases may reference any path in the same tree; the
// visited-path chain guards against cycles. Sets Resolved on every token.
func (r *Resolver) ResolveFlat(tokens []*token.Token) (Lookup, error) {
	raw := make(map[string]any, len(tokens))
	for _, t := range tokens {
		raw[t.DotPath()] = t.Value
	}
	lookup := Lookup{NewScope(token.TierPrimitives, raw)}

	resolved := make(map[string]any, len(tokens))
	for _, t := range tokens {
		value, err := r.resolve(t.Value, lookup, t.DotPath(), []string{t.DotPath()})
		if err != nil {
			return nil, err
		}
		t.Resolved = value
		resolved[t.DotPath()] = value
	}

	return Lookup{NewScope(token.TierPrimitives, resolved)}, nil
}

// ResolveTiers resolves the three tiers in strict order: primitives
// against an empty lookup, semantic against the primitives scope,
// component against both. A tier's own unresolved tokens never appear in
// the lookup used to resolve that tier, and later scopes shadow earlier
// ones only within their own resolution pass. Sets Resolved on every
// token and returns the final lookup.
func (r *Resolver) ResolveTiers(primitives, semantic, component []*token.Token) (Lookup, error) {
	tiers := []struct {
		name   string
		tokens []*token.Token
	}{
		{token.TierPrimitives, primitives},
		{token.TierSemantic, semantic},
		{token.TierComponent, component},
	}

	var lookup Lookup
	for _, tier := range tiers {
		values := make(map[string]any, len(tier.tokens))
		for _, t := range tier.tokens {
			value, err := r.resolve(t.Value, lookup, t.DotPath(), []string{t.DotPath()})
			if err != nil {
				return nil, err
			}
			t.Resolved = value
			values[t.DotPath()] = value
		}
		lookup = append(lookup, NewScope(tier.name, values))
	}

	return lookup, nil
}

// Resolve resolves one value against a lookup. Exposed for callers that
// resolve ad hoc values outside the tier pipeline.
func (r *Resolver) Resolve(value any, lookup Lookup, owner string) (any, error) {
	return r.resolve(value, lookup, owner, []string{owner})
}

// resolve applies the substitution rules. visiting is the chain of paths
// currently being resolved; revisiting one is a cycle.
func (r *Resolver) resolve(value any, lookup Lookup, owner string, visiting []string) (any, error) {
	switch v := value.(type) {
	case string:
		if path, ok := token.ParseFullRef(v); ok {
			resolved, found, err := r.resolveRef(path, lookup, owner, visiting)
			if err != nil {
				return nil, err
			}
			if !found {
				// Keep the literal alias text; never silently drop it.
				return v, nil
			}
			return resolved, nil
		}
		if token.HasRef(v) {
			return r.substitute(v, lookup, owner, visiting)
		}
		return v, nil

	case map[string]any:
		// Composite fields resolve independently; order is irrelevant.
		result := make(map[string]any, len(v))
		for field, fieldValue := range v {
			resolved, err := r.resolve(fieldValue, lookup, owner, visiting)
			if err != nil {
				return nil, err
			}
			result[field] = resolved
		}
		return result, nil

	case []any:
		// Sequences (e.g. curve control points) are not alias-searched.
		return v, nil

	default:
		return v, nil
	}
}

// resolveRef looks up one alias path and recursively resolves its value.
func (r *Resolver) resolveRef(path string, lookup Lookup, owner string, visiting []string) (any, bool, error) {
	if slices.Contains(visiting, path) {
		chain := strings.Join(append(slices.Clone(visiting), path), " -> ")
		return nil, false, fmt.Errorf("%w: %s", ErrCyclicReference, chain)
	}

	value, ok := lookup.Get(path)
	if !ok {
		r.warnUnresolved(owner, path)
		return nil, false, nil
	}

	resolved, err := r.resolve(value, lookup, owner, append(visiting, path))
	if err != nil {
		return nil, false, err
	}
	return resolved, true, nil
}

// substitute replaces each embedded {path} occurrence with the
// stringified resolution of that path, leaving unresolved occurrences'
// original text in place.
func (r *Resolver) substitute(value string, lookup Lookup, owner string, visiting []string) (any, error) {
	var resolveErr error
	result := token.ReplaceRefs(value, func(path string) (string, bool) {
		if resolveErr != nil {
			return "", false
		}
		resolved, found, err := r.resolveRef(path, lookup, owner, visiting)
		if err != nil {
			resolveErr = err
			return "", false
		}
		if !found {
			return "", false
		}
		return stringify(resolved), true
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return result, nil
}

// warnUnresolved records an unresolved-reference diagnostic once per
// owner/path pair.
func (r *Resolver) warnUnresolved(owner, path string) {
	key := owner + "\x00" + path
	if r.warned[key] {
		return
	}
	r.warned[key] = true
	r.diags.Add(diag.UnresolvedReference, owner, "reference {%s} not found", path)
}

// stringify renders a resolved value for embedding in a mixed string.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
