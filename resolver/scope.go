/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

// Scope is one immutable resolution layer: dot-joined token paths mapped
// to values. Tiered sources get one scope per tier; flat sources get a
// single scope over the whole tree.
type Scope struct {
	Name   string
	values map[string]any
}

// NewScope creates a scope from a path→value map.
func NewScope(name string, values map[string]any) *Scope {
	return &Scope{Name: name, values: values}
}

// Get looks up a dot-joined path in this scope.
func (s *Scope) Get(path string) (any, bool) {
	v, ok := s.values[path]
	return v, ok
}

// Lookup is an ordered list of scopes. Later scopes shadow earlier ones,
// so Get searches newest-first. Later tiers never retroactively alter
// values already resolved against an earlier lookup.
type Lookup []*Scope

// Get searches the scopes newest-first for a dot-joined path.
func (l Lookup) Get(path string) (any, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		if v, ok := l[i].Get(path); ok {
			return v, true
		}
	}
	return nil, false
}
