/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diag collects non-fatal pipeline diagnostics.
//
// Library code never prints warnings; it records them here so that tests,
// the CLI, and other integrations can assert on them programmatically.
package diag

import "fmt"

// Kind classifies a diagnostic.
type Kind string

const (
	// UnresolvedReference marks an alias path not found in the layered lookup.
	UnresolvedReference Kind = "unresolved-reference"

	// UnparseableColor marks a color value that is neither valid hex nor
	// oklch() syntax.
	UnparseableColor Kind = "unparseable-color"
)

// Diagnostic is one collected warning.
type Diagnostic struct {
	Kind    Kind
	Path    string
	Message string
}

// String formats the diagnostic for CLI display.
func (d Diagnostic) String() string {
	if d.Path == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.Path, d.Message)
}

// Collector accumulates diagnostics in order of occurrence.
type Collector struct {
	diags []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add records a diagnostic.
func (c *Collector) Add(kind Kind, path, format string, args ...any) {
	c.diags = append(c.diags, Diagnostic{
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// All returns the collected diagnostics in order.
func (c *Collector) All() []Diagnostic {
	return c.diags
}

// OfKind returns the collected diagnostics matching kind.
func (c *Collector) OfKind(kind Kind) []Diagnostic {
	var result []Diagnostic
	for _, d := range c.diags {
		if d.Kind == kind {
			result = append(result, d)
		}
	}
	return result
}
