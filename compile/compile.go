/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compile runs the full token pipeline: detect the source
// layout, load and flatten the files, resolve aliases, and assemble the
// stylesheet.
package compile

import (
	"bennypowers.dev/gvanim/css"
	"bennypowers.dev/gvanim/diag"
	gvfs "bennypowers.dev/gvanim/fs"
	"bennypowers.dev/gvanim/layout"
	"bennypowers.dev/gvanim/loader"
	"bennypowers.dev/gvanim/resolver"
)

// Options select the optional output stages and the variable prefix.
type Options struct {
	Prefix       string
	OKLCH        bool
	Enhancements bool
}

// Result is a successful compilation. Diagnostics are non-fatal
// warnings collected along the way; the stylesheet is complete even
// when they are present.
type Result struct {
	CSS         []byte
	Diagnostics []diag.Diagnostic
	Format      layout.Format
}

// Compile runs one synchronous pass over the token source root. Any
// fatal error returns a nil result; partial output is never produced.
func Compile(filesystem gvfs.FileSystem, root string, opts Options) (*Result, error) {
	format, err := layout.Detect(filesystem, root)
	if err != nil {
		return nil, err
	}

	set, err := loader.Load(filesystem, root, format)
	if err != nil {
		return nil, err
	}

	diags := diag.NewCollector()
	r := resolver.New(diags)

	switch format {
	case layout.ThreeTier:
		_, err = r.ResolveTiers(set.Primitives, set.Semantic, set.Component)
	default:
		_, err = r.ResolveFlat(set.Primitives)
	}
	if err != nil {
		return nil, err
	}

	buckets := css.Emit(set.All(), opts.Prefix)
	sheet := css.Generate(buckets, css.Options{
		Prefix:       opts.Prefix,
		OKLCH:        opts.OKLCH,
		Enhancements: opts.Enhancements,
	}, diags)

	return &Result{
		CSS:         sheet,
		Diagnostics: diags.All(),
		Format:      format,
	}, nil
}
