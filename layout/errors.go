/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package layout

import "errors"

// Sentinel errors for the token pipeline.
var (
	// ErrMissingInput indicates a required source file or directory is
	// absent for the detected format.
	ErrMissingInput = errors.New("missing required token source")

	// ErrUnparseable indicates a present definition file could not be parsed.
	ErrUnparseable = errors.New("unparseable token definition file")
)
