/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version records the build version of gvanim.
package version

// Version is the gvanim version, overridden at build time via
// -ldflags "-X bennypowers.dev/gvanim/internal/version.Version=...".
var Version = "dev"
