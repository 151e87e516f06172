/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides the version command for gvanim.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"bennypowers.dev/gvanim/internal/version"
)

// Cmd is the version cobra command.
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for gvanim.`,
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	fmt.Printf("gvanim %s\n", version.Version)
	return nil
}
