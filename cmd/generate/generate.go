/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for gvanim.
package generate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/gvanim/compile"
	"bennypowers.dev/gvanim/config"
	"bennypowers.dev/gvanim/fs"
	"bennypowers.dev/gvanim/internal/logger"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate [source-dir]",
	Short: "Generate a stylesheet from a token source directory",
	Long: `Generate compiles a token source directory into one stylesheet of CSS
custom properties. The source layout (legacy, flat, or three-tier) is
detected automatically. Without --output the stylesheet goes to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Write the stylesheet to this path instead of stdout")
	Cmd.Flags().Bool("oklch", false, "Convert colors to OKLCH with sRGB fallbacks")
	Cmd.Flags().Bool("enhancements", false, "Emit progressive-enhancement blocks")
}

func run(cmd *cobra.Command, args []string) error {
	filesystem := fs.NewOSFileSystem()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("error determining working directory: %w", err)
	}
	cfg := config.LoadOrDefault(filesystem, cwd)

	source := cfg.Source
	if len(args) == 1 {
		source = args[0]
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Output
	}

	oklchFlag := cfg.OKLCH
	if cmd.Flags().Changed("oklch") {
		oklchFlag, _ = cmd.Flags().GetBool("oklch")
	}
	enhancements := cfg.Enhancements
	if cmd.Flags().Changed("enhancements") {
		enhancements, _ = cmd.Flags().GetBool("enhancements")
	}

	prefix := viper.GetString("prefix")
	if prefix == "" {
		prefix = cfg.Prefix
	}

	result, err := compile.Compile(filesystem, source, compile.Options{
		Prefix:       prefix,
		OKLCH:        oklchFlag,
		Enhancements: enhancements,
	})
	if err != nil {
		return fmt.Errorf("error compiling %s: %w", source, err)
	}

	for _, d := range result.Diagnostics {
		logger.Warn("%s", d.String())
	}

	if output == "" {
		fmt.Print(string(result.CSS))
		return nil
	}
	if err := filesystem.WriteFile(output, result.CSS, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}
	return nil
}
