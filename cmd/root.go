/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for gvanim.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/gvanim/cmd/generate"
	"bennypowers.dev/gvanim/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "gvanim",
	Short: "Compile design token sources into CSS custom properties",
	Long:  `gvanim compiles a directory of design token definitions into a single stylesheet of CSS custom properties, with tiered alias resolution, OKLCH color conversion, and progressive enhancements.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("prefix", "p", "", "CSS variable prefix")
	_ = viper.BindPFlag("prefix", rootCmd.PersistentFlags().Lookup("prefix"))

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
