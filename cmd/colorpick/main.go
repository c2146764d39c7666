package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "colorpick",
	Short: "colorpick - themed color palette explorer",
	Long: `colorpick generates themed 20-color palettes from a keyword, lets you
try each color on spheres and cubes under three lighting variations, and
keeps named collections of the colors you like.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
