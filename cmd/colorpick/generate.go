package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorpick/internal/config"
	"github.com/thatcatcamp/colorpick/internal/generation"
	"github.com/thatcatcamp/colorpick/internal/palette"
	"gopkg.in/yaml.v3"
)

var generateCmd = &cobra.Command{
	Use:   "generate <keyword>",
	Short: "Generate a palette for a keyword and print it",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		format, _ := cmd.Flags().GetString("format")

		client := generation.NewClient(generation.ClientConfig{
			APIKey:   config.APIKey(),
			Model:    config.GetString("gemini.model"),
			Endpoint: config.GetString("gemini.endpoint"),
			Timeout:  config.GetDuration("gemini.timeout"),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		rec, err := client.Generate(ctx, strings.Join(args, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", generation.UserMessage(err))
			fmt.Fprintf(os.Stderr, "Detail: %v\n", err)
			os.Exit(1)
		}

		if err := printRecommendation(os.Stdout, rec, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func printRecommendation(w io.Writer, rec *palette.Recommendation, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml":
		return yaml.NewEncoder(w).Encode(rec)
	case "text":
		fmt.Fprintf(w, "%s\n\n", rec.ThemeName)
		for i, c := range rec.Colors {
			fmt.Fprintf(w, "%2d. %-8s %s\n", i+1, c.Base, c.Name)
			for _, v := range c.Variations {
				fmt.Fprintf(w, "      %-9s highlight %s  shadow %s\n", v.Label, v.Highlight, v.Shadow)
			}
		}
		return nil
	}
	return fmt.Errorf("unsupported format %q (want text, json or yaml)", format)
}

func init() {
	generateCmd.Flags().String("format", "text", "Output format (text, json, yaml)")
	rootCmd.AddCommand(generateCmd)
}
