package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/colorpick/internal/collections"
	"github.com/thatcatcamp/colorpick/internal/db"
	"github.com/thatcatcamp/colorpick/internal/storage"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Inspect saved color collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list [workspace]",
	Short: "List workspaces with saved collections, or one workspace's collections",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		slots := storage.NewSlotStore(db.GetDB())
		ctx := context.Background()

		if len(args) == 0 {
			rows, err := slots.List(ctx, storage.CollectionsPrefix+":")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if len(rows) == 0 {
				fmt.Println("No saved collections")
				return
			}
			for _, row := range rows {
				id := strings.TrimPrefix(row.Key, storage.CollectionsPrefix+":")
				store := collections.Load([]byte(row.Value))
				fmt.Printf("%s  %d collection(s)  updated %s\n", id, store.Len(), row.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return
		}

		store, err := loadCollections(ctx, slots, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		active := store.Active().ID
		for _, p := range store.List() {
			marker := " "
			if p.ID == active {
				marker = "*"
			}
			fmt.Printf("%s %-24s %-20s %s\n", marker, p.ID, p.Name, strings.Join(p.Colors, " "))
		}
	},
}

var collectionsExportCmd = &cobra.Command{
	Use:   "export <workspace>",
	Short: "Export a workspace's collections as YAML or JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		format, _ := cmd.Flags().GetString("format")

		slots := storage.NewSlotStore(db.GetDB())
		store, err := loadCollections(context.Background(), slots, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := collections.Export(os.Stdout, args[0], store.List(), format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// loadCollections reads a workspace's slot without committing anything back
func loadCollections(ctx context.Context, slots storage.Slots, workspaceID string) (*collections.Store, error) {
	value, found, err := slots.Get(ctx, storage.CollectionsKey(workspaceID))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("no saved collections for workspace %s", workspaceID)
	}
	return collections.Load([]byte(value)), nil
}

func init() {
	collectionsExportCmd.Flags().String("format", collections.FormatYAML, "Output format (yaml, json)")
	collectionsCmd.AddCommand(collectionsListCmd)
	collectionsCmd.AddCommand(collectionsExportCmd)
	rootCmd.AddCommand(collectionsCmd)
}
