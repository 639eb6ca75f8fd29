package main

import (
	"fmt"

	"github.com/pflow-xyz/go-lindenmayer/preset"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage presets: built-in curves and the local preset store",
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and stored presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Built-in:")
		for _, slug := range preset.List() {
			p := preset.Registry[slug]
			fmt.Fprintf(out, "  %-24s %s (%d iterations, %.0f°)\n",
				slug, p.Name, p.Iterations, p.Params.TurningAngle)
		}

		dbPath, _ := cmd.Flags().GetString("db")
		store, err := preset.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		stored, err := store.List()
		if err != nil {
			return err
		}
		if len(stored) > 0 {
			fmt.Fprintln(out, "Stored:")
			for _, p := range stored {
				fmt.Fprintf(out, "  %-36s %s\n", p.ID, p.Name)
			}
		}
		return nil
	},
}

var presetsShowCmd = &cobra.Command{
	Use:   "show <slug-or-id>",
	Short: "Show a preset definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupPreset(cmd, args[0])
		if err != nil {
			return err
		}
		return preset.EncodeYAML(cmd.OutOrStdout(), p)
	},
}

var presetsExportCmd = &cobra.Command{
	Use:   "export <slug-or-id> <file>",
	Short: "Export a preset to a YAML or JSON file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupPreset(cmd, args[0])
		if err != nil {
			return err
		}
		if err := preset.SaveFile(args[1], p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %q to %s\n", p.Name, args[1])
		return nil
	},
}

var presetsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a preset file into the local store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := preset.LoadFile(args[0])
		if err != nil {
			return err
		}

		dbPath, _ := cmd.Flags().GetString("db")
		store, err := preset.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		saved, err := store.Save(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %q as %s\n", saved.Name, saved.ID)
		return nil
	},
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		store, err := preset.OpenStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

// lookupPreset resolves a built-in slug first, then the store.
func lookupPreset(cmd *cobra.Command, key string) (preset.Preset, error) {
	if p, err := preset.Get(key); err == nil {
		return p, nil
	}

	dbPath, _ := cmd.Flags().GetString("db")
	store, err := preset.OpenStore(dbPath)
	if err != nil {
		return preset.Preset{}, err
	}
	defer store.Close()
	return store.Load(key)
}

func init() {
	presetsCmd.PersistentFlags().String("db", "presets.db", "Preset store database path")
	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsShowCmd)
	presetsCmd.AddCommand(presetsExportCmd)
	presetsCmd.AddCommand(presetsImportCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)
	rootCmd.AddCommand(presetsCmd)
}
