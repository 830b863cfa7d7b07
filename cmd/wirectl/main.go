package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wirectl",
		Short:        "Offline tools for wireframe documents",
		Long:         `wirectl remaps, converts and inspects wireframe documents and issues editor tokens`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRemapCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newTokenCmd())

	// Global flags
	rootCmd.PersistentFlags().String("catalog", "", "TOML shape catalog to register next to the built-in shapes")
	rootCmd.PersistentFlags().String("from", "", "input format (json|msgpack), guessed from the file extension if empty")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
