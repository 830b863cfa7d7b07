package main

import (
	"github.com/spf13/cobra"

	"github.com/inamate/wireframe/backend-go/internal/serializer"
)

func newRemapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remap [flags] file",
		Short: "Replace every id in a document",
		Long:  `Remap gives every visual and group a fresh id and rewrites group child references to match`,
		Args:  cobra.ExactArgs(1),
		RunE:  runRemap,
	}
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	return cmd
}

func runRemap(cmd *cobra.Command, args []string) error {
	doc, format, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	remapped, err := serializer.GenerateNewIDs(doc)
	if err != nil {
		return err
	}

	return writeDocument(cmd, remapped, format)
}
