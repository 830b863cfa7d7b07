package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inamate/wireframe/backend-go/internal/serializer"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] file",
		Short: "Validate a document and re-encode it",
		Long:  `Convert rebuilds the document against the registered shapes and writes it in the requested format`,
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	cmd.Flags().String("to", "json", "output format (json|msgpack)")
	cmd.Flags().StringP("out", "o", "", "output file (default stdout)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	format, err := serializer.ParseFormat(to)
	if err != nil {
		return err
	}

	registry, err := renderers(cmd)
	if err != nil {
		return err
	}

	doc, _, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	s := serializer.New(registry)
	set, err := s.DeserializeSet(doc)
	if err != nil {
		return err
	}
	out, err := s.SerializeSet(set)
	if err != nil {
		return err
	}

	return writeDocument(cmd, out, format)
}
