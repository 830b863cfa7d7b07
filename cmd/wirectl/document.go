package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
)

// guessFormat picks a format from a file extension. Standard streams
// default to json.
func guessFormat(path string) serializer.Format {
	switch filepath.Ext(path) {
	case ".msgpack", ".mpk":
		return serializer.FormatMsgpack
	default:
		return serializer.FormatJSON
	}
}

// readDocument decodes path ("-" for stdin) and reports the format it was
// read in.
func readDocument(cmd *cobra.Command, path string) (*serializer.Document, serializer.Format, error) {
	from, err := cmd.Flags().GetString("from")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get from flag: %w", err)
	}

	format := guessFormat(path)
	if from != "" {
		if format, err = serializer.ParseFormat(from); err != nil {
			return nil, "", err
		}
	}

	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		r = f
	}

	doc, err := serializer.Decode(r, format)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return doc, format, nil
}

func writeDocument(cmd *cobra.Command, doc *serializer.Document, format serializer.Format) error {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}

	if out == "" || out == "-" {
		return serializer.Encode(cmd.OutOrStdout(), doc, format)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := serializer.Encode(f, doc, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderers returns the built-in registry extended by the --catalog file.
func renderers(cmd *cobra.Command) (*renderer.Service, error) {
	s := renderer.NewDefaultService()

	path, err := cmd.Flags().GetString("catalog")
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog flag: %w", err)
	}
	if path == "" {
		return s, nil
	}

	templates, err := renderer.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	renderer.Register(s, templates)
	return s, nil
}
