package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inamate/wireframe/backend-go/internal/model"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
	"github.com/inamate/wireframe/backend-go/internal/typeid"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [flags] file",
		Short: "Print the item tree of a document",
		Long:  `Inspect validates a document and prints its groups and shapes in paint order`,
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	registry, err := renderers(cmd)
	if err != nil {
		return err
	}

	doc, _, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	set, err := serializer.New(registry).DeserializeSet(doc)
	if err != nil {
		return err
	}
	d, err := model.Empty(typeid.NewDiagramID()).AddItemSet(set)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d visuals, %d groups\n", len(set.AllVisuals()), len(set.AllGroups()))
	for _, id := range d.RootIDs() {
		printItem(w, d, id, 0)
	}
	return nil
}

func printItem(w io.Writer, d *model.Diagram, id string, depth int) {
	item, ok := d.Item(id)
	if !ok {
		return
	}
	indent := strings.Repeat("  ", depth)

	switch it := item.(type) {
	case *model.Shape:
		t := it.Transform()
		fmt.Fprintf(w, "%s%s %s at (%g, %g) size %gx%g", indent, it.ID(), it.Renderer(), t.Position.X, t.Position.Y, t.Size.X, t.Size.Y)
		if !t.Rotation.IsZero() {
			fmt.Fprintf(w, " rotated %g", t.Rotation.Degrees())
		}
		fmt.Fprintln(w)
	case *model.Group:
		fmt.Fprintf(w, "%s%s group (%d items)\n", indent, it.ID(), it.NumChildren())
		for _, child := range it.ChildIDs() {
			printItem(w, d, child, depth+1)
		}
	}
}
