package engine

import (
	"encoding/json"

	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/interaction"
	"github.com/inamate/wireframe/backend-go/internal/model"
)

const (
	OpShape     = "shape"
	OpSelection = "selection"
	OpDragRect  = "dragRect"
)

// DrawCommand is one drawing operation for the rendering backend.
// The frontend receives a list of these in painter's order.
type DrawCommand struct {
	Op          string           `json:"op"`                    // "shape", "selection" or "dragRect"
	ObjectID    string           `json:"objectId,omitempty"`    // For hit correlation
	Renderer    string           `json:"renderer,omitempty"`    // Shape plugin key
	Transform   []float64        `json:"transform"`             // [a, b, c, d, e, f] affine matrix from the unit box
	X           float64          `json:"x"`                     // Unrotated top-left
	Y           float64          `json:"y"`                     //
	Width       float64          `json:"width"`                 //
	Height      float64          `json:"height"`                //
	Rotation    float64          `json:"rotation,omitempty"`    // Degrees around the center
	Appearance  model.Appearance `json:"appearance,omitempty"`  // Shape properties
	Fill        string           `json:"fill,omitempty"`        // Fill color
	Stroke      string           `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64          `json:"strokeWidth,omitempty"` // Stroke width
	Opacity     float64          `json:"opacity,omitempty"`     // Global alpha
}

func placed(op, id string, t geom.Transform) DrawCommand {
	r := t.Rect()
	return DrawCommand{
		Op:        op,
		ObjectID:  id,
		Transform: geom.FromTransform(t).ToSlice(),
		X:         r.Left(),
		Y:         r.Top(),
		Width:     r.Width(),
		Height:    r.Height(),
		Rotation:  t.Rotation.Degrees(),
	}
}

// CompileDrawCommands emits every shape of d back to front.
func CompileDrawCommands(d *model.Diagram) []DrawCommand {
	var commands []DrawCommand
	for _, item := range paintOrder(d) {
		shape, ok := item.(*model.Shape)
		if !ok {
			continue
		}
		cmd := placed(OpShape, shape.ID(), shape.Transform())
		cmd.Renderer = shape.Renderer()
		cmd.Appearance = shape.Appearance()
		commands = append(commands, cmd)
	}
	return commands
}

func overlayCommand(o *overlayRect) DrawCommand {
	switch o.kind {
	case interaction.OverlayDragRect:
		cmd := placed(OpDragRect, "", o.transform)
		cmd.Fill = interaction.SelectionFillColor
		cmd.Stroke = interaction.SelectionStrokeColor
		cmd.StrokeWidth = 1
		cmd.Opacity = interaction.DragRectOpacity
		return cmd
	default:
		cmd := placed(OpSelection, "", o.transform)
		cmd.Stroke = interaction.SelectionStrokeColor
		cmd.StrokeWidth = 1
		return cmd
	}
}

// Render compiles the diagram followed by the visible adorner overlays.
func (e *Editor) Render() []DrawCommand {
	e.adorner.MarkItems()
	commands := CompileDrawCommands(e.Diagram())
	for _, o := range e.overlays.visible() {
		commands = append(commands, overlayCommand(o))
	}
	return commands
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		commands = []DrawCommand{}
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
