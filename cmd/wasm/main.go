//go:build js && wasm

package main

import (
	"encoding/json"
	"strings"
	"syscall/js"

	"github.com/inamate/wireframe/backend-go/internal/engine"
	"github.com/inamate/wireframe/backend-go/internal/geom"
	"github.com/inamate/wireframe/backend-go/internal/interaction"
	"github.com/inamate/wireframe/backend-go/internal/model"
	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
)

var (
	renderers = renderer.NewDefaultService()
	editor    *engine.Editor
)

func main() {
	editor = engine.NewEditor(renderers, engine.Config{}, nil)

	// Create the editor API object
	wireframeEditor := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	wireframeEditor.Set("loadDocument", js.FuncOf(loadDocument))
	wireframeEditor.Set("loadSampleDocument", js.FuncOf(loadSampleDocument))
	wireframeEditor.Set("mouseDown", js.FuncOf(pointer(editor.MouseDown)))
	wireframeEditor.Set("mouseDrag", js.FuncOf(pointer(editor.MouseDrag)))
	wireframeEditor.Set("mouseUp", js.FuncOf(pointer(editor.MouseUp)))
	wireframeEditor.Set("addShape", js.FuncOf(addShape))
	wireframeEditor.Set("setSelection", js.FuncOf(setSelection))
	wireframeEditor.Set("group", js.FuncOf(group))
	wireframeEditor.Set("ungroup", js.FuncOf(ungroup))
	wireframeEditor.Set("deleteSelection", js.FuncOf(deleteSelection))
	wireframeEditor.Set("reorder", js.FuncOf(reorder))
	wireframeEditor.Set("moveSelection", js.FuncOf(moveSelection))
	wireframeEditor.Set("setAppearance", js.FuncOf(setAppearance))
	wireframeEditor.Set("copy", js.FuncOf(copySelection))
	wireframeEditor.Set("cut", js.FuncOf(cutSelection))
	wireframeEditor.Set("paste", js.FuncOf(paste))
	wireframeEditor.Set("duplicate", js.FuncOf(duplicate))

	// --- Queries (frontend ← backend) ---
	wireframeEditor.Set("render", js.FuncOf(render))
	wireframeEditor.Set("hitTest", js.FuncOf(hitTest))
	wireframeEditor.Set("getSelection", js.FuncOf(getSelection))
	wireframeEditor.Set("getSelectionBounds", js.FuncOf(getSelectionBounds))
	wireframeEditor.Set("getDocument", js.FuncOf(getDocument))
	wireframeEditor.Set("getRenderers", js.FuncOf(getRenderers))
	wireframeEditor.Set("isDragging", js.FuncOf(isDragging))

	// Register on global scope
	js.Global().Set("wireframeEditor", wireframeEditor)

	// Signal that WASM is ready
	js.Global().Set("wireframeWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func result(err error) interface{} {
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func missing(what string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": "missing " + what})
}

func toJSON(v interface{}) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return js.ValueOf("")
	}
	return js.ValueOf(string(data))
}

func decodeDocument(arg js.Value) (*serializer.Document, error) {
	return serializer.Decode(strings.NewReader(arg.String()), serializer.FormatJSON)
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("document JSON")
	}
	doc, err := decodeDocument(args[0])
	if err != nil {
		return result(err)
	}
	return result(editor.Load(doc))
}

func loadSampleDocument(this js.Value, args []js.Value) interface{} {
	return result(editor.LoadSample())
}

// pointer adapts a pointer handler to mouseX(x, y, itemId, shift, ctrl).
// itemId may be empty, in which case the editor hit tests the position.
func pointer(fn func(engine.PointerEvent) error) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return missing("position")
		}
		ev := engine.PointerEvent{Position: geom.V(args[0].Float(), args[1].Float())}
		if len(args) > 2 && args[2].Type() == js.TypeString {
			ev.ItemID = args[2].String()
		}
		if len(args) > 3 && args[3].Truthy() {
			ev.Modifiers |= interaction.ModShift
		}
		if len(args) > 4 && args[4].Truthy() {
			ev.Modifiers |= interaction.ModCtrl
		}
		return result(fn(ev))
	}
}

func addShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return missing("renderer and position")
	}
	id, err := editor.AddShape(args[0].String(), geom.V(args[1].Float(), args[2].Float()))
	if err != nil {
		return result(err)
	}
	return js.ValueOf(map[string]interface{}{"ok": true, "id": id})
}

func setSelection(this js.Value, args []js.Value) interface{} {
	var ids []string
	if len(args) > 0 && args[0].Type() == js.TypeObject {
		arr := args[0]
		length := arr.Length()
		ids = make([]string, length)
		for i := 0; i < length; i++ {
			ids[i] = arr.Index(i).String()
		}
	}
	return result(editor.SelectItems(nil, ids))
}

func group(this js.Value, args []js.Value) interface{} {
	id, err := editor.GroupSelection()
	if err != nil {
		return result(err)
	}
	return js.ValueOf(map[string]interface{}{"ok": true, "id": id})
}

func ungroup(this js.Value, args []js.Value) interface{} {
	return result(editor.UngroupSelection())
}

func deleteSelection(this js.Value, args []js.Value) interface{} {
	return result(editor.RemoveSelection())
}

func reorder(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("mode")
	}
	mode, err := model.ParseReorderMode(args[0].String())
	if err != nil {
		return result(err)
	}
	return result(editor.Reorder(mode))
}

func moveSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("delta")
	}
	return result(editor.MoveSelection(geom.V(args[0].Float(), args[1].Float())))
}

func setAppearance(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return missing("key and value")
	}
	var value interface{}
	switch v := args[1]; v.Type() {
	case js.TypeNumber:
		value = v.Float()
	case js.TypeBoolean:
		value = v.Bool()
	default:
		value = v.String()
	}
	return result(editor.UpdateAppearance(args[0].String(), value))
}

func copySelection(this js.Value, args []js.Value) interface{} {
	doc, err := editor.Copy()
	if err != nil {
		return result(err)
	}
	return toJSON(doc)
}

func cutSelection(this js.Value, args []js.Value) interface{} {
	doc, err := editor.Cut()
	if err != nil {
		return result(err)
	}
	return toJSON(doc)
}

func paste(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return missing("clipboard JSON")
	}
	doc, err := decodeDocument(args[0])
	if err != nil {
		return result(err)
	}
	if _, err := editor.Paste(doc); err != nil {
		return result(err)
	}
	return result(nil)
}

func duplicate(this js.Value, args []js.Value) interface{} {
	_, err := editor.Duplicate()
	return result(err)
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	out, err := engine.DrawCommandsToJSON(editor.Render())
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(out)
}

func hitTest(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	item := editor.HitTest(geom.V(args[0].Float(), args[1].Float()))
	if item == nil {
		return js.ValueOf("")
	}
	return js.ValueOf(item.ID())
}

func getSelection(this js.Value, args []js.Value) interface{} {
	return toJSON(editor.Selection())
}

func getSelectionBounds(this js.Value, args []js.Value) interface{} {
	bounds, ok := editor.SelectionBounds()
	if !ok {
		return js.ValueOf("")
	}
	return toJSON(map[string]float64{
		"x":        bounds.Position.X,
		"y":        bounds.Position.Y,
		"width":    bounds.Size.X,
		"height":   bounds.Size.Y,
		"rotation": bounds.Rotation.Degrees(),
	})
}

func getDocument(this js.Value, args []js.Value) interface{} {
	doc, err := editor.Export()
	if err != nil {
		return js.ValueOf("")
	}
	return toJSON(doc)
}

func getRenderers(this js.Value, args []js.Value) interface{} {
	return toJSON(renderers.Renderers())
}

func isDragging(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(editor.Dragging())
}
