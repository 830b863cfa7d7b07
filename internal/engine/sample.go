package engine

import (
	"github.com/inamate/wireframe/backend-go/internal/model"
	"github.com/inamate/wireframe/backend-go/internal/renderer"
	"github.com/inamate/wireframe/backend-go/internal/serializer"
	"github.com/inamate/wireframe/backend-go/internal/typeid"
)

// SampleDocument returns a small login form: a panel, two grouped
// checkboxes and a button.
func SampleDocument() *serializer.Document {
	panelID := typeid.NewShapeID()
	rememberID := typeid.NewShapeID()
	newsletterID := typeid.NewShapeID()
	buttonID := typeid.NewShapeID()
	optionsID := typeid.NewGroupID()

	return &serializer.Document{
		Visuals: []serializer.Visual{
			{
				ID:        panelID,
				Renderer:  renderer.RectangleRenderer,
				Transform: serializer.Transform{X: 200, Y: 150, W: 360, H: 260},
				Appearance: model.Appearance{
					renderer.AppearanceBackgroundColor: "#f5f5f5",
				},
			},
			{
				ID:        rememberID,
				Renderer:  renderer.CheckboxRenderer,
				Transform: serializer.Transform{X: 110, Y: 110, W: 104, H: 36},
				Appearance: model.Appearance{
					renderer.AppearanceText: "Remember me",
				},
			},
			{
				ID:        newsletterID,
				Renderer:  renderer.CheckboxRenderer,
				Transform: serializer.Transform{X: 110, Y: 150, W: 104, H: 36},
				Appearance: model.Appearance{
					renderer.AppearanceText:  "Newsletter",
					renderer.AppearanceState: renderer.StateUnchecked,
				},
			},
			{
				ID:        buttonID,
				Renderer:  renderer.ButtonRenderer,
				Transform: serializer.Transform{X: 300, Y: 240, W: 100, H: 30},
				Appearance: model.Appearance{
					renderer.AppearanceText: "Sign in",
				},
			},
		},
		Groups: []serializer.Group{
			{ID: optionsID, ChildIDs: []string{rememberID, newsletterID}},
		},
	}
}
