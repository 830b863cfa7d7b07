package renderer

import "github.com/inamate/wireframe/backend-go/internal/model"

const (
	CheckboxRenderer  = "Checkbox"
	ButtonRenderer    = "Button"
	RectangleRenderer = "Rectangle"
)

// Appearance keys shared by the built-in shapes.
const (
	AppearanceForegroundColor = "FOREGROUND_COLOR"
	AppearanceBackgroundColor = "BACKGROUND_COLOR"
	AppearanceStrokeColor     = "STROKE_COLOR"
	AppearanceStrokeThickness = "STROKE_THICKNESS"
	AppearanceText            = "TEXT"
	AppearanceTextAlignment   = "TEXT_ALIGNMENT"
	AppearanceFontSize        = "FONT_SIZE"
	AppearanceState           = "STATE"
)

const (
	StateChecked     = "Checked"
	StateUnchecked   = "Unchecked"
	StateInterminate = "Interminate"
)

var (
	foregroundColor = model.Configurable{Name: AppearanceForegroundColor, Label: "Foreground Color", Kind: model.KindColor}
	backgroundColor = model.Configurable{Name: AppearanceBackgroundColor, Label: "Background Color", Kind: model.KindColor}
	strokeColor     = model.Configurable{Name: AppearanceStrokeColor, Label: "Stroke Color", Kind: model.KindColor}
	strokeThickness = model.Configurable{Name: AppearanceStrokeThickness, Label: "Stroke Thickness", Kind: model.KindSlider, Min: 0, Max: 20}
	fontSize        = model.Configurable{Name: AppearanceFontSize, Label: "Font Size", Kind: model.KindSlider, Min: 6, Max: 100}
	text            = model.Configurable{Name: AppearanceText, Label: "Text", Kind: model.KindText}
)

func Checkbox() *Template {
	return &Template{
		Key:    CheckboxRenderer,
		Width:  104,
		Height: 36,
		Appearance: model.Appearance{
			AppearanceForegroundColor: "#000000",
			AppearanceBackgroundColor: "#ffffff",
			AppearanceStrokeColor:     "#333333",
			AppearanceStrokeThickness: 1.0,
			AppearanceText:            "Checkbox",
			AppearanceTextAlignment:   "left",
			AppearanceFontSize:        12.0,
			AppearanceState:           StateChecked,
		},
		Configurables: []model.Configurable{
			{
				Name:    AppearanceState,
				Label:   "State",
				Kind:    model.KindSelection,
				Options: []string{StateChecked, StateUnchecked, StateInterminate},
			},
		},
	}
}

func Button() *Template {
	return &Template{
		Key:    ButtonRenderer,
		Width:  100,
		Height: 30,
		Appearance: model.Appearance{
			AppearanceForegroundColor: "#000000",
			AppearanceBackgroundColor: "#eeeeee",
			AppearanceStrokeColor:     "#333333",
			AppearanceStrokeThickness: 1.0,
			AppearanceText:            "Button",
			AppearanceTextAlignment:   "center",
			AppearanceFontSize:        14.0,
		},
		Configurables: []model.Configurable{foregroundColor, backgroundColor, strokeColor, strokeThickness, fontSize, text},
	}
}

func Rectangle() *Template {
	return &Template{
		Key:    RectangleRenderer,
		Width:  100,
		Height: 60,
		Appearance: model.Appearance{
			AppearanceBackgroundColor: "#ffffff",
			AppearanceStrokeColor:     "#333333",
			AppearanceStrokeThickness: 1.0,
		},
		Configurables: []model.Configurable{backgroundColor, strokeColor, strokeThickness},
	}
}

func Builtins() []Plugin {
	return []Plugin{Checkbox(), Button(), Rectangle()}
}
