package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	cfg "github.com/tidegap/floatplane/config"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnFly      func()
	OnSettings func()
	OnExit     func()

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI creates the main menu with ebitenui
func NewMenuUI(onFly, onSettings, onExit func()) *MenuUI {
	mui := &MenuUI{
		OnFly:      onFly,
		OnSettings: onSettings,
		OnExit:     onExit,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized to fit the 640x360 screen
	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   30,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Content container with vertical layout, centered
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	subtitleLabel := widget.NewLabel(
		widget.LabelOpts.Text("seaplane free flight", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{170, 200, 230, 255},
		}),
	)
	contentContainer.AddChild(subtitleLabel)

	contentContainer.AddChild(mui.menuButton("FLY", func() {
		if mui.OnFly != nil {
			mui.OnFly()
		}
	}))
	contentContainer.AddChild(mui.menuButton("SETTINGS", func() {
		if mui.OnSettings != nil {
			mui.OnSettings()
		}
	}))
	contentContainer.AddChild(mui.menuButton("EXIT", func() {
		if mui.OnExit != nil {
			mui.OnExit()
		}
	}))

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("W/S pitch   A/D roll   Q/E yaw   Shift/Ctrl throttle", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{140, 165, 195, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 30),
		),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{28, 62, 96, 255})
	hover := image.NewNineSliceColor(color.RGBA{42, 84, 124, 255})
	pressed := image.NewNineSliceColor(color.RGBA{20, 48, 76, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// Update calls the UI's Update method
func (mui *MenuUI) Update() {
	mui.UI.Update()
}
