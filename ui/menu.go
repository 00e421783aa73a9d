package ui

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var controls = []string{
	"Move: Arrow Keys Left/Right",
	"Jump: Up Arrow",
	"Shoot: Spacebar",
}

// Menu is the title screen: the game title, the three options and the
// controls list, centred over whatever was drawn underneath.
type Menu struct {
	ui         *ebitenui.UI
	musicLabel *widget.Text
	musicOn    bool
}

// NewMenu builds the menu widgets. Text uses the built-in basic font so no
// font assets are needed.
func NewMenu(title string, musicOn bool, width, height int) *Menu {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	centered := widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}))
	label := func(s string, c color.Color) *widget.Text {
		return widget.NewText(widget.TextOpts.Text(s, &face, c), centered)
	}

	m := &Menu{musicOn: musicOn}
	m.musicLabel = label(musicText(musicOn), colornames.Yellow)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 40, Right: 40}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(label(title, colornames.Red))
	panel.AddChild(label("START GAME - Press Enter", colornames.White))
	panel.AddChild(m.musicLabel)
	panel.AddChild(label("EXIT GAME - Press Esc", colornames.Red))
	panel.AddChild(label("CONTROLS:", colornames.Cyan))
	for _, c := range controls {
		panel.AddChild(label(c, colornames.White))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	m.ui = &ebitenui.UI{Container: root}
	return m
}

// Update refreshes the music label and runs the widget tree.
func (m *Menu) Update(musicOn bool) {
	if m == nil {
		return
	}
	if musicOn != m.musicOn {
		m.musicOn = musicOn
		m.musicLabel.Label = musicText(musicOn)
	}
	m.ui.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	if m == nil {
		return
	}
	m.ui.Draw(screen)
}

func musicText(on bool) string {
	state := "OFF"
	if on {
		state = "ON"
	}
	return fmt.Sprintf("MUSIC: %s - Press M", state)
}
