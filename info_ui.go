package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/mischieflink/common"
	"golang.org/x/image/font/basicfont"
)

// NewInfoUI builds the side panel listing every exported shape with its
// triangle count, collider kind and area, plus the shapes that failed.
func NewInfoUI(g *Game) *ebitenui.UI {
	pal := g.level.Config.Palette

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	rowData := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionStart})

	label := func(s string, c color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text(s, &face, c),
			widget.TextOpts.WidgetOpts(rowData),
		)
	}
	button := func(s string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(s, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(rowData),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.ScreenWidth/4, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for _, line := range infoLines(g) {
		c := color.Color(pal.Text)
		if line.failed {
			c = pal.Bad
		}
		panel.AddChild(label(line.text, c))
	}
	panel.AddChild(button("Reload", func() {
		if err := g.reload(); err != nil {
			log.Printf("InfoUI: reload failed: %v", err)
		}
	}))
	panel.AddChild(button("Clear balls", g.clearBalls))

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

type infoLine struct {
	text   string
	failed bool
}

func infoLines(g *Game) []infoLine {
	lvl := g.level
	lines := []infoLine{
		{text: fmt.Sprintf("%s (%s)", lvl.Config.Name, g.configName)},
		{text: fmt.Sprintf("%d shapes, %d triangles", len(lvl.Pieces), lvl.Triangles())},
	}
	for _, p := range lvl.Pieces {
		s := p.Shape
		lines = append(lines, infoLine{text: fmt.Sprintf("%-12s %3d tris  %-8s  area %.3f",
			s.Name, s.Triangles, s.Collider.Kind, s.Area())})
	}
	for _, f := range lvl.Failures {
		lines = append(lines, infoLine{text: fmt.Sprintf("%s: %v", f.Name, f.Err), failed: true})
	}
	return lines
}
