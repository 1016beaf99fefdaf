// Package render draws the scene and lays out the follow label with ebiten.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/ecs/entity"
	"github.com/milk9111/scenelabel/projection"
	"golang.org/x/image/font/gofont/gobold"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var background = color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}

type Renderer struct {
	font *text.GoTextFaceSource
}

func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Renderer{font: src}, nil
}

func (r *Renderer) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: r.font, Size: size}
}

// MeasureLabel writes the rendered size of the label's text into its layout.
func (r *Renderer) MeasureLabel(l *component.Label) {
	if l == nil {
		return
	}
	if l.Text == "" || l.FontSize <= 0 {
		l.Width, l.Height = 0, 0
		return
	}
	l.Width, l.Height = text.Measure(l.Text, r.face(l.FontSize), l.FontSize)
}

// Draw renders the lit cube and then the label on top.
func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World, s entity.Scene, size projection.Size) {
	screen.Fill(background)
	r.drawCube(screen, w, s, size)

	label, ok := ecs.Get(w, s.Label, component.LabelComponent.Kind())
	if !ok {
		return
	}
	r.MeasureLabel(label)
	r.drawLabel(screen, label, size)
}

func (r *Renderer) drawCube(screen *ebiten.Image, w *ecs.World, s entity.Scene, size projection.Size) {
	mesh, ok := ecs.Get(w, s.Tracked, component.MeshComponent.Kind())
	if !ok {
		return
	}
	model, ok := ecs.Get(w, s.Tracked, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, s.Camera, component.Camera3DComponent.Kind())
	if !ok {
		return
	}
	camT, ok := ecs.Get(w, s.Camera, component.TransformComponent.Kind())
	if !ok {
		return
	}

	light := Light{PointLight: component.PointLight{Color: color.RGBA{255, 255, 255, 255}, Intensity: 1, Ambient: 0.25}}
	if pl, ok := ecs.Get(w, s.Light, component.PointLightComponent.Kind()); ok {
		light.PointLight = *pl
	}
	if lt, ok := ecs.Get(w, s.Light, component.TransformComponent.Kind()); ok {
		light.Position = lt.Translation
	}

	for _, f := range CubeFaces(*mesh, *model, *cam, *camT, light, size) {
		drawQuad(screen, f)
	}
}

func drawQuad(screen *ebiten.Image, f Face) {
	cr := float32(f.Color.R) / 255
	cg := float32(f.Color.G) / 255
	cb := float32(f.Color.B) / 255
	ca := float32(f.Color.A) / 255

	vs := make([]ebiten.Vertex, 4)
	for i, p := range f.Points {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p.X()),
			DstY:   float32(p.Y()),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, whiteSubImage, op)
}

// drawLabel converts the bottom-left based layout to ebiten's top-left origin.
func (r *Renderer) drawLabel(screen *ebiten.Image, l *component.Label, size projection.Size) {
	if !l.Visible || l.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.Left, size.Height-l.Bottom-l.Height)
	op.ColorScale.ScaleWithColor(l.Color)
	op.LineSpacing = l.FontSize
	text.Draw(screen, l.Text, r.face(l.FontSize), op)
}
