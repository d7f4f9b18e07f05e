// internal/ui/shapes.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var whiteSubImage *ebiten.Image

// fillPolygon заливает выпуклый многоугольник цветом c
func fillPolygon(screen *ebiten.Image, c color.Color, points ...[2]float32) {
	if len(points) < 3 {
		return
	}
	if whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// strokePolygon обводит замкнутый многоугольник
func strokePolygon(screen *ebiten.Image, width float32, c color.Color, points ...[2]float32) {
	for i := range points {
		a, b := points[i], points[(i+1)%len(points)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], width, c, true)
	}
}
