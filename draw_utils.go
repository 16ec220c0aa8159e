package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/marisvali/neonhacker/world"
	"golang.org/x/image/font"
	"image"
	"image/color"
)

// DrawSprite draws img on screen.
// x and y are in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func DrawSprite(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64, targetWidth float64, targetHeight float64) {
	op := &ebiten.DrawImageOptions{}

	// Resize image to fit the target size we want to draw.
	// This kind of scaling is very useful during development when the final
	// sizes are not decided, and thus it's impossible to have final sprites.
	// For an actual release, scaling should be avoided.
	imgSize := img.Bounds().Size()
	newDx := targetWidth / float64(imgSize.X)
	newDy := targetHeight / float64(imgSize.Y)
	op.GeoM.Scale(newDx, newDy)
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x, float64(screen.Bounds().Min.Y)+y)
	screen.DrawImage(img, op)
}

// DrawEntity draws img stretched over r. Sprites are optional: if img is nil,
// a rectangle of color c stands in for it.
func DrawEntity(screen *ebiten.Image, img *ebiten.Image, r world.Rectangle,
	c color.NRGBA) {
	if img == nil {
		DrawFilledRect(screen, r, WithAlpha(c, 0.4))
		DrawRect(screen, r, 2, c)
		return
	}
	DrawSprite(screen, img, float64(r.Min.X), float64(r.Min.Y),
		float64(r.Width()), float64(r.Height()))
}

// DrawFilledRect and DrawRect use the same coordinate system as DrawSprite.
func DrawFilledRect(screen *ebiten.Image, r world.Rectangle, c color.Color) {
	o := screen.Bounds().Min
	vector.DrawFilledRect(screen,
		float32(int64(o.X)+r.Min.X), float32(int64(o.Y)+r.Min.Y),
		float32(r.Width()), float32(r.Height()), c, false)
}

func DrawRect(screen *ebiten.Image, r world.Rectangle, strokeWidth float32,
	c color.Color) {
	o := screen.Bounds().Min
	// The stroke is centered on the edge, move it inside so that neighboring
	// tiles don't draw over each other.
	half := strokeWidth / 2
	vector.StrokeRect(screen,
		float32(int64(o.X)+r.Min.X)+half, float32(int64(o.Y)+r.Min.Y)+half,
		float32(r.Width())-strokeWidth, float32(r.Height())-strokeWidth,
		strokeWidth, c, false)
}

func WithAlpha(c color.NRGBA, alpha float32) color.NRGBA {
	c.A = uint8(max(0, min(1, alpha)) * 255)
	return c
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r world.Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in a sub-image, so
	// img2 = img1.SubImage(pt1, pt2) still uses img2.At(pt1) for the pixel
	// img1.At(pt1). I prefer local coordinates, so I translate here.
	minPt := screen.Bounds().Min
	ir := image.Rect(int(r.Min.X), int(r.Min.Y), int(r.Max.X), int(r.Max.Y))
	ir = ir.Add(minPt)
	return screen.SubImage(ir).(*ebiten.Image)
}

func (g *Gui) DrawText(screen *ebiten.Image, message string, centerX bool,
	centerY bool, color color.Color) {
	g.DrawTextWithFace(screen, g.defaultFont, message, centerX, centerY, color)
}

func (g *Gui) DrawTextWithFace(screen *ebiten.Image, face font.Face,
	message string, centerX bool, centerY bool, color color.Color) {
	// Remember that text there is an origin point for the text.
	// That origin point is kind of the lower-left corner of the bounds of the
	// text. Kind of. Read the BoundString docs to understand.
	// This means that if you do text.Draw at (x, y), most of the text will
	// appear above y, and a little bit under y. If you want all the pixels in
	// your text to be above y, you should do text.Draw at
	// (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	} else {
		offsetX = 0
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	} else {
		offsetY = 0
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, face, textX, textY, color)
}
