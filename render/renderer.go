package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/killenemies/assets"
	"github.com/milk9111/killenemies/obj"
	"github.com/milk9111/killenemies/system"
)

// Renderer draws actors onto the current target image. Sprites are loaded
// lazily by id and fall back to palette-coloured blocks.
type Renderer struct {
	target  *ebiten.Image
	palette map[string]color.Color
	sprites map[string]*ebiten.Image

	// Debug outlines every actor's bounding box.
	Debug bool
}

var _ system.Drawer = (*Renderer)(nil)

func NewRenderer(palette map[string]color.Color) *Renderer {
	return &Renderer{
		palette: palette,
		sprites: make(map[string]*ebiten.Image),
	}
}

// SetPalette replaces the placeholder colours and drops cached sprites.
func (r *Renderer) SetPalette(palette map[string]color.Color) {
	if r == nil {
		return
	}
	r.palette = palette
	r.sprites = make(map[string]*ebiten.Image)
}

// Begin sets the image subsequent draw calls paint on.
func (r *Renderer) Begin(target *ebiten.Image) {
	r.target = target
}

// DrawBackground fills the target with the background sprite.
func (r *Renderer) DrawBackground(id string) {
	if r == nil || r.target == nil {
		return
	}
	b := r.target.Bounds()
	r.drawSprite(id, 0, 0, float64(b.Dx()), float64(b.Dy()))
}

// DrawActor paints a's current sprite stretched over its bounds.
func (r *Renderer) DrawActor(a obj.Actor) {
	if r == nil || r.target == nil || a == nil {
		return
	}
	rect := a.Bounds()
	r.drawSprite(a.Sprite(), float64(rect.X), float64(rect.Y), float64(rect.Width), float64(rect.Height))
	if r.Debug {
		vector.StrokeRect(r.target, rect.X, rect.Y, rect.Width, rect.Height, 1, colornames.Lime, false)
	}
}

func (r *Renderer) drawSprite(id string, x, y, w, h float64) {
	img := r.sprite(id, w, h)
	sw, sh := img.Bounds().Dx(), img.Bounds().Dy()
	if sw == 0 || sh == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(sw), h/float64(sh))
	op.GeoM.Translate(math.Round(x), math.Round(y))
	op.Filter = ebiten.FilterNearest
	r.target.DrawImage(img, op)
}

func (r *Renderer) sprite(id string, w, h float64) *ebiten.Image {
	if img, ok := r.sprites[id]; ok {
		return img
	}
	fallback, ok := r.palette[id]
	if !ok {
		fallback = colornames.Magenta
	}
	img := assets.LoadSprite(id, int(math.Ceil(w)), int(math.Ceil(h)), fallback)
	r.sprites[id] = img
	return img
}
