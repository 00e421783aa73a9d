package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/killenemies/common"
)

const (
	bannerScale    = 6
	bannerDuration = 0.8 // seconds
	fadeDuration   = 1.2 // seconds
)

var victoryBackground = color.RGBA{R: 20, G: 60, B: 20, A: 255}

// Victory is the win screen. The banner bounces in and the hint lines fade
// in underneath it.
type Victory struct {
	face   ebtext.Face
	width  float64
	height float64

	banner *gween.Tween
	fade   *gween.Tween
	scale  float32
	alpha  float32
}

func NewVictory(width, height int) *Victory {
	v := &Victory{
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		width:  float64(width),
		height: float64(height),
	}
	v.Reset()
	return v
}

// Reset restarts the entrance animation.
func (v *Victory) Reset() {
	v.banner = gween.New(0.2, 1, bannerDuration, ease.OutBounce)
	v.fade = gween.New(0, 1, fadeDuration, ease.InQuad)
	v.scale = 0.2
	v.alpha = 0
}

// Update advances the animation by dt seconds.
func (v *Victory) Update(dt float32) {
	if v == nil {
		return
	}
	v.scale, _ = v.banner.Update(dt)
	t, _ := v.fade.Update(dt)
	v.alpha = common.Clamp(t, 0, 1)
}

func (v *Victory) Draw(screen *ebiten.Image) {
	if v == nil {
		return
	}
	screen.Fill(victoryBackground)

	v.drawLine(screen, "YOU WIN!", v.height/3, float64(bannerScale*v.scale), colornames.Lime, 1)
	v.drawLine(screen, "All enemies defeated!", v.height/2, 3, colornames.White, v.alpha)
	v.drawLine(screen, "Press v to Return to Menu", v.height/2+100, 2, colornames.Yellow, v.alpha)
}

func (v *Victory) drawLine(screen *ebiten.Image, s string, y, scale float64, c color.Color, alpha float32) {
	op := &ebtext.DrawOptions{}
	op.PrimaryAlign = ebtext.AlignCenter
	op.SecondaryAlign = ebtext.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(v.width/2, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	ebtext.Draw(screen, s, v.face, op)
}
