package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/killenemies/obj"
)

// keyboardInput samples the held state of every key the game reads. Edge
// detection happens in the session, which remembers the previous tick.
func keyboardInput() obj.Input {
	return obj.Input{
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:        ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Shoot:       ebiten.IsKeyPressed(ebiten.KeySpace),
		Confirm:     ebiten.IsKeyPressed(ebiten.KeyEnter) || ebiten.IsKeyPressed(ebiten.KeyNumpadEnter),
		ToggleMusic: ebiten.IsKeyPressed(ebiten.KeyM),
		Quit:        ebiten.IsKeyPressed(ebiten.KeyEscape),
		Return:      ebiten.IsKeyPressed(ebiten.KeyV),
	}
}
