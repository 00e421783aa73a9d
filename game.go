package main

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/killenemies/prefabs"
	"github.com/milk9111/killenemies/render"
	"github.com/milk9111/killenemies/system"
	"github.com/milk9111/killenemies/ui"
)

type Game struct {
	frames int
	debug  bool

	specs    *prefabs.Specs
	session  *system.Session
	renderer *render.Renderer
	menu     *ui.Menu
	victory  *ui.Victory
	watcher  *prefabs.Watcher

	lastState system.State
}

func NewGame(specs *prefabs.Specs, audio system.Audio, watcher *prefabs.Watcher, debug bool) (*Game, error) {
	session, err := system.NewSession(specs, audio)
	if err != nil {
		return nil, err
	}

	renderer := render.NewRenderer(specs.Sprites())
	renderer.Debug = debug

	w, h := specs.Game.Width, specs.Game.Height
	return &Game{
		debug:     debug,
		specs:     specs,
		session:   session,
		renderer:  renderer,
		menu:      ui.NewMenu(specs.Game.Title, session.MusicEnabled(), w, h),
		victory:   ui.NewVictory(w, h),
		watcher:   watcher,
		lastState: session.State(),
	}, nil
}

func (g *Game) Update() error {
	g.frames++

	g.reloadPrefabs()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		g.renderer.Debug = g.debug
	}

	if err := g.session.Update(keyboardInput()); err != nil {
		if errors.Is(err, system.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}

	state := g.session.State()
	if state != g.lastState {
		if g.debug {
			log.Printf("game: %s -> %s", g.lastState, state)
		}
		if state == system.StateVictory {
			g.victory.Reset()
		}
		g.lastState = state
	}

	switch state {
	case system.StateMenu:
		g.menu.Update(g.session.MusicEnabled())
	case system.StateVictory:
		g.victory.Update(1 / float32(ebiten.TPS()))
	}

	return nil
}

// reloadPrefabs swaps in fresh entity specs when the watcher saw a prefab
// change. A bad edit keeps the previous specs running; game.yaml needs a
// restart.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for _, err := range g.watcher.DrainErrors() {
		log.Printf("game: prefab watcher: %v", err)
	}
	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	if slices.Contains(changed, "game.yaml") {
		log.Printf("game: game.yaml changed, restart to apply")
	}
	specs, err := prefabs.Reload(g.specs)
	if err != nil {
		log.Printf("game: reload %v: %v", changed, err)
		return
	}
	log.Printf("game: reloaded prefabs %v", changed)
	g.specs = specs
	g.session.SetSpecs(specs)
	g.renderer.SetPalette(specs.Sprites())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)
	g.renderer.DrawBackground(g.specs.Game.Background.Image)

	switch g.session.State() {
	case system.StateMenu:
		g.menu.Draw(screen)
	case system.StatePlaying:
		g.session.Draw(g.renderer)
	case system.StateVictory:
		g.victory.Draw(screen)
	}

	if g.debug {
		x, y := g.session.PlayerPosition()
		stats := g.session.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Frames: %d    FPS: %.2f\nState: %s\nPlayer: %.1f, %.1f\nEnemies: %d  Bullets: %d\nShots: %d  Kills: %d  Wins: %d  Losses: %d",
			g.frames, ebiten.ActualFPS(), g.session.State(), x, y,
			g.session.EnemyCount(), g.session.BulletCount(),
			stats.ShotsFired, stats.Kills, stats.Wins, stats.Losses,
		))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.specs.Game.Width, g.specs.Game.Height
}
