package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/killenemies/common"
	"github.com/milk9111/killenemies/obj"
	"github.com/milk9111/killenemies/prefabs"
)

type recordingAudio struct {
	calls []string
}

func (r *recordingAudio) PlayMusic(track string) { r.calls = append(r.calls, "play:"+track) }
func (r *recordingAudio) StopMusic() { r.calls = append(r.calls, "stop") }
func (r *recordingAudio) PauseMusic() { r.calls = append(r.calls, "pause") }
func (r *recordingAudio) ResumeMusic() { r.calls = append(r.calls, "resume") }
func (r *recordingAudio) SetVolume(float64) { r.calls = append(r.calls, "volume") }
func (r *recordingAudio) PlaySound(name string) { r.calls = append(r.calls, "sfx:"+name) }
func (r *recordingAudio) reset() { r.calls = nil }
func (r *recordingAudio) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

type recordingDrawer struct {
	actors []obj.Actor
}

func (r *recordingDrawer) DrawActor(a obj.Actor) { r.actors = append(r.actors, a) }

func newTestSession(t *testing.T) (*Session, *recordingAudio) {
	t.Helper()
	specs, err := prefabs.LoadAll()
	require.NoError(t, err)
	audio := &recordingAudio{}
	s, err := NewSession(specs, audio)
	require.NoError(t, err)
	return s, audio
}

// startPlaying moves a fresh session into Playing and lets the player
// settle on the first platform.
func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, s.Update(obj.Input{Confirm: true}))
	require.Equal(t, StatePlaying, s.State())
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Update(obj.Input{}))
	}
	require.True(t, s.world.player.OnGround(s.world.platforms), "player should rest on the first platform")
}

func TestNewSessionStartsInMenuWithMusic(t *testing.T) {
	s, audio := newTestSession(t)
	assert.Equal(t, StateMenu, s.State())
	assert.True(t, s.MusicEnabled())
	assert.Equal(t, []string{"volume", "play:background"}, audio.calls)
	assert.Equal(t, 4, s.EnemyCount())
}

func TestMenuTransitions(t *testing.T) {
	t.Run("confirm_starts_fresh_layout", func(t *testing.T) {
		s, _ := newTestSession(t)
		require.NoError(t, s.Update(obj.Input{Confirm: true}))
		assert.Equal(t, StatePlaying, s.State())
		assert.Equal(t, 4, s.EnemyCount())
		assert.Len(t, s.world.platforms, 5)
		x, y := s.PlayerPosition()
		assert.Equal(t, float32(160), x)
		assert.Equal(t, float32(60), y)
	})

	t.Run("toggle_music_is_edge_triggered", func(t *testing.T) {
		s, audio := newTestSession(t)
		audio.reset()
		for i := 0; i < 3; i++ {
			require.NoError(t, s.Update(obj.Input{ToggleMusic: true}))
		}
		assert.False(t, s.MusicEnabled())
		assert.Equal(t, []string{"pause"}, audio.calls)

		require.NoError(t, s.Update(obj.Input{}))
		require.NoError(t, s.Update(obj.Input{ToggleMusic: true}))
		assert.True(t, s.MusicEnabled())
		assert.Equal(t, []string{"pause", "resume"}, audio.calls)
		assert.Equal(t, StateMenu, s.State())
	})

	t.Run("quit", func(t *testing.T) {
		s, _ := newTestSession(t)
		assert.ErrorIs(t, s.Update(obj.Input{Quit: true}), ErrQuit)
	})

	t.Run("quit_ignored_while_playing", func(t *testing.T) {
		s, _ := newTestSession(t)
		require.NoError(t, s.Update(obj.Input{Confirm: true}))
		assert.NoError(t, s.Update(obj.Input{Quit: true}))
		assert.Equal(t, StatePlaying, s.State())
	})
}

func TestFirstPlayingTick(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Update(obj.Input{Confirm: true}))
	require.NoError(t, s.Update(obj.Input{}))

	assert.Equal(t, float32(0.5), s.world.player.VelocityY)
	assert.Equal(t, float32(60.5), s.world.player.Y)
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)

	launches := 0
	for i := 0; i < 60; i++ {
		require.NoError(t, s.Update(obj.Input{Jump: true}))
		if s.world.player.VelocityY == -11.5 {
			launches++
		}
	}
	assert.Equal(t, 1, launches, "holding jump launches once")
	require.True(t, s.world.player.OnGround(s.world.platforms), "player is back on the platform")

	require.NoError(t, s.Update(obj.Input{}))
	require.NoError(t, s.Update(obj.Input{Jump: true}))
	assert.Equal(t, float32(-11.5), s.world.player.VelocityY, "release then press jumps again")
}

func TestFallingOutLoses(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)

	s.world.player.Y = 700
	require.NoError(t, s.Update(obj.Input{}))
	assert.Equal(t, StateMenu, s.State())
	assert.Equal(t, 1, s.Stats().Losses)
}

func TestEnemyContactLoses(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)
	require.Equal(t, 4, s.EnemyCount())

	px, py := s.PlayerPosition()
	s.world.enemies[0].X = px
	s.world.enemies[0].Y = py

	require.NoError(t, s.Update(obj.Input{}))
	assert.Equal(t, StateMenu, s.State())
	assert.Equal(t, 4, s.EnemyCount(), "loss does not depend on enemies left")
}

func TestRapidFire(t *testing.T) {
	s, audio := newTestSession(t)
	startPlaying(t, s)
	audio.reset()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Update(obj.Input{Shoot: true}))
	}
	assert.Equal(t, 5, s.BulletCount())
	assert.Equal(t, 5, s.Stats().ShotsFired)
	assert.Equal(t, 5, audio.count("sfx:shoot"))
	for _, b := range s.world.bullets {
		assert.Equal(t, common.Right, b.Direction())
	}
}

func TestBulletsRemovedOffScreen(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)

	require.NoError(t, s.Update(obj.Input{Shoot: true}))
	require.Equal(t, 1, s.BulletCount())
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Update(obj.Input{}))
	}
	assert.Equal(t, 0, s.BulletCount())
}

// placeBulletOn puts a right-moving bullet over enemy i.
func placeBulletOn(t *testing.T, s *Session, i int) {
	t.Helper()
	e := s.world.enemies[i]
	b, err := obj.NewBullet(e.X-4, e.Y, common.Right, s.world.specs.Bullet)
	require.NoError(t, err)
	s.world.bullets = append(s.world.bullets, b)
}

func TestBulletKillsAndVictory(t *testing.T) {
	s, audio := newTestSession(t)
	startPlaying(t, s)
	audio.reset()

	for n := 1; n <= 4; n++ {
		placeBulletOn(t, s, 0)
		require.NoError(t, s.Update(obj.Input{}))
		assert.Equal(t, 4-n, s.EnemyCount())
		assert.Equal(t, 0, s.BulletCount(), "the bullet is spent on its kill")
		if n < 4 {
			assert.Equal(t, StatePlaying, s.State())
		}
	}

	assert.Equal(t, StateVictory, s.State())
	assert.Equal(t, 4, s.Stats().Kills)
	assert.Equal(t, 4, audio.count("sfx:enemy_death"))
	assert.Equal(t, []string{"stop", "play:victory"}, audio.calls[len(audio.calls)-2:])
}

func TestOneKillPerBullet(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)

	// stack two enemies on the same spot
	s.world.enemies[1].X = s.world.enemies[0].X
	s.world.enemies[1].Y = s.world.enemies[0].Y
	s.world.enemies[1].Direction = s.world.enemies[0].Direction
	placeBulletOn(t, s, 0)

	require.NoError(t, s.Update(obj.Input{}))
	assert.Equal(t, 3, s.EnemyCount())
}

func TestTwoBulletsTwoKillsSameTick(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)

	placeBulletOn(t, s, 0)
	placeBulletOn(t, s, 2)

	require.NoError(t, s.Update(obj.Input{}))
	assert.Equal(t, 2, s.EnemyCount())
	assert.Equal(t, 0, s.BulletCount())
}

func TestVictoryReturnsToMenu(t *testing.T) {
	s, audio := newTestSession(t)
	startPlaying(t, s)
	s.world.enemies = s.world.enemies[:1]
	placeBulletOn(t, s, 0)
	require.NoError(t, s.Update(obj.Input{Return: true}))
	require.Equal(t, StateVictory, s.State())

	// still held from the winning tick: no transition
	require.NoError(t, s.Update(obj.Input{Return: true}))
	assert.Equal(t, StateVictory, s.State())

	audio.reset()
	require.NoError(t, s.Update(obj.Input{}))
	require.NoError(t, s.Update(obj.Input{Return: true}))
	assert.Equal(t, StateMenu, s.State())
	assert.Equal(t, 4, s.EnemyCount(), "enemies are reset for the next run")
	assert.Equal(t, []string{"stop", "play:background"}, audio.calls)
}

func TestVictoryWithMusicOffStaysPaused(t *testing.T) {
	s, audio := newTestSession(t)
	require.NoError(t, s.Update(obj.Input{ToggleMusic: true}))
	require.False(t, s.MusicEnabled())
	startPlaying(t, s)

	s.world.enemies = s.world.enemies[:1]
	placeBulletOn(t, s, 0)
	audio.reset()
	require.NoError(t, s.Update(obj.Input{}))

	require.Equal(t, StateVictory, s.State())
	assert.Equal(t, []string{"sfx:enemy_death", "stop", "play:victory", "pause"}, audio.calls)
}

func TestRestartClearsBullets(t *testing.T) {
	s, _ := newTestSession(t)
	startPlaying(t, s)
	require.NoError(t, s.Update(obj.Input{Shoot: true}))
	require.NoError(t, s.Update(obj.Input{Shoot: true}))

	s.world.player.Y = 700
	require.NoError(t, s.Update(obj.Input{}))
	require.Equal(t, StateMenu, s.State())

	require.NoError(t, s.Update(obj.Input{Confirm: true}))
	assert.Equal(t, 0, s.BulletCount())
	assert.Equal(t, 4, s.EnemyCount())
}

func TestDrawOrder(t *testing.T) {
	s, _ := newTestSession(t)

	var menu recordingDrawer
	s.Draw(&menu)
	assert.Empty(t, menu.actors, "nothing is drawn outside Playing")

	startPlaying(t, s)
	require.NoError(t, s.Update(obj.Input{Shoot: true}))

	var d recordingDrawer
	s.Draw(&d)
	require.Len(t, d.actors, 5+1+4+1)
	for _, a := range d.actors[:5] {
		assert.IsType(t, &obj.Platform{}, a)
	}
	assert.IsType(t, &obj.Player{}, d.actors[5])
	for _, a := range d.actors[6:10] {
		assert.IsType(t, &obj.Enemy{}, a)
	}
	assert.IsType(t, &obj.Bullet{}, d.actors[10])
}

func TestSetSpecsAppliesOnReset(t *testing.T) {
	s, _ := newTestSession(t)
	specs, err := prefabs.LoadAll()
	require.NoError(t, err)

	faster := *specs.Bullet
	faster.MoveSpeed = 20
	specs.Bullet = &faster
	s.SetSpecs(specs)

	startPlaying(t, s)
	require.NoError(t, s.Update(obj.Input{Shoot: true}))
	px, _ := s.PlayerPosition()
	bx, _ := s.world.bullets[0].Position()
	assert.Equal(t, px+20, bx)
}

func TestFailedResetKeepsWorld(t *testing.T) {
	specs, err := prefabs.LoadAll()
	require.NoError(t, err)
	w, err := NewWorld(specs)
	require.NoError(t, err)
	player, platforms := w.player, w.platforms

	broken := *specs.Enemy
	broken.Animation.Defs = nil
	bad := *specs
	bad.Enemy = &broken
	bad.Game = &prefabs.GameSpec{Width: 1024, Height: 768}
	w.SetSpecs(&bad)

	require.Error(t, w.Reset())
	assert.Same(t, player, w.player)
	assert.Equal(t, platforms, w.platforms)
	assert.Equal(t, 4, w.EnemyCount())
	assert.Equal(t, float32(specs.Game.Width), w.width)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "menu", StateMenu.String())
	assert.Equal(t, "playing", StatePlaying.String())
	assert.Equal(t, "victory", StateVictory.String())
	assert.Equal(t, "state(7)", State(7).String())
}
