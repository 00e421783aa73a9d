package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/killenemies/music"
	"github.com/milk9111/killenemies/prefabs"
	"github.com/milk9111/killenemies/system"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	mute := flag.Bool("mute", false, "run without audio output")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml from disk when they change")
	flag.Parse()

	specs, err := prefabs.LoadAll()
	if err != nil {
		log.Fatal(err)
	}

	var audio system.Audio = system.NopAudio{}
	if !*mute {
		p, err := music.NewPlayer(specs.Game)
		if err != nil {
			log.Fatal(err)
		}
		audio = p
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(specs.Game.Width, specs.Game.Height)
	ebiten.SetWindowTitle(specs.Game.Title)
	ebiten.SetTPS(specs.Game.TPS)

	game, err := NewGame(specs, audio, watcher, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
