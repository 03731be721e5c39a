package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	songs, err := loadSongs(*songsFlag)
	if err != nil {
		log.Fatalf("song config: %v", err)
	}
	if len(songs) == 0 {
		log.Fatalf("song config %q lists no songs", *songsFlag)
	}

	game, err := newGame(songs, *vinylFlag, *rewindCueFlag, func(name string) {
		log.Printf("Now guessing: %s", name)
	})
	if err != nil {
		log.Fatalf("game init: %v", err)
	}

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("Sarabanda")
	ebiten.SetFullscreen(*fullscreenFlag)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("%v", err)
	}
}
