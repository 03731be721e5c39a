package main

import "flag"

// Command-line flags selecting the assets to present and optional runtime
// behavior.
var (
	// songsFlag points at the JSON file listing the guessable songs.
	songsFlag = flag.String("songs", "song-data/config.json", "path to the song metadata JSON file")

	// vinylFlag is the record image spun at the center of the scene.
	vinylFlag = flag.String("vinyl", "song-data/vinyl.png", "path to the vinyl record image")

	// rewindCueFlag is the short sound played while rewinding a song.
	rewindCueFlag = flag.String("rewind-cue", "song-data/rewind.wav", "path to the rewind sound effect WAV")

	// fullscreenFlag toggles fullscreen presentation mode.
	fullscreenFlag = flag.Bool("fullscreen", true, "run in fullscreen")

	// debugFlag enables the FPS overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and TPS overlay")
)
