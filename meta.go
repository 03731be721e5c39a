package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// songMeta describes one guessing round: the name to reveal, the clean
// solution file, the hint (base) file, and optionally a separated vocals
// file shown on its own visualizer.
type songMeta struct {
	Name     string `json:"name"`
	Solution string `json:"solution"`
	Base     string `json:"base"`
	Vocals   string `json:"vocals,omitempty"`
}

// songConfig is the on-disk layout of the song metadata file: three sections
// played in order of increasing difficulty.
type songConfig struct {
	NoVocals  []songMeta `json:"no-vocals"`
	Distorted []songMeta `json:"distorted"`
	Reversed  []songMeta `json:"reversed"`
}

// loadSongs reads the song metadata JSON and resolves all file paths
// relative to its parent directory. Rounds are ordered no-vocals, distorted,
// reversed.
func loadSongs(path string) ([]songMeta, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading song config: %w", err)
	}
	var cfg songConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing song config %q: %w", path, err)
	}

	dir := filepath.Dir(path)
	var songs []songMeta
	for _, section := range [][]songMeta{cfg.NoVocals, cfg.Distorted, cfg.Reversed} {
		for _, s := range section {
			s.Solution = filepath.Join(dir, s.Solution)
			s.Base = filepath.Join(dir, s.Base)
			if s.Vocals != "" {
				s.Vocals = filepath.Join(dir, s.Vocals)
			}
			songs = append(songs, s)
		}
	}
	return songs, nil
}
