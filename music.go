package main

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/stickerclimb/assets"
	"github.com/milk9111/stickerclimb/prefabs"
)

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func sharedAudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
	return audioContext
}

// loadSound builds a player for a named entry in the audio section of game.yaml.
func loadSound(repo *assets.Repository, spec *prefabs.GameSpec, name string) (*audio.Player, error) {
	entry, ok := spec.Sound(name)
	if !ok {
		return nil, fmt.Errorf("no audio entry %q", name)
	}
	b, err := repo.LoadFile(entry.File)
	if err != nil {
		return nil, err
	}

	ctx := sharedAudioContext()
	var player *audio.Player
	if strings.HasSuffix(strings.ToLower(entry.File), ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", entry.File, err)
		}
		player, err = ctx.NewPlayer(stream)
		if err != nil {
			return nil, err
		}
	} else {
		// Fallback for already-decoded PCM assets in Ebiten's native format.
		player = ctx.NewPlayerFromBytes(b)
	}

	if entry.Volume > 0 {
		player.SetVolume(entry.Volume)
	}
	return player, nil
}
