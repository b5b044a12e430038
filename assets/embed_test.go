package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/stickerclimb/common"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRepositoryCachesImages(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles/grass.png": {Data: encodePNG(t, 4, 2)},
	}
	repo := NewRepository(fsys, quietLogger())

	a := repo.Lookup("assets/tiles/grass.png")
	require.NotNil(t, a)
	assert.Equal(t, 4, a.Bounds().Dx())

	delete(fsys, "tiles/grass.png")
	b := repo.Lookup("tiles/grass.png")
	assert.Same(t, a.(*image.NRGBA), b.(*image.NRGBA))
}

func TestRepositoryMissesReturnNil(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.png": {Data: []byte("not a png")},
	}
	repo := NewRepository(fsys, quietLogger())

	assert.Nil(t, repo.Lookup("nope.png"))
	assert.Nil(t, repo.Lookup("broken.png"))

	_, err := repo.LoadImage("nope.png")
	require.Error(t, err)

	// A later fix on disk is not picked up; misses are cached.
	fsys["nope.png"] = &fstest.MapFile{Data: encodePNG(t, 1, 1)}
	assert.Nil(t, repo.Lookup("nope.png"))
}

func TestEmbeddedCoversReferencedArt(t *testing.T) {
	repo := NewRepository(Embedded(), quietLogger())
	paths := []string{
		"player/player_idle.png",
		"tiles/grass.png",
		"tiles/dirt.png",
		"enemies/forest_creature.png",
		"enemies/scary_bear.png",
		"door/locked.png",
		"door/open.png",
		"treasure/chest.png",
		"pickups/health.png",
	}
	for _, p := range common.LevelBackgrounds {
		paths = append(paths, p)
	}
	for _, p := range paths {
		assert.NotNil(t, repo.Lookup(p), p)
	}

	b, err := repo.LoadFile("victory_music.wav")
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(b[:4]))
}

func TestCleanAssetPath(t *testing.T) {
	tests := map[string]string{
		"":                             "",
		"assets/tiles/grass.png":       "tiles/grass.png",
		"./tiles/grass.png":            "tiles/grass.png",
		"/home/x/assets/door/open.png": "door/open.png",
		"/tmp/other.png":               "other.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}
