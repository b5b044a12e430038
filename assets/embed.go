package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

//go:embed backgrounds door enemies obstacles pickups player tiles treasure *.wav
var assetsFS embed.FS

// Embedded returns the assets compiled into the binary.
func Embedded() fs.FS {
	return assetsFS
}

// Dir returns an on-disk asset root, used when art is swapped without rebuilding.
func Dir(path string) fs.FS {
	return os.DirFS(path)
}

// Repository decodes images from an asset root once and caches them.
// Lookups that fail are cached as misses and logged a single time.
type Repository struct {
	fsys   fs.FS
	logger *log.Logger

	mu      sync.Mutex
	images  map[string]image.Image
	missing map[string]error
}

func NewRepository(fsys fs.FS, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.Default()
	}
	return &Repository{
		fsys:    fsys,
		logger:  logger,
		images:  make(map[string]image.Image),
		missing: make(map[string]error),
	}
}

// Lookup returns the decoded image at path, or nil when it cannot be loaded.
func (r *Repository) Lookup(path string) image.Image {
	img, err := r.LoadImage(path)
	if err != nil {
		return nil
	}
	return img
}

// LoadImage loads an image by assets-relative path.
func (r *Repository) LoadImage(path string) (image.Image, error) {
	clean := cleanAssetPath(path)

	r.mu.Lock()
	defer r.mu.Unlock()
	if img, ok := r.images[clean]; ok {
		return img, nil
	}
	if err, ok := r.missing[clean]; ok {
		return nil, err
	}

	b, err := fs.ReadFile(r.fsys, clean)
	if err == nil {
		var img image.Image
		img, _, err = image.Decode(bytes.NewReader(b))
		if err == nil {
			r.images[clean] = img
			return img, nil
		}
	}

	err = fmt.Errorf("assets: load %s: %w", clean, err)
	r.missing[clean] = err
	r.logger.Warn("asset unavailable, drawing placeholder", "path", clean, "error", err)
	return nil, err
}

// LoadFile loads a raw asset by assets-relative path.
func (r *Repository) LoadFile(path string) ([]byte, error) {
	return fs.ReadFile(r.fsys, cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return strings.TrimPrefix(s, "./")
}
