package obj

import "image"

// Art resolves sprite paths to decoded images. A nil result means the caller
// falls back to a flat colored shape.
type Art interface {
	Lookup(path string) image.Image
}

func lookup(art Art, path string) image.Image {
	if art == nil {
		return nil
	}
	return art.Lookup(path)
}
