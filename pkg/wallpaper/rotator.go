package wallpaper

import "github.com/dixieflatline76/wallpaperd/util/log"

// Rotator walks a snapshot of the registry and applies one image per tick.
// It is not safe for concurrent use; callers serialize ticks on the UI context.
type Rotator struct {
	os      OS
	index   int
	current string
}

// NewRotator creates a Rotator that starts at the first image.
func NewRotator(os OS) *Rotator {
	return &Rotator{os: os}
}

// Tick applies the image at the current index and advances the index. An empty snapshot
// is a no-op. An index left out of range by removals wraps back to the first image.
// The index advances even when the platform call fails, so one broken image does not
// stall the rotation.
func (r *Rotator) Tick(paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	if r.index >= len(paths) || r.index < 0 {
		log.Debugf("rotation index %d out of range for %d images, restarting", r.index, len(paths))
		r.index = 0
	}

	path := paths[r.index]
	r.index++
	r.current = path

	if err := r.os.SetWallpaper(path); err != nil {
		return &SetWallpaperError{Path: path, Err: err}
	}
	return nil
}

// Index returns the position the next tick will try first.
func (r *Rotator) Index() int {
	return r.index
}

// Current returns the last path handed to the platform, or "" before the first tick.
func (r *Rotator) Current() string {
	return r.current
}

// Reset returns the rotation to the first image.
func (r *Rotator) Reset() {
	r.index = 0
}
