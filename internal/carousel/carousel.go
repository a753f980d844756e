// Package carousel tracks which images of a fixed set are on display.
package carousel

import (
	"errors"
	"sync"
)

// ErrNoImages is returned when a carousel is built from an empty image list.
var ErrNoImages = errors.New("carousel needs at least one image")

// Image is an opaque reference to a static asset.
type Image struct {
	Src string `json:"src" yaml:"src" validate:"required"`
	Alt string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// Carousel is a cursor over an immutable, cyclic list of images.
// The cursor starts on the last image and is always a valid index.
type Carousel struct {
	mu     sync.RWMutex
	images []Image
	cursor int
}

// New copies images into a carousel.
func New(images []Image) (*Carousel, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	owned := make([]Image, len(images))
	copy(owned, images)
	return &Carousel{images: owned, cursor: len(owned) - 1}, nil
}

// Len returns the number of images.
func (c *Carousel) Len() int { return len(c.images) }

// Cursor returns the index of the primary image.
func (c *Carousel) Cursor() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cursor
}

// Next advances the cursor, wrapping to the first image.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = (c.cursor + 1) % len(c.images)
	return c.cursor
}

// Prev moves the cursor back, wrapping to the last image.
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.images)
	c.cursor = (c.cursor - 1 + n) % n
	return c.cursor
}

// Reset puts the cursor back on the last image.
func (c *Carousel) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = len(c.images) - 1
}

// View is the pair of images shown at once.
type View struct {
	Cursor    int
	Primary   Image
	Secondary Image
}

// Current returns the image at the cursor and the one after it.
func (c *Carousel) Current() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := len(c.images)
	return View{
		Cursor:    c.cursor,
		Primary:   c.images[c.cursor],
		Secondary: c.images[(c.cursor+1)%n],
	}
}

// Images returns a copy of the image list.
func (c *Carousel) Images() []Image {
	out := make([]Image, len(c.images))
	copy(out, c.images)
	return out
}
