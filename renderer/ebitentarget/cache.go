package ebitentarget

import (
	"image"
	"reflect"
)

// DefaultCacheSize bounds how many uploaded images a Target keeps.
const DefaultCacheSize = 256

// uploadCache maps source images to uploaded copies. Once full it releases
// everything and starts over. Sources whose dynamic type cannot be a map key
// are uploaded as transients and released on the next reset.
type uploadCache[T any] struct {
	limit   int
	upload  func(image.Image) T
	release func(T)

	cached     map[image.Image]T
	transients []T
}

func newUploadCache[T any](limit int, upload func(image.Image) T, release func(T)) *uploadCache[T] {
	return &uploadCache[T]{
		limit:   limit,
		upload:  upload,
		release: release,
		cached:  make(map[image.Image]T),
	}
}

func (c *uploadCache[T]) get(img image.Image) T {
	if !reflect.TypeOf(img).Comparable() {
		u := c.upload(img)
		c.transients = append(c.transients, u)
		return u
	}
	if u, ok := c.cached[img]; ok {
		return u
	}
	if len(c.cached) >= c.limit {
		c.purge()
	}
	u := c.upload(img)
	c.cached[img] = u
	return u
}

// evict releases the upload for img, if any.
func (c *uploadCache[T]) evict(img image.Image) {
	if !reflect.TypeOf(img).Comparable() {
		return
	}
	if u, ok := c.cached[img]; ok {
		c.release(u)
		delete(c.cached, img)
	}
}

// releaseTransients frees uploads that were only valid for one frame.
func (c *uploadCache[T]) releaseTransients() {
	for _, u := range c.transients {
		c.release(u)
	}
	c.transients = c.transients[:0]
}

func (c *uploadCache[T]) purge() {
	for img, u := range c.cached {
		c.release(u)
		delete(c.cached, img)
	}
}

func (c *uploadCache[T]) len() int {
	return len(c.cached)
}
