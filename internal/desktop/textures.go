//go:build !android

package desktop

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"carousel/internal/imagecache"
)

// textures uploads decoded photos on first use. Images still decoding, or
// that failed to decode, have no texture and are drawn as placeholders.
type textures struct {
	cache *imagecache.Cache
	ids   map[string]uint32
}

func newTextures(cache *imagecache.Cache) *textures {
	return &textures{cache: cache, ids: make(map[string]uint32)}
}

// Get returns the texture for image, or 0 when it is not ready.
func (t *textures) Get(image string) uint32 {
	if id, ok := t.ids[image]; ok {
		return id
	}
	if t.cache == nil {
		return 0
	}
	img, err := t.cache.Get(image)
	if err != nil {
		return 0
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix),
	)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	t.ids[image] = id
	return id
}

func (t *textures) Destroy() {
	for _, id := range t.ids {
		gl.DeleteTextures(1, &id)
	}
	t.ids = nil
}
